package outfitHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"StyleSense/internal/api/outfit"
	contextPkg "StyleSense/pkg/context"
	"StyleSense/pkg/handlerUtil"
	jwtPkg "StyleSense/pkg/jwt"
	"StyleSense/pkg/log"
)

func (h *OutfitHandler) RecommendOutfit(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 60*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetAuthenticatedUser(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Invalid user session")
	}

	var req outfit.RecommendRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"user_id":    user.ID,
		"occasion":   req.Occasion,
	}).Debug("Processing outfit recommendation request")

	result, err := h.outfitService.Recommend(c, user.ID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "recommend_outfit")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}
