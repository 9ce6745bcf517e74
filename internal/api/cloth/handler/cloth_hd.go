package clothHandler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"StyleSense/internal/api/cloth"
	contextPkg "StyleSense/pkg/context"
	"StyleSense/pkg/handlerUtil"
	jwtPkg "StyleSense/pkg/jwt"
	"StyleSense/pkg/log"
)

func (h *ClothHandler) AnalyzeCloth(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 60*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetAuthenticatedUser(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Invalid user session")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"user_id":    user.ID,
	}).Debug("Processing cloth analysis request")

	file, err := ctx.FormFile("image")
	if err == nil {
		brand := ctx.FormValue("brand")

		result, err := h.clothService.AnalyzeUpload(c, user.ID, file, brand)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "analyze_cloth_upload")
		}

		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}

	var req cloth.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	result, err := h.clothService.AnalyzeFromURL(c, user.ID, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "analyze_cloth_url")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}

func (h *ClothHandler) GetWardrobe(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetAuthenticatedUser(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Invalid user session")
	}

	items, err := h.clothService.GetWardrobe(c, user.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_wardrobe")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, cloth.WardrobeResponse{Items: items})
}

func (h *ClothHandler) DeleteWardrobeItem(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	user, err := jwtPkg.GetAuthenticatedUser(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Invalid user session")
	}

	itemID := ctx.Params("id")
	if itemID == "" {
		return errHandler.Handle(ctx, requestID, cloth.ErrItemNotFound, ctx.Path(), "delete_wardrobe_item")
	}

	if err := h.clothService.DeleteWardrobeItem(c, user.ID, itemID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_wardrobe_item")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
}
