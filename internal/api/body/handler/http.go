package bodyHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	bodyService "StyleSense/internal/api/body/service"
	"StyleSense/internal/middleware"
	"StyleSense/pkg/utils"
)

type BodyHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	bodyService bodyService.IBodyService
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs bodyService.IBodyService,
	utils utils.IUtils,
) *BodyHandler {
	return &BodyHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		bodyService: bs,
		utils:       utils,
	}
}

func (h *BodyHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	b := srv.Group("/body")
	b.Post("/analyze", h.AnalyzeBody)
	b.Use("/ws", wsMiddleware)
	b.Get("/ws", websocket.New(h.handleWebSocket))
}
