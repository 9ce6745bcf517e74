package faceHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"

	faceService "StyleSense/internal/api/face/service"
	"StyleSense/internal/middleware"
	"StyleSense/pkg/utils"
)

type FaceHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	faceService faceService.IFaceService
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	fs faceService.IFaceService,
	utils utils.IUtils,
) *FaceHandler {
	return &FaceHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		faceService: fs,
		utils:       utils,
	}
}

func (h *FaceHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	f := srv.Group("/face")
	f.Post("/analyze", h.AnalyzeFace)
	f.Use("/ws", wsMiddleware)
	f.Get("/ws", websocket.New(h.handleWebSocket))
}
