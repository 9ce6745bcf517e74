package clothHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	clothService "StyleSense/internal/api/cloth/service"
	"StyleSense/internal/middleware"
)

type ClothHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	clothService clothService.IClothService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs clothService.IClothService,
) *ClothHandler {
	return &ClothHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		clothService: cs,
	}
}

func (h *ClothHandler) Start(srv fiber.Router) {
	cl := srv.Group("/cloth")

	cl.Post("/analyze", h.middleware.NewTokenMiddleware, h.AnalyzeCloth)
	cl.Get("/wardrobe", h.middleware.NewTokenMiddleware, h.GetWardrobe)
	cl.Delete("/wardrobe/:id", h.middleware.NewTokenMiddleware, h.DeleteWardrobeItem)
}
