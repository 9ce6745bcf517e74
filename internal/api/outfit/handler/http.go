package outfitHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	outfitService "StyleSense/internal/api/outfit/service"
	"StyleSense/internal/middleware"
)

type OutfitHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	outfitService outfitService.IOutfitService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	os outfitService.IOutfitService,
) *OutfitHandler {
	return &OutfitHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		outfitService: os,
	}
}

func (h *OutfitHandler) Start(srv fiber.Router) {
	of := srv.Group("/outfit")

	of.Post("/recommend", h.middleware.NewTokenMiddleware, h.RecommendOutfit)
}
