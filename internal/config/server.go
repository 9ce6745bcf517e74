package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"StyleSense/database/postgres"
	bodyHandler "StyleSense/internal/api/body/handler"
	bodyService "StyleSense/internal/api/body/service"
	clothHandler "StyleSense/internal/api/cloth/handler"
	clothRepository "StyleSense/internal/api/cloth/repository"
	clothService "StyleSense/internal/api/cloth/service"
	faceHandler "StyleSense/internal/api/face/handler"
	faceService "StyleSense/internal/api/face/service"
	outfitHandler "StyleSense/internal/api/outfit/handler"
	outfitService "StyleSense/internal/api/outfit/service"
	"StyleSense/internal/middleware"
	"StyleSense/pkg/azsearch"
	"StyleSense/pkg/classify"
	"StyleSense/pkg/gemini"
	"StyleSense/pkg/landmark"
	"StyleSense/pkg/openai"
	"StyleSense/pkg/redis"
	"StyleSense/pkg/s3"
	"StyleSense/pkg/utils"
	websocketPkg "StyleSense/pkg/websocket"
)

type ServerOption func(*Server) error

type Server struct {
	engine            *fiber.App
	db                *sqlx.DB
	log               *logrus.Logger
	middleware        middleware.Middleware
	validator         *validator.Validate
	utils             utils.IUtils
	handlers          []handler
	redisServer       redis.IRedis
	landmarkProvider  landmark.IProvider
	detectorWebsocket websocketPkg.IWebsocket
	openaiClient      openai.IOpenAI
	geminiClient      gemini.IGemini
	searchClient      azsearch.ISearch
	s3Client          s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithLandmarkProvider() ServerOption {
	return func(s *Server) error {
		provider, err := landmark.NewProvider()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create landmark provider: %v", err)
			}
			return fmt.Errorf("failed to create landmark provider: %w", err)
		}
		s.landmarkProvider = provider
		return nil
	}
}

func WithDetectorWebsocket(webSocket websocketPkg.IWebsocket) ServerOption {
	return func(s *Server) error {
		s.detectorWebsocket = webSocket
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithOpenAIClient() ServerOption {
	return func(s *Server) error {
		s.openaiClient = openai.NewOpenAI()
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithSearchClient() ServerOption {
	return func(s *Server) error {
		client, err := azsearch.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create search client: %v", err)
			}
			return fmt.Errorf("failed to create search client: %w", err)
		}
		s.searchClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Body Analysis Domain
	bodyServices := bodyService.NewBodyService(s.log, s.landmarkProvider, s.detectorWebsocket, s.utils)
	bodyHandlers := bodyHandler.New(s.log, s.validator, s.middleware, bodyServices, s.utils)

	// Face Analysis Domain
	faceServices := faceService.NewFaceService(s.log, s.landmarkProvider, s.detectorWebsocket, s.utils)
	faceHandlers := faceHandler.New(s.log, s.validator, s.middleware, faceServices, s.utils)

	// Cloth Analysis Domain
	clothRepo := clothRepository.New(s.db, s.log)
	clothServices := clothService.NewClothService(s.log, clothRepo, s.openaiClient, s.geminiClient, s.redisServer, s.s3Client, s.utils)
	clothHandlers := clothHandler.New(s.log, s.validator, s.middleware, clothServices)

	// Outfit Recommendation Domain
	outfitServices := outfitService.NewOutfitService(s.log, s.openaiClient, s.searchClient, s.redisServer, clothRepo)
	outfitHandlers := outfitHandler.New(s.log, s.validator, s.middleware, outfitServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, bodyHandlers, faceHandlers, clothHandlers, outfitHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.detectorWebsocket != nil {
			s.detectorWebsocket.CloseConnections()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	healthHandler := func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
			"labels": fiber.Map{
				"body_shapes":      classify.BodyShapeLabels,
				"body_proportions": classify.ProportionLabels,
				"face_shapes":      classify.FaceShapeLabels,
				"eye_shapes":       classify.EyeShapeLabels,
			},
		})
	}

	s.engine.Get("/", healthHandler)
	s.engine.Get("/health", healthHandler)
}
