package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"StyleSense/internal/config"
	"StyleSense/pkg/log"
	"StyleSense/pkg/redis"
	websocketPkg "StyleSense/pkg/websocket"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	redisServer := redis.New()
	detectorWebsocket := websocketPkg.NewDetectorClient()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDatabase(),
		config.WithRedisServer(redisServer),
		config.WithDetectorWebsocket(detectorWebsocket),
		config.WithMiddleware(),
		config.WithS3Client(),
		config.WithOpenAIClient(),
		config.WithGeminiClient(),
		config.WithSearchClient(),
		config.WithLandmarkProvider(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
	detectorWebsocket.CloseConnections()
}
