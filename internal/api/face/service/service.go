package faceService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"StyleSense/internal/api/face"
	"StyleSense/pkg/landmark"
	"StyleSense/pkg/utils"
	websocketPkg "StyleSense/pkg/websocket"
)

type IFaceService interface {
	AnalyzeFromURL(ctx context.Context, imageURL string) (*face.AnalyzeResponse, error)
	AnalyzeImage(ctx context.Context, imageData []byte) (*face.AnalyzeResponse, error)
	AnalyzeFrame(frame []byte) (*face.AnalyzeResponse, error)
}

type faceService struct {
	log              *logrus.Logger
	landmarkProvider landmark.IProvider
	websocketPkg     websocketPkg.IWebsocket
	utils            utils.IUtils
}

func NewFaceService(
	log *logrus.Logger,
	provider landmark.IProvider,
	websocket websocketPkg.IWebsocket,
	utils utils.IUtils,
) IFaceService {
	return &faceService{
		log:              log,
		landmarkProvider: provider,
		websocketPkg:     websocket,
		utils:            utils,
	}
}
