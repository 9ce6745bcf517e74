package bodyService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"StyleSense/internal/api/body"
	"StyleSense/pkg/landmark"
	"StyleSense/pkg/utils"
	websocketPkg "StyleSense/pkg/websocket"
)

type IBodyService interface {
	AnalyzeFromURL(ctx context.Context, imageURL string) (*body.AnalyzeResponse, error)
	AnalyzeImage(ctx context.Context, imageData []byte) (*body.AnalyzeResponse, error)
	AnalyzeFrame(frame []byte) (*body.AnalyzeResponse, error)
}

type bodyService struct {
	log              *logrus.Logger
	landmarkProvider landmark.IProvider
	websocketPkg     websocketPkg.IWebsocket
	utils            utils.IUtils
}

func NewBodyService(
	log *logrus.Logger,
	provider landmark.IProvider,
	websocket websocketPkg.IWebsocket,
	utils utils.IUtils,
) IBodyService {
	return &bodyService{
		log:              log,
		landmarkProvider: provider,
		websocketPkg:     websocket,
		utils:            utils,
	}
}
