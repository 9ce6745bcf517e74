package clothService

import (
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"StyleSense/internal/api/cloth"
	clothRepository "StyleSense/internal/api/cloth/repository"
	"StyleSense/internal/entity"
	"StyleSense/pkg/gemini"
	"StyleSense/pkg/openai"
	"StyleSense/pkg/redis"
	"StyleSense/pkg/s3"
	"StyleSense/pkg/utils"
)

type IClothService interface {
	AnalyzeFromURL(ctx context.Context, userID string, req cloth.AnalyzeRequest) (*cloth.AnalyzeResponse, error)
	AnalyzeUpload(ctx context.Context, userID string, file *multipart.FileHeader, brand string) (*cloth.AnalyzeResponse, error)
	GetWardrobe(ctx context.Context, userID string) ([]entity.WardrobeItem, error)
	DeleteWardrobeItem(ctx context.Context, userID string, itemID string) error
}

type clothService struct {
	log             *logrus.Logger
	clothRepository clothRepository.Repository
	openai          openai.IOpenAI
	gemini          gemini.IGemini
	redis           redis.IRedis
	s3              s3.ItfS3
	utils           utils.IUtils
}

func NewClothService(
	log *logrus.Logger,
	cr clothRepository.Repository,
	openai openai.IOpenAI,
	gemini gemini.IGemini,
	redis redis.IRedis,
	s3 s3.ItfS3,
	utils utils.IUtils,
) IClothService {
	return &clothService{
		log:             log,
		clothRepository: cr,
		openai:          openai,
		gemini:          gemini,
		redis:           redis,
		s3:              s3,
		utils:           utils,
	}
}
