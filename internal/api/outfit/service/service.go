package outfitService

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	clothRepository "StyleSense/internal/api/cloth/repository"
	"StyleSense/internal/api/outfit"
	"StyleSense/pkg/azsearch"
	"StyleSense/pkg/openai"
	"StyleSense/pkg/redis"
)

type IOutfitService interface {
	Recommend(ctx context.Context, userID string, req outfit.RecommendRequest) (*outfit.RecommendResponse, error)
}

type outfitService struct {
	log             *logrus.Logger
	openai          openai.IOpenAI
	search          azsearch.ISearch
	redis           redis.IRedis
	clothRepository clothRepository.Repository
}

func NewOutfitService(
	log *logrus.Logger,
	openai openai.IOpenAI,
	search azsearch.ISearch,
	redis redis.IRedis,
	cr clothRepository.Repository,
) IOutfitService {
	return &outfitService{
		log:             log,
		openai:          openai,
		search:          search,
		redis:           redis,
		clothRepository: cr,
	}
}
