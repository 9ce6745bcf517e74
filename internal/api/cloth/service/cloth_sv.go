package clothService

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"StyleSense/internal/api/cloth"
	"StyleSense/internal/entity"
	contextPkg "StyleSense/pkg/context"
	"StyleSense/pkg/redis"
)

const clothPrompt = `Analyze this image and return the following information in JSON format:
1. type - one from top, bottom, outwear, footwear, accessory
2. color - Detailed color description
3. pattern - Pattern or design characteristics
4. fabric - Fabric type
5. description - Overall description`

const (
	analysisCacheTTL = 24 * time.Hour

	maxImageWidth  = 1024
	maxImageHeight = 1024
	jpegQuality    = 85
)

func (s *clothService) AnalyzeFromURL(ctx context.Context, userID string, req cloth.AnalyzeRequest) (*cloth.AnalyzeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	analysis, err := s.cachedAnalysis(ctx, req.ImageURL)
	if err != nil {
		imageData, fetchErr := s.utils.FetchImage(ctx, req.ImageURL)
		if fetchErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      fetchErr.Error(),
				"image_url":  req.ImageURL,
			}).Error("Failed to fetch garment image")
			return nil, fetchErr
		}

		analysis, err = s.analyzeGarment(ctx, imageData, req.ImageURL)
		if err != nil {
			return nil, err
		}
	}

	return s.saveAnalysis(ctx, userID, req.Brand, analysis)
}

func (s *clothService) AnalyzeUpload(ctx context.Context, userID string, file *multipart.FileHeader, brand string) (*cloth.AnalyzeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.utils.ValidateImageFile(file); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"file_name":  file.Filename,
		}).Warn("Invalid garment upload")
		return nil, cloth.ErrInvalidFileType
	}

	fileContent, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer fileContent.Close()

	imageData, err := io.ReadAll(fileContent)
	if err != nil {
		return nil, err
	}

	imageURL, err := s.s3.UploadImage(imageData, file.Header.Get("Content-Type"))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload garment image")
		return nil, cloth.ErrFailedToUploadFile
	}

	analysis, err := s.analyzeGarment(ctx, imageData, imageURL)
	if err != nil {
		return nil, err
	}

	return s.saveAnalysis(ctx, userID, brand, analysis)
}

func (s *clothService) GetWardrobe(ctx context.Context, userID string) ([]entity.WardrobeItem, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.clothRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Wardrobe.GetItemsByUserID(ctx, userID)
}

func (s *clothService) DeleteWardrobeItem(ctx context.Context, userID string, itemID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.clothRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	item, err := repo.Wardrobe.GetItemByID(ctx, itemID)
	if err != nil {
		return err
	}

	if item.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"item_id":    itemID,
		}).Warn("Wardrobe item does not belong to user")
		return cloth.ErrItemNotOwned
	}

	return repo.Wardrobe.DeleteItem(ctx, itemID)
}

// analyzeGarment calls the configured vision provider and caches the parsed
// result keyed by image URL.
func (s *clothService) analyzeGarment(ctx context.Context, imageData []byte, imageURL string) (*cloth.Analysis, error) {
	requestID := contextPkg.GetRequestID(ctx)

	optimized, err := s.utils.OptimizeImage(imageData, maxImageWidth, maxImageHeight, jpegQuality)
	if err != nil {
		// Fall back to the original bytes when re-encoding fails.
		optimized = imageData
	}

	base64Image := base64.StdEncoding.EncodeToString(optimized)

	var raw string
	if strings.EqualFold(os.Getenv("CLOTH_VISION_PROVIDER"), "gemini") {
		raw, err = s.gemini.AnalyzeImage(ctx, base64Image, clothPrompt)
	} else {
		raw, err = s.openai.AnalyzeImage(ctx, base64Image, clothPrompt)
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Vision provider request failed")
		return nil, err
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to parse garment analysis")
		return nil, cloth.ErrUnparsableAnalysis
	}

	analysis.ImageURL = imageURL
	analysis.CreatedAt = time.Now().Unix()

	if encoded, err := json.Marshal(analysis); err == nil {
		if err := s.redis.SetCache(ctx, analysisCacheKey(imageURL), string(encoded), analysisCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to cache garment analysis")
		}
	}

	return analysis, nil
}

func (s *clothService) cachedAnalysis(ctx context.Context, imageURL string) (*cloth.Analysis, error) {
	cached, err := s.redis.GetCache(ctx, analysisCacheKey(imageURL))
	if err != nil {
		if !errors.Is(err, redis.ErrCacheMiss) {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"error":      err.Error(),
			}).Warn("Cache lookup failed")
		}
		return nil, err
	}

	var analysis cloth.Analysis
	if err := json.Unmarshal([]byte(cached), &analysis); err != nil {
		return nil, err
	}

	return &analysis, nil
}

func (s *clothService) saveAnalysis(ctx context.Context, userID, brand string, analysis *cloth.Analysis) (*cloth.AnalyzeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.clothRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, err
	}

	item := entity.WardrobeItem{
		ID:          ULID,
		UserID:      userID,
		Type:        analysis.Type,
		Color:       analysis.Color,
		Pattern:     analysis.Pattern,
		Fabric:      analysis.Fabric,
		Description: analysis.Description,
		Brand:       brand,
		ImageURL:    analysis.ImageURL,
		CreatedAt:   time.Now(),
	}

	if err := repo.Wardrobe.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"item_id":    ULID,
		"type":       analysis.Type,
	}).Info("Garment analyzed and saved to wardrobe")

	return &cloth.AnalyzeResponse{
		ItemID:   ULID,
		Analysis: *analysis,
	}, nil
}

func parseAnalysis(response string) (*cloth.Analysis, error) {
	jsonStart := strings.Index(response, "{")
	jsonEnd := strings.LastIndex(response, "}")

	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		return nil, errors.New("cannot find valid JSON in response")
	}

	jsonStr := response[jsonStart : jsonEnd+1]

	var analysis cloth.Analysis
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		return nil, err
	}

	if analysis.Type == "" || analysis.Description == "" {
		return nil, errors.New("failed to extract essential garment information")
	}

	return &analysis, nil
}

func analysisCacheKey(imageURL string) string {
	sum := sha256.Sum256([]byte(imageURL))
	return "cloth:analysis:" + hex.EncodeToString(sum[:])
}
