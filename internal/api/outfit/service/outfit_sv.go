package outfitService

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"StyleSense/internal/api/outfit"
	"StyleSense/internal/entity"
	"StyleSense/pkg/azsearch"
	contextPkg "StyleSense/pkg/context"
	"StyleSense/pkg/redis"
)

const suggestionSystemPrompt = "You are a fashion expert specialized in creating personalized outfit recommendations."

const referenceCacheTTL = time.Hour

var jsonBlockPattern = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")

func (s *outfitService) Recommend(ctx context.Context, userID string, req outfit.RecommendRequest) (*outfit.RecommendResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	wardrobe := req.WardrobeItems
	if len(wardrobe) == 0 {
		repo, err := s.clothRepository.NewClient(false)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create new client")
			return nil, err
		}

		wardrobe, err = repo.Wardrobe.GetItemsByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	if len(wardrobe) == 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Warn("No wardrobe items to match against")
		return nil, outfit.ErrEmptyWardrobe
	}

	queryText := buildSearchQuery(req.UserFeatures, req.Occasion)

	references, err := s.findReferences(ctx, queryText)
	if err != nil {
		return nil, err
	}
	if len(references) == 0 {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"occasion":   req.Occasion,
		}).Warn("No fashion references found")
		return nil, outfit.ErrNoReferencesFound
	}

	prompt := buildSuggestionPrompt(references, req.UserFeatures, req.Occasion)

	raw, err := s.openai.GenerateCompletion(ctx, suggestionSystemPrompt, prompt)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Outfit suggestion request failed")
		return nil, err
	}

	suggestion, err := parseSuggestion(raw)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to parse outfit suggestion")
		return nil, outfit.ErrUnparsableSuggestion
	}

	matches := matchOutfits(suggestion, wardrobe)
	if len(matches) == 0 {
		return nil, outfit.ErrUnparsableSuggestion
	}

	best := matches[0]
	for _, match := range matches[1:] {
		if match.TotalScore > best.TotalScore {
			best = match
		}
	}

	outfitItems := collectMatchedItems(best, wardrobe)

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"user_id":     userID,
		"outfit_name": best.OutfitName,
		"total_score": best.TotalScore,
		"item_count":  len(outfitItems),
	}).Info("Outfit recommendation generated")

	return &outfit.RecommendResponse{
		UserID:     userID,
		Occasion:   req.Occasion,
		OutfitName: best.OutfitName,
		TotalScore: best.TotalScore,
		Outfit:     outfitItems,
	}, nil
}

// findReferences runs the hybrid search, caching results per query so
// repeated occasions skip the embedding and search round trips.
func (s *outfitService) findReferences(ctx context.Context, queryText string) ([]azsearch.Reference, error) {
	requestID := contextPkg.GetRequestID(ctx)
	cacheKey := referenceCacheKey(queryText)

	if cached, err := s.redis.GetCache(ctx, cacheKey); err == nil {
		var references []azsearch.Reference
		if err := json.Unmarshal([]byte(cached), &references); err == nil {
			return references, nil
		}
	} else if !errors.Is(err, redis.ErrCacheMiss) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Reference cache lookup failed")
	}

	vector, err := s.openai.GenerateEmbedding(ctx, queryText)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Embedding request failed")
		return nil, err
	}

	references, err := s.search.SearchReferences(ctx, queryText, vector)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Fashion reference search failed")
		return nil, err
	}

	if encoded, err := json.Marshal(references); err == nil {
		if err := s.redis.SetCache(ctx, cacheKey, string(encoded), referenceCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to cache fashion references")
		}
	}

	return references, nil
}

func buildSearchQuery(features map[string]string, occasion string) string {
	var b strings.Builder

	b.WriteString("Fashion advice for a ")
	b.WriteString(occasion)
	b.WriteString(" outfit for a person with the following characteristics:\n")

	// Stable ordering keeps the cache key deterministic.
	keys := make([]string, 0, len(features))
	for key := range features {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", strings.ReplaceAll(key, "_", " "), features[key])
	}

	return b.String()
}

func buildSuggestionPrompt(references []azsearch.Reference, features map[string]string, occasion string) string {
	var b strings.Builder

	b.WriteString("Create outfit recommendations for a ")
	b.WriteString(occasion)
	b.WriteString(".\n\nThe person has the following characteristics:\n")

	keys := make([]string, 0, len(features))
	for key := range features {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", strings.ReplaceAll(key, "_", " "), features[key])
	}

	b.WriteString("\nRelevant fashion advice:\n")
	for _, ref := range references {
		b.WriteString("- ")
		b.WriteString(ref.Content)
		b.WriteString("\n")
	}

	b.WriteString(`
Respond with JSON only, in this exact structure:
{
  "outfit_recommendations": [
    {
      "outfit_name": "Name of the outfit",
      "clothing_items": [
        {
          "type": "one from top, bottom, outwear, footwear, accessory",
          "color": "color description",
          "pattern": "pattern description",
          "fabric": "fabric type",
          "description": "overall description of the piece"
        }
      ]
    }
  ]
}
Provide two or three alternative outfits.`)

	return b.String()
}

func parseSuggestion(raw string) (*outfit.Suggestion, error) {
	jsonStr := ""

	if match := jsonBlockPattern.FindStringSubmatch(raw); match != nil {
		jsonStr = match[1]
	} else {
		jsonStart := strings.Index(raw, "{")
		jsonEnd := strings.LastIndex(raw, "}")
		if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
			return nil, errors.New("cannot find valid JSON in response")
		}
		jsonStr = raw[jsonStart : jsonEnd+1]
	}

	var suggestion outfit.Suggestion
	if err := json.Unmarshal([]byte(jsonStr), &suggestion); err != nil {
		return nil, err
	}

	if len(suggestion.OutfitRecommendations) == 0 {
		return nil, errors.New("suggestion contains no outfits")
	}

	for _, rec := range suggestion.OutfitRecommendations {
		if len(rec.ClothingItems) == 0 {
			return nil, errors.New("outfit contains no clothing items")
		}
	}

	return &suggestion, nil
}

func collectMatchedItems(match outfit.OutfitMatch, wardrobe []entity.WardrobeItem) []entity.WardrobeItem {
	byID := make(map[string]entity.WardrobeItem, len(wardrobe))
	for _, item := range wardrobe {
		byID[item.ID] = item
	}

	items := make([]entity.WardrobeItem, 0, len(match.MatchedItems))
	for _, matched := range match.MatchedItems {
		if matched.ItemID == "" {
			continue
		}
		if item, ok := byID[matched.ItemID]; ok {
			items = append(items, item)
		}
	}

	return items
}

func referenceCacheKey(queryText string) string {
	sum := sha256.Sum256([]byte(queryText))
	return "outfit:references:" + hex.EncodeToString(sum[:])
}
