package outfitService

import (
	"regexp"
	"strings"

	"StyleSense/internal/api/outfit"
	"StyleSense/internal/entity"
)

// Attribute weights for wardrobe matching. Type must match exactly before
// any other attribute counts.
const (
	typeMatchScore    = 1.0
	colorMatchScore   = 2.0
	patternMatchScore = 4.0
	fabricMatchScore  = 3.0
	descriptionWeight = 1.5

	// Two matched items with near-identical descriptions make a poor
	// outfit; above this similarity the second item is penalized.
	duplicateDescriptionThreshold = 0.7
	duplicateDescriptionWeight    = 2.0
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)

func normalize(text string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(text), "")
}

// textSimilarity is the ratio of matching characters to total length over
// the longest common blocks of the normalized strings, in [0, 1].
func textSimilarity(a, b string) float64 {
	a, b = normalize(a), normalize(b)
	if a == "" || b == "" {
		return 0
	}
	matches := matchingBlocks(a, b)
	return 2 * float64(matches) / float64(len(a)+len(b))
}

// matchingBlocks counts matched characters by recursively splitting around
// the longest common substring.
func matchingBlocks(a, b string) int {
	size, ai, bi := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingBlocks(a[:ai], b[:bi]) +
		matchingBlocks(a[ai+size:], b[bi+size:])
}

func longestCommonSubstring(a, b string) (size, ai, bi int) {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > size {
					size = cur[j]
					ai = i - size
					bi = j - size
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return size, ai, bi
}

// matchScore scores a wardrobe item against a suggested piece. Returns -1
// when the types differ.
func matchScore(suggested outfit.SuggestedItem, item entity.WardrobeItem) float64 {
	if normalize(item.Type) != normalize(suggested.Type) {
		return -1
	}

	score := typeMatchScore

	if normalize(item.Color) == normalize(suggested.Color) {
		score += colorMatchScore
	}

	if normalize(item.Pattern) == normalize(suggested.Pattern) {
		score += patternMatchScore
	}

	fabric1 := normalize(item.Fabric)
	fabric2 := normalize(suggested.Fabric)
	if fabric1 != "" && fabric2 != "" && (strings.Contains(fabric1, fabric2) || strings.Contains(fabric2, fabric1)) {
		score += fabricMatchScore
	}

	score += textSimilarity(item.Description, suggested.Description) * descriptionWeight

	return score
}

// findBestMatch picks the highest-scoring unused wardrobe item for a
// suggested piece, penalizing items too similar to ones already matched in
// the same outfit.
func findBestMatch(
	suggested outfit.SuggestedItem,
	wardrobe []entity.WardrobeItem,
	used map[string]bool,
	matchedInSet []entity.WardrobeItem,
) (*entity.WardrobeItem, float64) {
	var best *entity.WardrobeItem
	highest := -1.0

	for i := range wardrobe {
		item := &wardrobe[i]
		if used[item.ID] {
			continue
		}
		if normalize(item.Type) != normalize(suggested.Type) {
			continue
		}

		score := matchScore(suggested, *item)

		if score > 0 {
			for _, matched := range matchedInSet {
				similarity := textSimilarity(item.Description, matched.Description)
				if similarity > duplicateDescriptionThreshold {
					score -= similarity * duplicateDescriptionWeight
				}
			}
		}

		if score > highest {
			best = item
			highest = score
		}
	}

	return best, highest
}

// matchOutfits pairs every suggested outfit with wardrobe items and totals
// the per-item scores. Items are consumed across outfits so no garment is
// recommended twice.
func matchOutfits(suggestion *outfit.Suggestion, wardrobe []entity.WardrobeItem) []outfit.OutfitMatch {
	matches := make([]outfit.OutfitMatch, 0, len(suggestion.OutfitRecommendations))
	used := make(map[string]bool)

	for _, suggested := range suggestion.OutfitRecommendations {
		var matchedItems []outfit.MatchedItem
		var matchedObjects []entity.WardrobeItem
		var totalScore float64

		for _, piece := range suggested.ClothingItems {
			best, score := findBestMatch(piece, wardrobe, used, matchedObjects)

			if best != nil {
				matchedItems = append(matchedItems, outfit.MatchedItem{
					ItemID:      best.ID,
					Description: best.Description,
					Type:        best.Type,
					Color:       best.Color,
					Fabric:      best.Fabric,
					Score:       score,
					Suggestion:  piece,
				})
				matchedObjects = append(matchedObjects, *best)
				used[best.ID] = true
				totalScore += score
			} else {
				matchedItems = append(matchedItems, outfit.MatchedItem{
					Description: "No match found",
					Type:        piece.Type,
					Score:       -1,
					Suggestion:  piece,
				})
			}
		}

		matches = append(matches, outfit.OutfitMatch{
			OutfitName:   suggested.OutfitName,
			TotalScore:   totalScore,
			MatchedItems: matchedItems,
		})
	}

	return matches
}
