package outfitService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StyleSense/internal/api/outfit"
	"StyleSense/internal/entity"
)

func TestTextSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
		delta    float64
	}{
		{"identical strings", "navy blue shirt", "navy blue shirt", 1.0, 1e-9},
		{"case and punctuation ignored", "Navy-Blue Shirt!", "navy blue shirt", 1.0, 1e-9},
		{"empty string", "", "navy blue shirt", 0, 1e-9},
		{"disjoint strings", "xyz", "abc", 0, 1e-9},
		{"partial overlap", "blue denim jacket", "black denim jacket", 0.8, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := textSimilarity(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, tt.delta)
		})
	}
}

func TestTextSimilarityIsSymmetricEnoughForRanking(t *testing.T) {
	a, b := "white cotton t-shirt", "white linen shirt"
	assert.InDelta(t, textSimilarity(a, b), textSimilarity(b, a), 0.1)
}

func TestMatchScore(t *testing.T) {
	suggested := outfit.SuggestedItem{
		Type:        "top",
		Color:       "navy blue",
		Pattern:     "solid",
		Fabric:      "cotton",
		Description: "navy blue cotton shirt",
	}

	t.Run("type mismatch disqualifies", func(t *testing.T) {
		item := entity.WardrobeItem{Type: "bottom", Color: "navy blue"}
		assert.Equal(t, -1.0, matchScore(suggested, item))
	})

	t.Run("full attribute match", func(t *testing.T) {
		item := entity.WardrobeItem{
			Type:        "top",
			Color:       "Navy Blue",
			Pattern:     "solid",
			Fabric:      "100% cotton",
			Description: "navy blue cotton shirt",
		}
		// type 1 + color 2 + pattern 4 + fabric 3 + identical description 1.5
		assert.InDelta(t, 11.5, matchScore(suggested, item), 1e-9)
	})

	t.Run("type only", func(t *testing.T) {
		item := entity.WardrobeItem{
			Type:        "top",
			Color:       "red",
			Pattern:     "striped",
			Fabric:      "wool",
			Description: "xyz",
		}
		score := matchScore(suggested, item)
		assert.GreaterOrEqual(t, score, 1.0)
		assert.Less(t, score, 2.0)
	})

	t.Run("fabric matches on substring", func(t *testing.T) {
		base := entity.WardrobeItem{Type: "top", Color: "red", Pattern: "striped"}

		withFabric := base
		withFabric.Fabric = "organic cotton"
		withoutFabric := base
		withoutFabric.Fabric = "polyester"

		assert.InDelta(t, fabricMatchScore, matchScore(suggested, withFabric)-matchScore(suggested, withoutFabric), 1e-9)
	})
}

func suggestionOf(outfits ...outfit.SuggestedOutfit) *outfit.Suggestion {
	return &outfit.Suggestion{OutfitRecommendations: outfits}
}

func TestMatchOutfits(t *testing.T) {
	wardrobe := []entity.WardrobeItem{
		{ID: "1", Type: "top", Color: "white", Pattern: "solid", Fabric: "cotton", Description: "white cotton shirt"},
		{ID: "2", Type: "bottom", Color: "black", Pattern: "solid", Fabric: "denim", Description: "black denim jeans"},
		{ID: "3", Type: "footwear", Color: "brown", Pattern: "plain", Fabric: "leather", Description: "brown leather boots"},
	}

	suggestion := suggestionOf(outfit.SuggestedOutfit{
		OutfitName: "Casual Friday",
		ClothingItems: []outfit.SuggestedItem{
			{Type: "top", Color: "white", Pattern: "solid", Fabric: "cotton", Description: "white cotton shirt"},
			{Type: "bottom", Color: "black", Pattern: "solid", Fabric: "denim", Description: "black denim jeans"},
		},
	})

	matches := matchOutfits(suggestion, wardrobe)
	require.Len(t, matches, 1)

	match := matches[0]
	assert.Equal(t, "Casual Friday", match.OutfitName)
	require.Len(t, match.MatchedItems, 2)
	assert.Equal(t, "1", match.MatchedItems[0].ItemID)
	assert.Equal(t, "2", match.MatchedItems[1].ItemID)
	assert.InDelta(t, 23.0, match.TotalScore, 1e-9)
}

func TestMatchOutfitsNoTypeMatch(t *testing.T) {
	wardrobe := []entity.WardrobeItem{
		{ID: "1", Type: "top", Description: "white shirt"},
	}

	suggestion := suggestionOf(outfit.SuggestedOutfit{
		OutfitName: "Evening",
		ClothingItems: []outfit.SuggestedItem{
			{Type: "footwear", Description: "black heels"},
		},
	})

	matches := matchOutfits(suggestion, wardrobe)
	require.Len(t, matches, 1)
	require.Len(t, matches[0].MatchedItems, 1)

	unmatched := matches[0].MatchedItems[0]
	assert.Empty(t, unmatched.ItemID)
	assert.Equal(t, "No match found", unmatched.Description)
	assert.Equal(t, -1.0, unmatched.Score)

	// Unmatched placeholders carry a -1 score of their own but never
	// drag the outfit total down.
	assert.Equal(t, 0.0, matches[0].TotalScore)
}

func TestMatchOutfitsConsumesItemsAcrossOutfits(t *testing.T) {
	wardrobe := []entity.WardrobeItem{
		{ID: "1", Type: "top", Color: "white", Description: "white shirt"},
	}

	piece := outfit.SuggestedItem{Type: "top", Color: "white", Description: "white shirt"}
	suggestion := suggestionOf(
		outfit.SuggestedOutfit{OutfitName: "First", ClothingItems: []outfit.SuggestedItem{piece}},
		outfit.SuggestedOutfit{OutfitName: "Second", ClothingItems: []outfit.SuggestedItem{piece}},
	)

	matches := matchOutfits(suggestion, wardrobe)
	require.Len(t, matches, 2)

	assert.Equal(t, "1", matches[0].MatchedItems[0].ItemID)
	assert.Empty(t, matches[1].MatchedItems[0].ItemID, "the single shirt was already consumed")
}

func TestMatchOutfitsPenalizesDuplicateDescriptions(t *testing.T) {
	wardrobe := []entity.WardrobeItem{
		{ID: "1", Type: "top", Color: "white", Description: "plain white cotton shirt"},
		{ID: "2", Type: "top", Color: "white", Description: "plain white cotton shirts"},
		{ID: "3", Type: "top", Color: "white", Description: "ribbed turtleneck sweater"},
	}

	suggestion := suggestionOf(outfit.SuggestedOutfit{
		OutfitName: "Layered",
		ClothingItems: []outfit.SuggestedItem{
			{Type: "top", Color: "white", Description: "plain white cotton shirt"},
			{Type: "top", Color: "white", Description: "plain white cotton shirt"},
		},
	})

	matches := matchOutfits(suggestion, wardrobe)
	require.Len(t, matches, 1)
	require.Len(t, matches[0].MatchedItems, 2)

	assert.Equal(t, "1", matches[0].MatchedItems[0].ItemID)
	// The near-duplicate shirt loses enough score to the penalty that the
	// dissimilar sweater wins the second slot.
	assert.Equal(t, "3", matches[0].MatchedItems[1].ItemID)
}

func TestParseSuggestion(t *testing.T) {
	valid := `{"outfit_recommendations":[{"outfit_name":"Casual","clothing_items":[{"type":"top","color":"white","pattern":"solid","fabric":"cotton","description":"white shirt"}]}]}`

	t.Run("fenced json block", func(t *testing.T) {
		raw := "Here are your outfits:\n```json\n" + valid + "\n```\nEnjoy!"
		suggestion, err := parseSuggestion(raw)
		require.NoError(t, err)
		require.Len(t, suggestion.OutfitRecommendations, 1)
		assert.Equal(t, "Casual", suggestion.OutfitRecommendations[0].OutfitName)
	})

	t.Run("bare braces fallback", func(t *testing.T) {
		raw := "Result: " + valid + " -- done"
		suggestion, err := parseSuggestion(raw)
		require.NoError(t, err)
		require.Len(t, suggestion.OutfitRecommendations, 1)
	})

	t.Run("no json at all", func(t *testing.T) {
		_, err := parseSuggestion("I cannot help with that.")
		require.Error(t, err)
	})

	t.Run("empty recommendations", func(t *testing.T) {
		_, err := parseSuggestion(`{"outfit_recommendations":[]}`)
		require.Error(t, err)
	})

	t.Run("outfit without items", func(t *testing.T) {
		_, err := parseSuggestion(`{"outfit_recommendations":[{"outfit_name":"Empty","clothing_items":[]}]}`)
		require.Error(t, err)
	})
}

func TestBuildSearchQueryIsDeterministic(t *testing.T) {
	features := map[string]string{
		"body_shape": "Hourglass",
		"skin_tone":  "Tan Warm",
		"face_shape": "Oval",
	}

	first := buildSearchQuery(features, "summer wedding")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, buildSearchQuery(features, "summer wedding"))
	}

	assert.Contains(t, first, "summer wedding")
	assert.Contains(t, first, "body shape: Hourglass")
}
