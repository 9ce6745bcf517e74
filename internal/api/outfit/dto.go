package outfit

import "StyleSense/internal/entity"

type RecommendRequest struct {
	Occasion string `json:"occasion" validate:"required,max=200"`

	// UserFeatures carries the analysis results the recommendation is
	// personalized on (body shape, skin tone, hair color and so on).
	UserFeatures map[string]string `json:"user_features" validate:"required"`

	// WardrobeItems optionally overrides the saved wardrobe.
	WardrobeItems []entity.WardrobeItem `json:"wardrobe_items"`
}

// Suggestion is the structured outfit proposal parsed from the model output.
type Suggestion struct {
	OutfitRecommendations []SuggestedOutfit `json:"outfit_recommendations"`
}

type SuggestedOutfit struct {
	OutfitName    string          `json:"outfit_name"`
	ClothingItems []SuggestedItem `json:"clothing_items"`
}

type SuggestedItem struct {
	Type        string `json:"type"`
	Color       string `json:"color"`
	Pattern     string `json:"pattern"`
	Fabric      string `json:"fabric"`
	Description string `json:"description"`
}

// MatchedItem pairs a suggested piece with the closest wardrobe item. ItemID
// is empty when nothing in the wardrobe fits.
type MatchedItem struct {
	ItemID      string        `json:"item_id,omitempty"`
	Description string        `json:"description"`
	Type        string        `json:"type"`
	Color       string        `json:"color,omitempty"`
	Fabric      string        `json:"fabric,omitempty"`
	Score       float64       `json:"score"`
	Suggestion  SuggestedItem `json:"suggestion"`
}

type OutfitMatch struct {
	OutfitName   string        `json:"outfit_name"`
	TotalScore   float64       `json:"total_score"`
	MatchedItems []MatchedItem `json:"matched_items"`
}

type RecommendResponse struct {
	UserID     string                `json:"user_id"`
	Occasion   string                `json:"occasion"`
	OutfitName string                `json:"outfit_name"`
	TotalScore float64               `json:"total_score"`
	Outfit     []entity.WardrobeItem `json:"outfit"`
}
