package cloth

import "StyleSense/internal/entity"

type AnalyzeRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
	Brand    string `json:"brand" validate:"omitempty,max=100"`
}

// Analysis is the structured garment description returned by the vision
// model.
type Analysis struct {
	Type        string `json:"type"`
	Color       string `json:"color"`
	Pattern     string `json:"pattern"`
	Fabric      string `json:"fabric"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	CreatedAt   int64  `json:"created_at"`
}

type AnalyzeResponse struct {
	ItemID string `json:"item_id"`
	Analysis
}

type WardrobeResponse struct {
	Items []entity.WardrobeItem `json:"items"`
}
