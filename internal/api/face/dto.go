package face

import "StyleSense/pkg/colorsample"

type AnalyzeRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

type ShapeResult struct {
	Label  string             `json:"label"`
	Ratios map[string]float64 `json:"ratios"`
}

// AnalyzeResponse carries one entry per facial feature. A feature that could
// not be classified is nil, with the reason under Errors keyed by feature
// name.
type AnalyzeResponse struct {
	FaceShape *ShapeResult           `json:"face_shape,omitempty"`
	EyeShape  *ShapeResult           `json:"eye_shape,omitempty"`
	SkinTone  *colorsample.SkinTone  `json:"skin_tone,omitempty"`
	HairColor *colorsample.HairColor `json:"hair_color,omitempty"`
	Errors    map[string]string      `json:"errors,omitempty"`
}

type FrameError struct {
	Error string `json:"error"`
}
