package body

import "StyleSense/pkg/classify"

type AnalyzeRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

type AnalyzeResponse struct {
	Shape             string                    `json:"shape"`
	ShapeDetails      classify.ShapeDetail      `json:"shape_details"`
	Proportion        string                    `json:"proportion"`
	ProportionDetails classify.ProportionDetail `json:"proportion_details"`
	Ratios            map[string]float64        `json:"ratios"`
}

// FrameError is sent over the analysis websocket when a frame fails.
type FrameError struct {
	Error string `json:"error"`
}
