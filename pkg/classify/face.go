package classify

import (
	"StyleSense/pkg/geometry"
	"StyleSense/pkg/landmark"
)

// Range is a closed-open [Min, Max) interval; the zero value matches
// everything from 0 upwards.
type Range struct {
	Min float64
	Max float64
}

func (r Range) contains(v float64) bool {
	max := r.Max
	if max == 0 {
		max = unbounded
	}
	return v >= r.Min && v < max
}

// faceRule is one row of the face-shape table: every non-default range must
// match. Rows are evaluated in order, first match wins.
type faceRule struct {
	LengthToWidth Range
	JawToCheek    Range
	ForeheadToJaw Range
	Label         Label
}

var faceShapeRules = []faceRule{
	// Long faces first: length well beyond width dominates other cues.
	{LengthToWidth: Range{Min: 1.5}, Label: FaceOblong},
	// Strong jaw at moderate length reads Square.
	{LengthToWidth: Range{Min: 1.0, Max: 1.5}, JawToCheek: Range{Min: 0.9}, Label: FaceSquare},
	// Wide forehead tapering to a narrow jaw.
	{ForeheadToJaw: Range{Min: 1.25}, JawToCheek: Range{Max: 0.8}, Label: FaceHeart},
	// Cheekbones widest, both forehead and jaw narrow.
	{JawToCheek: Range{Max: 0.78}, ForeheadToJaw: Range{Max: 0.95}, Label: FaceDiamond},
	// Short, soft-jawed faces.
	{LengthToWidth: Range{Max: 1.1}, Label: FaceRound},
}

// FaceShape classifies from the three facial ratios. Falls back to Oval when
// no rule matches, which is itself a documented label, not a default-by-
// accident: Oval is the residual class of the table.
func FaceShape(bundle *geometry.Bundle) (*Result, error) {
	lengthWidth, ok1 := bundle.Get(geometry.RatioFaceLengthToWidth)
	jawCheek, ok2 := bundle.Get(geometry.RatioJawToCheek)
	foreheadJaw, ok3 := bundle.Get(geometry.RatioForeheadToJaw)

	var missing []string
	if !ok1 {
		missing = append(missing, geometry.RatioFaceLengthToWidth)
	}
	if !ok2 {
		missing = append(missing, geometry.RatioJawToCheek)
	}
	if !ok3 {
		missing = append(missing, geometry.RatioForeheadToJaw)
	}
	if len(missing) > 0 {
		return nil, landmark.NewInsufficientLandmarksError(missing...)
	}

	label := FaceOval
	for _, rule := range faceShapeRules {
		if rule.LengthToWidth.contains(lengthWidth) &&
			rule.JawToCheek.contains(jawCheek) &&
			rule.ForeheadToJaw.contains(foreheadJaw) {
			label = rule.Label
			break
		}
	}

	return &Result{
		Label: label,
		Ratios: map[string]float64{
			geometry.RatioFaceLengthToWidth: lengthWidth,
			geometry.RatioJawToCheek:        jawCheek,
			geometry.RatioForeheadToJaw:     foreheadJaw,
		},
	}, nil
}
