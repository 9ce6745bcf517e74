// Package classify maps geometric ratios to labels from closed enumerations.
// Every decision policy is an ordered rule table held as package data, loaded
// once and read-only afterwards. All intervals are closed-open: a ratio
// sitting exactly on a threshold belongs to the band whose lower bound it is.
package classify

import "math"

type Label string

// Body shapes.
const (
	BodyHourglass        Label = "Hourglass"
	BodyRectangle        Label = "Rectangle"
	BodyPear             Label = "Pear/Triangle"
	BodyInvertedTriangle Label = "Inverted Triangle"
)

// Body proportions.
const (
	ProportionBalanced  Label = "Balanced"
	ProportionLongTorso Label = "Long Torso"
	ProportionLongLegs  Label = "Long Legs"
)

// Face shapes.
const (
	FaceOval    Label = "Oval"
	FaceRound   Label = "Round"
	FaceSquare  Label = "Square"
	FaceOblong  Label = "Oblong"
	FaceHeart   Label = "Heart"
	FaceDiamond Label = "Diamond"
)

// Eye shapes.
const (
	EyeAlmond     Label = "Almond"
	EyeRound      Label = "Round"
	EyeUpturned   Label = "Upturned"
	EyeDownturned Label = "Downturned"
	EyeHooded     Label = "Hooded"
	EyeMonolid    Label = "Monolid"
)

// BodyShapeLabels and friends are the documented closed enumerations, exposed
// for the health endpoint and downstream consumers that pattern-match labels.
var (
	BodyShapeLabels  = []Label{BodyHourglass, BodyRectangle, BodyPear, BodyInvertedTriangle}
	ProportionLabels = []Label{ProportionBalanced, ProportionLongTorso, ProportionLongLegs}
	FaceShapeLabels  = []Label{FaceOval, FaceRound, FaceSquare, FaceOblong, FaceHeart, FaceDiamond}
	EyeShapeLabels   = []Label{EyeAlmond, EyeRound, EyeUpturned, EyeDownturned, EyeHooded, EyeMonolid}
)

// Result carries the label together with the ratios that produced it, so the
// decision can be recomputed offline from the logged diagnostics.
type Result struct {
	Label  Label              `json:"label"`
	Ratios map[string]float64 `json:"ratios"`
}

// Band is one [Min, Max) interval of a rule table.
type Band struct {
	Min   float64
	Max   float64
	Label Label
}

// unbounded marks a band open towards +infinity.
var unbounded = math.Inf(1)

func lookupBand(bands []Band, v float64) (Label, bool) {
	for _, b := range bands {
		if v >= b.Min && v < b.Max {
			return b.Label, true
		}
	}
	return "", false
}
