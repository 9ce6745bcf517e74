package colorsample

import (
	"image"

	"StyleSense/pkg/landmark"
)

// HairColor is a classified hair sample.
type HairColor struct {
	Label    string  `json:"label"`
	Sample   RGB     `json:"sample"`
	Distance float64 `json:"distance"`
}

type hairRef struct {
	label string
	color RGB
}

var hairPalette = []hairRef{
	{"Black", RGB{30, 28, 28}},
	{"Dark Brown", RGB{70, 50, 38}},
	{"Brown", RGB{110, 78, 54}},
	{"Light Brown", RGB{150, 112, 80}},
	{"Blonde", RGB{208, 178, 128}},
	{"Red", RGB{150, 60, 40}},
	{"Auburn", RGB{120, 62, 42}},
	{"Gray", RGB{150, 150, 150}},
	{"White", RGB{228, 228, 228}},
}

// SampleHair averages a band above the brow line, clipped to the image, and
// maps the mean color to the nearest palette entry. The band stops short of
// the brows so skin never leaks into the sample.
func SampleHair(img image.Image, set *landmark.Set) (*HairColor, error) {
	points, err := set.Require(
		landmark.JawLeft, landmark.JawRight,
		landmark.BrowLeft, landmark.BrowRight,
		landmark.Chin,
	)
	if err != nil {
		return nil, err
	}

	jawLeft, jawRight := points[0], points[1]
	browY := (points[2].Y + points[3].Y) / 2
	chin := points[4]

	faceWidth := jawRight.X - jawLeft.X
	faceHeight := chin.Y - browY

	left := jawLeft.X - 0.15*faceWidth
	right := jawRight.X + 0.15*faceWidth
	top := browY - 0.6*faceHeight
	if top < 0 {
		top = 0
	}
	bottom := browY - 0.2*faceHeight

	rect := image.Rect(int(left), int(top), int(right), int(bottom))
	pixels := collectRegion(img, rect)

	mean, stddev, kept := meanColor(pixels)
	if kept < minUsablePixels {
		return nil, NewAmbiguousSampleError("hair", "too few usable pixels")
	}
	if stddev > maxChannelStddev {
		return nil, NewAmbiguousSampleError("hair", "sample variance too high")
	}

	best := hairPalette[0]
	bestDist := mean.distance(best.color)
	for _, ref := range hairPalette[1:] {
		if d := mean.distance(ref.color); d < bestDist {
			best, bestDist = ref, d
		}
	}
	if bestDist > maxPaletteDistance {
		return nil, NewAmbiguousSampleError("hair", "no palette entry within tolerance")
	}

	return &HairColor{Label: best.label, Sample: mean, Distance: bestDist}, nil
}
