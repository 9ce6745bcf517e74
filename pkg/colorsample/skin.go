package colorsample

import (
	"image"

	"StyleSense/pkg/landmark"
)

// Skin depth and undertone labels.
const (
	DepthFair   = "Fair"
	DepthLight  = "Light"
	DepthMedium = "Medium"
	DepthTan    = "Tan"
	DepthDeep   = "Deep"

	UndertoneWarm    = "Warm"
	UndertoneCool    = "Cool"
	UndertoneNeutral = "Neutral"
)

// SkinTone is a classified skin sample. Label is "<Depth> <Undertone>".
type SkinTone struct {
	Depth     string  `json:"depth"`
	Undertone string  `json:"undertone"`
	Label     string  `json:"label"`
	Sample    RGB     `json:"sample"`
	Distance  float64 `json:"distance"`
}

type skinRef struct {
	depth     string
	undertone string
	color     RGB
}

// skinRefs is the calibrated depth x undertone reference table. Warm entries
// lean yellow, cool entries lean pink, neutral sits between.
var skinRefs = []skinRef{
	{DepthFair, UndertoneWarm, RGB{248, 228, 204}},
	{DepthFair, UndertoneCool, RGB{244, 226, 212}},
	{DepthFair, UndertoneNeutral, RGB{246, 227, 208}},

	{DepthLight, UndertoneWarm, RGB{238, 212, 182}},
	{DepthLight, UndertoneCool, RGB{234, 211, 192}},
	{DepthLight, UndertoneNeutral, RGB{236, 212, 187}},

	{DepthMedium, UndertoneWarm, RGB{226, 193, 161}},
	{DepthMedium, UndertoneCool, RGB{222, 192, 170}},
	{DepthMedium, UndertoneNeutral, RGB{224, 193, 166}},

	{DepthTan, UndertoneWarm, RGB{208, 176, 136}},
	{DepthTan, UndertoneCool, RGB{203, 175, 149}},
	{DepthTan, UndertoneNeutral, RGB{206, 176, 143}},

	{DepthDeep, UndertoneWarm, RGB{166, 128, 92}},
	{DepthDeep, UndertoneCool, RGB{160, 127, 105}},
	{DepthDeep, UndertoneNeutral, RGB{163, 128, 99}},
}

// SampleSkin averages the two cheek regions and the forehead, then maps the
// mean color to the nearest reference tone. Regions that fall partly outside
// the image are clipped rather than failed.
func SampleSkin(img image.Image, set *landmark.Set) (*SkinTone, error) {
	points, err := set.Require(
		landmark.CheekLeftUpper, landmark.CheekLeftMid, landmark.CheekLeftLower,
		landmark.CheekRightLower, landmark.CheekRightMid, landmark.CheekRightUpper,
		landmark.NoseBridge, landmark.Chin,
		landmark.JawLeft, landmark.JawRight,
	)
	if err != nil {
		return nil, err
	}

	leftCheek := centroid(points[0], points[1], points[2])
	rightCheek := centroid(points[3], points[4], points[5])
	bridge, chin := points[6], points[7]
	faceWidth := points[9].X - points[8].X

	// Forehead sits above the bridge by a fifth of the bridge-to-chin drop.
	forehead := landmark.Point{
		X: bridge.X,
		Y: bridge.Y - (chin.Y-bridge.Y)*0.2,
	}

	half := int(faceWidth / 20)
	if half < 4 {
		half = 4
	}

	var pixels []RGB
	for _, center := range []landmark.Point{leftCheek, rightCheek, forehead} {
		pixels = append(pixels, collectRegion(img, squareAround(center, half))...)
	}

	mean, stddev, kept := meanColor(pixels)
	if kept < minUsablePixels {
		return nil, NewAmbiguousSampleError("skin", "too few usable pixels")
	}
	if stddev > maxChannelStddev {
		return nil, NewAmbiguousSampleError("skin", "sample variance too high")
	}

	best := skinRefs[0]
	bestDist := mean.distance(best.color)
	for _, ref := range skinRefs[1:] {
		if d := mean.distance(ref.color); d < bestDist {
			best, bestDist = ref, d
		}
	}
	if bestDist > maxPaletteDistance {
		return nil, NewAmbiguousSampleError("skin", "no reference tone within tolerance")
	}

	return &SkinTone{
		Depth:     best.depth,
		Undertone: best.undertone,
		Label:     best.depth + " " + best.undertone,
		Sample:    mean,
		Distance:  bestDist,
	}, nil
}

func centroid(points ...landmark.Point) landmark.Point {
	var sum landmark.Point
	for _, p := range points {
		sum.X += p.X
		sum.Y += p.Y
	}
	n := float64(len(points))
	return landmark.Point{X: sum.X / n, Y: sum.Y / n}
}

func squareAround(center landmark.Point, half int) image.Rectangle {
	cx, cy := int(center.X), int(center.Y)
	return image.Rect(cx-half, cy-half, cx+half, cy+half)
}
