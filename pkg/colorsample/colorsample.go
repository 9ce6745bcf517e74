package colorsample

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Sampling guards. A region that fails one of these cannot produce a
// trustworthy mean color.
const (
	minUsablePixels    = 100
	maxChannelStddev   = 70.0
	maxPaletteDistance = 120.0

	// Specular highlights read as near-white with almost no saturation.
	glareMaxSaturation = 0.08
	glareMinValue      = 0.92

	// Pixels whose luminance sits outside this many standard deviations of
	// the region mean are discarded before averaging.
	outlierSigma = 2.0
)

// RGB is a color sample with channels in [0, 255].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

func (c RGB) distance(o RGB) float64 {
	dr := c.R - o.R
	dg := c.G - o.G
	db := c.B - o.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func (c RGB) luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// AmbiguousSampleError reports a region whose pixels do not support a
// confident color classification.
type AmbiguousSampleError struct {
	Region string
	Reason string
}

func (e *AmbiguousSampleError) Error() string {
	return fmt.Sprintf("ambiguous %s sample: %s", e.Region, e.Reason)
}

func NewAmbiguousSampleError(region, reason string) error {
	return &AmbiguousSampleError{Region: region, Reason: reason}
}

// rgbToHSV converts channel values in [0, 1]. Only used to spot glare, not
// for classification.
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	v = max
	delta := max - min
	if max > 0 {
		s = delta / max
	}
	if delta == 0 {
		return 0, s, v
	}
	switch max {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, v
}

// collectRegion gathers the in-bounds, non-glare pixels of rect. Portions of
// rect outside the image are silently clipped.
func collectRegion(img image.Image, rect image.Rectangle) []RGB {
	clipped := rect.Intersect(img.Bounds())
	if clipped.Empty() {
		return nil
	}

	region := imaging.Crop(img, clipped)
	bounds := region.Bounds()
	pixels := make([]RGB, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := region.At(x, y).RGBA()
			c := RGB{R: float64(r >> 8), G: float64(g >> 8), B: float64(b >> 8)}
			_, s, v := rgbToHSV(c.R/255, c.G/255, c.B/255)
			if s < glareMaxSaturation && v > glareMinValue {
				continue
			}
			pixels = append(pixels, c)
		}
	}
	return pixels
}

// meanColor averages pixels after dropping luminance outliers. Returns the
// mean, the largest per-channel standard deviation of the kept pixels, and
// how many pixels were kept.
func meanColor(pixels []RGB) (RGB, float64, int) {
	if len(pixels) == 0 {
		return RGB{}, 0, 0
	}

	var lumSum float64
	for _, p := range pixels {
		lumSum += p.luminance()
	}
	lumMean := lumSum / float64(len(pixels))

	var lumVar float64
	for _, p := range pixels {
		d := p.luminance() - lumMean
		lumVar += d * d
	}
	lumStd := math.Sqrt(lumVar / float64(len(pixels)))

	kept := pixels[:0:0]
	for _, p := range pixels {
		if math.Abs(p.luminance()-lumMean) <= outlierSigma*lumStd {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		kept = pixels
	}

	var sum RGB
	for _, p := range kept {
		sum.R += p.R
		sum.G += p.G
		sum.B += p.B
	}
	n := float64(len(kept))
	mean := RGB{R: sum.R / n, G: sum.G / n, B: sum.B / n}

	var varR, varG, varB float64
	for _, p := range kept {
		varR += (p.R - mean.R) * (p.R - mean.R)
		varG += (p.G - mean.G) * (p.G - mean.G)
		varB += (p.B - mean.B) * (p.B - mean.B)
	}
	maxStd := math.Sqrt(math.Max(varR, math.Max(varG, varB)) / n)

	return mean, maxStd, len(kept)
}
