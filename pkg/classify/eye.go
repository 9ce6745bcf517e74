package classify

import (
	"math"

	"StyleSense/pkg/geometry"
	"StyleSense/pkg/landmark"
)

// Eye aspect-ratio bands (width over mean lid opening). The middle band is
// split by corner tilt, the lowest by lid-gap depth.
const (
	eyeAlmondAspectMin = 3.5
	eyeTiltAspectMin   = 2.8
	eyeRoundAspectMin  = 2.2

	// Outer-corner vertical offset (pixels) below which the eye counts as
	// level rather than up- or downturned.
	eyeTiltEpsilon = 0.5

	// Visible lid gap (pixels) below which a low-aspect eye reads Monolid.
	eyeMonolidMaxLidGap = 3.0
)

const (
	tiltPending Label = "tilt"
	lidPending  Label = "lid"
)

var eyeAspectBands = []Band{
	{Min: eyeAlmondAspectMin, Max: unbounded, Label: EyeAlmond},
	{Min: eyeTiltAspectMin, Max: eyeAlmondAspectMin, Label: tiltPending},
	{Min: eyeRoundAspectMin, Max: eyeTiltAspectMin, Label: EyeRound},
	{Min: 0, Max: eyeRoundAspectMin, Label: lidPending},
}

// EyeShape classifies from averaged per-eye measurements. When the two eyes
// disagree their ratios are averaged before any band lookup; the classifier
// never picks one eye over the other.
func EyeShape(set *landmark.Set, bundle *geometry.Bundle) (*Result, error) {
	leftAspect, ok1 := bundle.Get(geometry.RatioLeftEyeAspect)
	rightAspect, ok2 := bundle.Get(geometry.RatioRightEyeAspect)

	var missing []string
	if !ok1 {
		missing = append(missing, geometry.RatioLeftEyeAspect)
	}
	if !ok2 {
		missing = append(missing, geometry.RatioRightEyeAspect)
	}
	if len(missing) > 0 {
		return nil, landmark.NewInsufficientLandmarksError(missing...)
	}

	aspect := (leftAspect + rightAspect) / 2

	ratios := map[string]float64{
		geometry.RatioLeftEyeAspect:  leftAspect,
		geometry.RatioRightEyeAspect: rightAspect,
		"eye_aspect":                 aspect,
	}

	label, ok := lookupBand(eyeAspectBands, aspect)
	if !ok {
		return nil, landmark.NewInsufficientLandmarksError("eye_aspect")
	}

	switch label {
	case tiltPending:
		tilt, err := cornerTilt(set)
		if err != nil {
			return nil, err
		}
		ratios["corner_tilt"] = tilt
		switch {
		case tilt > eyeTiltEpsilon:
			label = EyeUpturned
		case tilt < -eyeTiltEpsilon:
			label = EyeDownturned
		default:
			label = EyeAlmond
		}
	case lidPending:
		gap, err := lidGap(set)
		if err != nil {
			return nil, err
		}
		ratios["lid_gap"] = gap
		if gap < eyeMonolidMaxLidGap {
			label = EyeMonolid
		} else {
			label = EyeHooded
		}
	}

	return &Result{Label: label, Ratios: ratios}, nil
}

// cornerTilt is the mean vertical offset of the inner corner relative to the
// outer corner: positive when the outer corners sit higher (image Y grows
// downward), so positive means upturned.
func cornerTilt(set *landmark.Set) (float64, error) {
	points, err := set.Require(
		landmark.LeftEyeOuterCorner, landmark.LeftEyeInnerCorner,
		landmark.RightEyeOuterCorner, landmark.RightEyeInnerCorner,
	)
	if err != nil {
		return 0, err
	}

	leftTilt := points[1].Y - points[0].Y
	rightTilt := points[3].Y - points[2].Y
	return (leftTilt + rightTilt) / 2, nil
}

// lidGap is the mean vertical spread between the outer upper and lower lid
// points across both eyes.
func lidGap(set *landmark.Set) (float64, error) {
	points, err := set.Require(
		landmark.LeftEyeUpperOuter, landmark.LeftEyeLowerOuter,
		landmark.RightEyeUpperOuter, landmark.RightEyeLowerOuter,
	)
	if err != nil {
		return 0, err
	}

	leftGap := math.Abs(points[0].Y - points[1].Y)
	rightGap := math.Abs(points[2].Y - points[3].Y)
	return (leftGap + rightGap) / 2, nil
}
