package classify

import (
	"StyleSense/pkg/geometry"
	"StyleSense/pkg/landmark"
)

// Body shape thresholds. Shoulders and hips count as balanced inside
// [balancedMin, balancedMax); inside that band the waist decides between
// Hourglass and Rectangle.
const (
	shoulderHipBalancedMin = 0.95
	shoulderHipBalancedMax = 1.05
	hourglassWaistHipMax   = 0.85
)

// balancedPending is an internal marker: the shoulder:hip band alone cannot
// decide, the waist ratio is consulted next.
const balancedPending Label = "balanced"

var shoulderHipBands = []Band{
	{Min: 0, Max: shoulderHipBalancedMin, Label: BodyPear},
	{Min: shoulderHipBalancedMin, Max: shoulderHipBalancedMax, Label: balancedPending},
	{Min: shoulderHipBalancedMax, Max: unbounded, Label: BodyInvertedTriangle},
}

var waistHipBands = []Band{
	{Min: 0, Max: hourglassWaistHipMax, Label: BodyHourglass},
	{Min: hourglassWaistHipMax, Max: unbounded, Label: BodyRectangle},
}

// BodyShape classifies from the shoulder:hip ratio, falling through to the
// waist:hip ratio when shoulders and hips are balanced. The waist measurement
// is optional in the detector contract, so its absence only fails the
// balanced branch; a clear Pear or Inverted Triangle never needs it.
func BodyShape(bundle *geometry.Bundle) (*Result, error) {
	shoulderHip, ok := bundle.Get(geometry.RatioShoulderToHip)
	if !ok {
		return nil, landmark.NewInsufficientLandmarksError(geometry.RatioShoulderToHip)
	}

	ratios := map[string]float64{geometry.RatioShoulderToHip: shoulderHip}

	label, ok := lookupBand(shoulderHipBands, shoulderHip)
	if !ok {
		return nil, landmark.NewInsufficientLandmarksError(geometry.RatioShoulderToHip)
	}

	if label == balancedPending {
		waistHip, ok := bundle.Get(geometry.RatioWaistToHip)
		if !ok {
			return nil, landmark.NewInsufficientLandmarksError(geometry.RatioWaistToHip)
		}
		ratios[geometry.RatioWaistToHip] = waistHip
		label, _ = lookupBand(waistHipBands, waistHip)
	}

	return &Result{Label: label, Ratios: ratios}, nil
}

// Body proportion bands over the torso:leg ratio.
const (
	proportionBalancedMin = 0.8
	proportionBalancedMax = 1.2
)

var torsoLegBands = []Band{
	{Min: 0, Max: proportionBalancedMin, Label: ProportionLongLegs},
	{Min: proportionBalancedMin, Max: proportionBalancedMax, Label: ProportionBalanced},
	{Min: proportionBalancedMax, Max: unbounded, Label: ProportionLongTorso},
}

// BodyProportion classifies the torso:leg ratio into a proportion label.
func BodyProportion(bundle *geometry.Bundle) (*Result, error) {
	torsoLeg, ok := bundle.Get(geometry.RatioTorsoToLeg)
	if !ok {
		return nil, landmark.NewInsufficientLandmarksError(geometry.RatioTorsoToLeg)
	}

	label, ok := lookupBand(torsoLegBands, torsoLeg)
	if !ok {
		return nil, landmark.NewInsufficientLandmarksError(geometry.RatioTorsoToLeg)
	}

	return &Result{
		Label:  label,
		Ratios: map[string]float64{geometry.RatioTorsoToLeg: torsoLeg},
	}, nil
}
