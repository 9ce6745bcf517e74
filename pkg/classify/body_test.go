package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StyleSense/pkg/geometry"
	"StyleSense/pkg/landmark"
)

// poseSet builds a symmetric body: shoulders, optional waist, hips, ankles.
// A zero waistWidth leaves the waist points out entirely.
func poseSet(shoulderWidth, waistWidth, hipWidth, torsoLength, legLength float64) *landmark.Set {
	points := map[landmark.Name]landmark.Point{
		landmark.RightShoulder: {X: -shoulderWidth / 2, Y: 0},
		landmark.LeftShoulder:  {X: shoulderWidth / 2, Y: 0},
		landmark.RightHip:      {X: -hipWidth / 2, Y: torsoLength},
		landmark.LeftHip:       {X: hipWidth / 2, Y: torsoLength},
		landmark.RightAnkle:    {X: -hipWidth / 2, Y: torsoLength + legLength},
		landmark.LeftAnkle:     {X: hipWidth / 2, Y: torsoLength + legLength},
	}
	if waistWidth > 0 {
		points[landmark.RightWaist] = landmark.Point{X: -waistWidth / 2, Y: torsoLength / 2}
		points[landmark.LeftWaist] = landmark.Point{X: waistWidth / 2, Y: torsoLength / 2}
	}
	return landmark.NewSet(points)
}

func bodyBundle(t *testing.T, shoulderWidth, waistWidth, hipWidth float64) *geometry.Bundle {
	t.Helper()
	return geometry.Compute(poseSet(shoulderWidth, waistWidth, hipWidth, 60, 90), geometry.BodyRatioDefs)
}

func TestBodyShape(t *testing.T) {
	tests := []struct {
		name          string
		shoulderWidth float64
		waistWidth    float64
		hipWidth      float64
		expected      Label
	}{
		{"narrow waist with balanced frame is hourglass", 40, 30, 42, BodyHourglass},
		{"straight waist with balanced frame is rectangle", 40, 38, 42, BodyRectangle},
		{"hips wider than shoulders is pear", 36, 30, 44, BodyPear},
		{"shoulders wider than hips is inverted triangle", 48, 30, 40, BodyInvertedTriangle},
		{"balanced band lower edge is inclusive", 95, 70, 100, BodyHourglass},
		{"balanced band upper edge is exclusive", 105, 70, 100, BodyInvertedTriangle},
		{"hourglass waist threshold is exclusive", 100, 85, 100, BodyRectangle},
		{"just under the waist threshold is hourglass", 100, 84, 100, BodyHourglass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := BodyShape(bodyBundle(t, tt.shoulderWidth, tt.waistWidth, tt.hipWidth))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Label)
			assert.Contains(t, result.Ratios, geometry.RatioShoulderToHip)
		})
	}
}

func TestBodyShapeBalancedWithoutWaist(t *testing.T) {
	// Shoulders and hips nearly equal: only the waist can break the tie.
	_, err := BodyShape(bodyBundle(t, 100, 0, 100))
	require.Error(t, err)

	var insufficientErr *landmark.InsufficientLandmarksError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, []string{geometry.RatioWaistToHip}, insufficientErr.Missing)
}

func TestBodyShapeClearCaseWithoutWaist(t *testing.T) {
	// A clear pear never consults the waist, so its absence is harmless.
	result, err := BodyShape(bodyBundle(t, 36, 0, 44))
	require.NoError(t, err)
	assert.Equal(t, BodyPear, result.Label)
}

func TestBodyShapeMissingShoulders(t *testing.T) {
	set := landmark.NewSet(map[landmark.Name]landmark.Point{
		landmark.RightHip: {X: 0, Y: 60},
		landmark.LeftHip:  {X: 40, Y: 60},
	})
	bundle := geometry.Compute(set, geometry.BodyRatioDefs)

	_, err := BodyShape(bundle)
	var insufficientErr *landmark.InsufficientLandmarksError
	require.ErrorAs(t, err, &insufficientErr)
}

func TestBodyProportion(t *testing.T) {
	tests := []struct {
		name        string
		torsoLength float64
		legLength   float64
		expected    Label
	}{
		{"short torso over long legs", 60, 90, ProportionLongLegs},
		{"even measurements", 80, 80, ProportionBalanced},
		{"long torso over short legs", 96, 80, ProportionLongTorso},
		{"balanced band lower edge is inclusive", 80, 100, ProportionBalanced},
		{"balanced band upper edge is exclusive", 120, 100, ProportionLongTorso},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle := geometry.Compute(poseSet(40, 0, 42, tt.torsoLength, tt.legLength), geometry.BodyRatioDefs)
			result, err := BodyProportion(bundle)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Label)

			ratio, ok := result.Ratios[geometry.RatioTorsoToLeg]
			require.True(t, ok)
			assert.InDelta(t, tt.torsoLength/tt.legLength, ratio, 1e-9)
		})
	}
}

func TestBodyProportionMissingLegs(t *testing.T) {
	set := landmark.NewSet(map[landmark.Name]landmark.Point{
		landmark.RightShoulder: {X: 0, Y: 0},
		landmark.LeftShoulder:  {X: 40, Y: 0},
		landmark.RightHip:      {X: 0, Y: 60},
		landmark.LeftHip:       {X: 40, Y: 60},
	})
	bundle := geometry.Compute(set, geometry.BodyRatioDefs)

	_, err := BodyProportion(bundle)
	var insufficientErr *landmark.InsufficientLandmarksError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, []string{geometry.RatioTorsoToLeg}, insufficientErr.Missing)
}

func TestShapeDetailsCoverEveryLabel(t *testing.T) {
	for _, label := range BodyShapeLabels {
		detail := ShapeDetails(label)
		assert.NotEmpty(t, detail.Description, "label %s", label)
		assert.NotEmpty(t, detail.ClothingTips, "label %s", label)
	}

	unknown := ShapeDetails(Label("Trapezoid"))
	assert.NotEmpty(t, unknown.Description)
}

func TestProportionDetailsCoverEveryLabel(t *testing.T) {
	for _, label := range ProportionLabels {
		detail := ProportionDetails(label)
		assert.NotEmpty(t, detail.Description, "label %s", label)
		assert.NotEmpty(t, detail.ClothingTip, "label %s", label)
	}
}
