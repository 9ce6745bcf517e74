package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StyleSense/pkg/geometry"
	"StyleSense/pkg/landmark"
)

// faceSet lays out a face with a fixed cheek width of 100: the nose bridge
// sits at the cheek line, the chin faceLength below it, the jaw curve and
// brow widths centered on the midline.
func faceSet(faceLength, jawWidth, foreheadWidth float64) *landmark.Set {
	return landmark.NewSet(map[landmark.Name]landmark.Point{
		landmark.CheekLeftUpper:  {X: 0, Y: 0},
		landmark.CheekRightUpper: {X: 100, Y: 0},
		landmark.NoseBridge:      {X: 50, Y: 0},
		landmark.Chin:            {X: 50, Y: faceLength},
		landmark.JawCurveLeft:    {X: 50 - jawWidth/2, Y: 40},
		landmark.JawCurveRight:   {X: 50 + jawWidth/2, Y: 40},
		landmark.BrowLeft:        {X: 50 - foreheadWidth/2, Y: -20},
		landmark.BrowRight:       {X: 50 + foreheadWidth/2, Y: -20},
	})
}

func faceBundle(t *testing.T, faceLength, jawWidth, foreheadWidth float64) *geometry.Bundle {
	t.Helper()
	return geometry.Compute(faceSet(faceLength, jawWidth, foreheadWidth), geometry.FaceRatioDefs)
}

func TestFaceShape(t *testing.T) {
	tests := []struct {
		name          string
		faceLength    float64
		jawWidth      float64
		foreheadWidth float64
		expected      Label
	}{
		{"long face is oblong", 160, 80, 80, FaceOblong},
		{"strong jaw at moderate length is square", 120, 95, 90, FaceSquare},
		{"wide forehead over narrow jaw is heart", 130, 70, 95, FaceHeart},
		{"narrow forehead and jaw is diamond", 130, 70, 60, FaceDiamond},
		{"short soft face is round", 105, 85, 85, FaceRound},
		{"no rule match falls back to oval", 130, 85, 85, FaceOval},
		{"oblong threshold is inclusive", 150, 85, 85, FaceOblong},
		{"square jaw threshold is inclusive", 120, 90, 85, FaceSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FaceShape(faceBundle(t, tt.faceLength, tt.jawWidth, tt.foreheadWidth))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Label)
		})
	}
}

func TestFaceShapeRuleOrder(t *testing.T) {
	// A long face with a strong jaw satisfies both the Oblong and Square
	// rows; length dominates.
	result, err := FaceShape(faceBundle(t, 160, 95, 90))
	require.NoError(t, err)
	assert.Equal(t, FaceOblong, result.Label)
}

func TestFaceShapeReportsRatios(t *testing.T) {
	result, err := FaceShape(faceBundle(t, 130, 80, 90))
	require.NoError(t, err)

	assert.InDelta(t, 1.3, result.Ratios[geometry.RatioFaceLengthToWidth], 1e-9)
	assert.InDelta(t, 0.8, result.Ratios[geometry.RatioJawToCheek], 1e-9)
	assert.InDelta(t, 90.0/80.0, result.Ratios[geometry.RatioForeheadToJaw], 1e-9)
}

func TestFaceShapeMissingLandmarks(t *testing.T) {
	// No brow points: the forehead:jaw ratio is undefined.
	set := landmark.NewSet(map[landmark.Name]landmark.Point{
		landmark.CheekLeftUpper:  {X: 0, Y: 0},
		landmark.CheekRightUpper: {X: 100, Y: 0},
		landmark.NoseBridge:      {X: 50, Y: 0},
		landmark.Chin:            {X: 50, Y: 130},
		landmark.JawCurveLeft:    {X: 10, Y: 40},
		landmark.JawCurveRight:   {X: 90, Y: 40},
	})
	bundle := geometry.Compute(set, geometry.FaceRatioDefs)

	_, err := FaceShape(bundle)
	var insufficientErr *landmark.InsufficientLandmarksError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, []string{geometry.RatioForeheadToJaw}, insufficientErr.Missing)
}

func TestFaceShapeIsDeterministic(t *testing.T) {
	bundle := faceBundle(t, 130, 70, 95)

	first, err := FaceShape(bundle)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := FaceShape(bundle)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
