package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StyleSense/pkg/geometry"
	"StyleSense/pkg/landmark"
)

// eyeSet builds both eyes with the same geometry: corners eyeWidth apart,
// lids lidSpan apart, the inner corner sitting innerDrop pixels below the
// outer one (positive reads upturned in image coordinates).
func eyeSet(eyeWidth, lidSpan, innerDrop float64) *landmark.Set {
	points := map[landmark.Name]landmark.Point{}

	place := func(outer, upperOuter, upperInner, inner, lowerInner, lowerOuter landmark.Name, offsetX float64) {
		points[outer] = landmark.Point{X: offsetX, Y: 0}
		points[inner] = landmark.Point{X: offsetX + eyeWidth, Y: innerDrop}
		points[upperOuter] = landmark.Point{X: offsetX + eyeWidth/3, Y: -lidSpan / 2}
		points[lowerOuter] = landmark.Point{X: offsetX + eyeWidth/3, Y: lidSpan / 2}
		points[upperInner] = landmark.Point{X: offsetX + 2*eyeWidth/3, Y: -lidSpan / 2}
		points[lowerInner] = landmark.Point{X: offsetX + 2*eyeWidth/3, Y: lidSpan / 2}
	}

	place(
		landmark.LeftEyeOuterCorner, landmark.LeftEyeUpperOuter, landmark.LeftEyeUpperInner,
		landmark.LeftEyeInnerCorner, landmark.LeftEyeLowerInner, landmark.LeftEyeLowerOuter,
		0,
	)
	place(
		landmark.RightEyeOuterCorner, landmark.RightEyeUpperOuter, landmark.RightEyeUpperInner,
		landmark.RightEyeInnerCorner, landmark.RightEyeLowerInner, landmark.RightEyeLowerOuter,
		100,
	)

	return landmark.NewSet(points)
}

func eyeBundle(t *testing.T, set *landmark.Set) *geometry.Bundle {
	t.Helper()
	return geometry.Compute(set, geometry.FaceRatioDefs)
}

func TestEyeShape(t *testing.T) {
	tests := []struct {
		name      string
		eyeWidth  float64
		lidSpan   float64
		innerDrop float64
		expected  Label
	}{
		{"wide level eye is almond", 40, 10, 0, EyeAlmond},
		{"moderate aspect with level corners stays almond", 30, 10, 0, EyeAlmond},
		{"inner corner below outer is upturned", 30, 10, 2, EyeUpturned},
		{"inner corner above outer is downturned", 30, 10, -2, EyeDownturned},
		{"tilt within tolerance stays almond", 30, 10, 0.4, EyeAlmond},
		{"open low-aspect eye is round", 25, 10, 0, EyeRound},
		{"narrow eye with a visible lid is hooded", 20, 10, 0, EyeHooded},
		{"narrow eye with a shallow lid is monolid", 6, 2.8, 0, EyeMonolid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := eyeSet(tt.eyeWidth, tt.lidSpan, tt.innerDrop)
			result, err := EyeShape(set, eyeBundle(t, set))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Label)
		})
	}
}

func TestEyeShapeAveragesBothEyes(t *testing.T) {
	set := eyeSet(40, 10, 0)
	result, err := EyeShape(set, eyeBundle(t, set))
	require.NoError(t, err)

	left := result.Ratios[geometry.RatioLeftEyeAspect]
	right := result.Ratios[geometry.RatioRightEyeAspect]
	assert.InDelta(t, (left+right)/2, result.Ratios["eye_aspect"], 1e-9)
}

func TestEyeShapeDiagnosticsFollowTheBranch(t *testing.T) {
	tilted := eyeSet(30, 10, 2)
	result, err := EyeShape(tilted, eyeBundle(t, tilted))
	require.NoError(t, err)
	assert.Contains(t, result.Ratios, "corner_tilt")
	assert.NotContains(t, result.Ratios, "lid_gap")

	narrow := eyeSet(20, 10, 0)
	result, err = EyeShape(narrow, eyeBundle(t, narrow))
	require.NoError(t, err)
	assert.Contains(t, result.Ratios, "lid_gap")
	assert.NotContains(t, result.Ratios, "corner_tilt")
}

func TestEyeShapeMissingOneEye(t *testing.T) {
	points := map[landmark.Name]landmark.Point{
		landmark.LeftEyeOuterCorner: {X: 0, Y: 0},
		landmark.LeftEyeInnerCorner: {X: 30, Y: 0},
		landmark.LeftEyeUpperOuter:  {X: 10, Y: -5},
		landmark.LeftEyeLowerOuter:  {X: 10, Y: 5},
		landmark.LeftEyeUpperInner:  {X: 20, Y: -5},
		landmark.LeftEyeLowerInner:  {X: 20, Y: 5},
	}
	set := landmark.NewSet(points)

	_, err := EyeShape(set, eyeBundle(t, set))
	var insufficientErr *landmark.InsufficientLandmarksError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, []string{geometry.RatioRightEyeAspect}, insufficientErr.Missing)
}
