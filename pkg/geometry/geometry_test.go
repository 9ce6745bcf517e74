package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StyleSense/pkg/landmark"
)

// poseSet lays out a symmetric body on a pixel grid: shoulders and hips on
// horizontal lines, ankles straight below the hips.
func poseSet(shoulderWidth, hipWidth, torsoLength, legLength float64) *landmark.Set {
	return landmark.NewSet(map[landmark.Name]landmark.Point{
		landmark.RightShoulder: {X: -shoulderWidth / 2, Y: 0},
		landmark.LeftShoulder:  {X: shoulderWidth / 2, Y: 0},
		landmark.RightHip:      {X: -hipWidth / 2, Y: torsoLength},
		landmark.LeftHip:       {X: hipWidth / 2, Y: torsoLength},
		landmark.RightAnkle:    {X: -hipWidth / 2, Y: torsoLength + legLength},
		landmark.LeftAnkle:     {X: hipWidth / 2, Y: torsoLength + legLength},
	})
}

func TestComputeBodyRatios(t *testing.T) {
	set := poseSet(40, 42, 60, 90)
	bundle := Compute(set, BodyRatioDefs)

	shoulderHip, ok := bundle.Get(RatioShoulderToHip)
	require.True(t, ok)
	assert.InDelta(t, 40.0/42.0, shoulderHip, 1e-9)

	torsoLeg, ok := bundle.Get(RatioTorsoToLeg)
	require.True(t, ok)
	assert.InDelta(t, 60.0/90.0, torsoLeg, 1e-9)

	_, ok = bundle.Get(RatioWaistToHip)
	assert.False(t, ok, "waist ratio must stay undefined without waist points")
}

func TestComputeIsDeterministic(t *testing.T) {
	set := poseSet(38, 44, 55, 85)

	first := Compute(set, BodyRatioDefs).Values()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Compute(set, BodyRatioDefs).Values())
	}
}

func TestComputeOmitsDegenerateRatios(t *testing.T) {
	// Both hips on the same point: zero-length denominator.
	set := landmark.NewSet(map[landmark.Name]landmark.Point{
		landmark.RightShoulder: {X: 0, Y: 0},
		landmark.LeftShoulder:  {X: 40, Y: 0},
		landmark.RightHip:      {X: 20, Y: 60},
		landmark.LeftHip:       {X: 20, Y: 60},
	})

	bundle := Compute(set, BodyRatioDefs)
	_, ok := bundle.Get(RatioShoulderToHip)
	assert.False(t, ok)
}

func TestComputeWithPartialSet(t *testing.T) {
	// Only shoulders and hips: the torso:leg ratio needs ankles.
	set := landmark.NewSet(map[landmark.Name]landmark.Point{
		landmark.RightShoulder: {X: 0, Y: 0},
		landmark.LeftShoulder:  {X: 40, Y: 0},
		landmark.RightHip:      {X: 0, Y: 60},
		landmark.LeftHip:       {X: 40, Y: 60},
	})

	bundle := Compute(set, BodyRatioDefs)
	assert.Equal(t, 1, bundle.Len())

	_, ok := bundle.Get(RatioTorsoToLeg)
	assert.False(t, ok)
}

func TestMidpointAnchors(t *testing.T) {
	// Asymmetric shoulders: the torso must be measured from the shoulder
	// midline, not from either side.
	set := landmark.NewSet(map[landmark.Name]landmark.Point{
		landmark.RightShoulder: {X: 0, Y: 0},
		landmark.LeftShoulder:  {X: 40, Y: 10},
		landmark.RightHip:      {X: 10, Y: 65},
		landmark.LeftHip:       {X: 30, Y: 65},
		landmark.RightAnkle:    {X: 10, Y: 155},
		landmark.LeftAnkle:     {X: 30, Y: 155},
	})

	bundle := Compute(set, BodyRatioDefs)
	torsoLeg, ok := bundle.Get(RatioTorsoToLeg)
	require.True(t, ok)

	// Shoulder midline (20, 5) to hip midline (20, 65) is 60; both legs are 90.
	assert.InDelta(t, 60.0/90.0, torsoLeg, 1e-9)
}

func TestDistanceAndMidpoint(t *testing.T) {
	a := landmark.Point{X: 0, Y: 0}
	b := landmark.Point{X: 3, Y: 4}

	assert.InDelta(t, 5.0, Distance(a, b), 1e-9)
	assert.Equal(t, landmark.Point{X: 1.5, Y: 2}, Midpoint(a, b))
}
