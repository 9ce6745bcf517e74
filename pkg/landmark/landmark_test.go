package landmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetRequire(t *testing.T) {
	set := NewSet(map[Name]Point{
		LeftShoulder:  {X: 10, Y: 20},
		RightShoulder: {X: 50, Y: 20},
		LeftHip:       {X: 15, Y: 80},
	})

	t.Run("returns points in requested order", func(t *testing.T) {
		points, err := set.Require(RightShoulder, LeftShoulder)
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Equal(t, Point{X: 50, Y: 20}, points[0])
		assert.Equal(t, Point{X: 10, Y: 20}, points[1])
	})

	t.Run("names every missing landmark", func(t *testing.T) {
		_, err := set.Require(LeftShoulder, RightHip, LeftAnkle)
		require.Error(t, err)

		var insufficientErr *InsufficientLandmarksError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, []string{"RHip", "LAnkle"}, insufficientErr.Missing)
	})

	t.Run("nil set is empty, not a panic", func(t *testing.T) {
		var nilSet *Set
		assert.Equal(t, 0, nilSet.Len())

		_, ok := nilSet.Get(LeftShoulder)
		assert.False(t, ok)
	})
}

func TestFromWire(t *testing.T) {
	set := FromWire(map[string][]float64{
		"LShoulder": {12.5, 34.5},
		"RShoulder": {90, 35},
		"truncated": {7},
		"empty":     {},
	})

	assert.Equal(t, 2, set.Len())

	p, ok := set.Get(LeftShoulder)
	require.True(t, ok)
	assert.Equal(t, Point{X: 12.5, Y: 34.5}, p)

	_, ok = set.Get(Name("truncated"))
	assert.False(t, ok, "entries with fewer than two coordinates must be dropped")
}

func TestInsufficientLandmarksErrorMessage(t *testing.T) {
	err := NewInsufficientLandmarksError("LWaist", "RWaist")
	assert.EqualError(t, err, "missing LWaist, RWaist for analysis")

	empty := &InsufficientLandmarksError{}
	assert.EqualError(t, empty, "required landmarks are missing")
}
