package entities

import (
	"testing"

	"github.com/automoto/actorcore/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestSolidIsAlwaysSolid(t *testing.T) {
	s := NewSolid(dmath.Vec2{X: 16, Y: 32}, dmath.Vec2{X: 16, Y: 16})

	assert.True(t, s.IsSolid())
	assert.Equal(t, gamemath.NewRect(16, 32, 16, 16), s.CollisionBox())

	_, ok := s.Slope()
	assert.False(t, ok)
	_, ok = s.OneWay()
	assert.False(t, ok)
}

func TestSetSlopeData(t *testing.T) {
	s := NewSolid(dmath.Vec2{}, dmath.Vec2{X: 16, Y: 16})

	require.NoError(t, s.SetSlopeData(16, SlopeRate{Run: 1, Rise: -1}))
	slope, ok := s.Slope()
	require.True(t, ok)
	assert.Equal(t, 16, slope.Start)
	assert.Equal(t, 16, slope.HeightAt(0))
	assert.Equal(t, 8, slope.HeightAt(8))
	assert.Equal(t, 0, slope.HeightAt(16))

	require.NoError(t, s.SetSlopeData(0, SlopeRate{Run: 2, Rise: 1}))
	slope, ok = s.Slope()
	require.True(t, ok)
	assert.Equal(t, SlopeData{Start: 0, Rate: SlopeRate{Run: 2, Rise: 1}}, slope)
	assert.Equal(t, 5, slope.HeightAt(10))
}

func TestSetSlopeDataRejectsFlatRates(t *testing.T) {
	for _, rate := range []SlopeRate{{Run: 0, Rise: 1}, {Run: 1, Rise: 0}, {}} {
		s := NewSolid(dmath.Vec2{}, dmath.Vec2{X: 16, Y: 16})

		err := s.SetSlopeData(4, rate)
		assert.ErrorIs(t, err, ErrInvalidSolidConfiguration)
		_, ok := s.Slope()
		assert.False(t, ok)
	}
}

func TestSetOneWayData(t *testing.T) {
	s := NewSolid(dmath.Vec2{}, dmath.Vec2{X: 32, Y: 4})

	require.NoError(t, s.SetOneWayData(PassBottom))
	require.NoError(t, s.SetOneWayData(PassVertical))

	data, ok := s.OneWay()
	require.True(t, ok)
	assert.Equal(t, PassVertical, data.Direction)
}

func TestSetOneWayDataRejectsMeaninglessDirections(t *testing.T) {
	for _, dir := range []PassThrough{PassNone, PassThrough(-1), PassThrough(42)} {
		s := NewSolid(dmath.Vec2{}, dmath.Vec2{X: 32, Y: 4})

		err := s.SetOneWayData(dir)
		assert.ErrorIs(t, err, ErrInvalidSolidConfiguration, dir.String())
		_, ok := s.OneWay()
		assert.False(t, ok)
	}
}
