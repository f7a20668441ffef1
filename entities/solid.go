package entities

import (
	"fmt"

	dmath "github.com/yohamta/donburi/features/math"
)

// SlopeRate is a ramp gradient in whole pixels: Rise pixels of height
// over Run pixels of width.
type SlopeRate struct {
	Run, Rise int
}

// SlopeData describes a linear ramp across a solid. Start is the height
// offset, from the solid's top, at its left edge.
type SlopeData struct {
	Start int
	Rate  SlopeRate
}

// HeightAt returns the ramp offset dx pixels from the solid's left edge.
func (s SlopeData) HeightAt(dx int) int {
	return s.Start + dx*s.Rate.Rise/s.Rate.Run
}

// OneWayData describes which approach directions a solid ignores.
type OneWayData struct {
	Direction PassThrough
}

// Solid is a static, always-solid body. Slope and one-way metadata are
// optional and queryable; collision resolution does not consult them.
type Solid struct {
	Entity

	slope     SlopeData
	hasSlope  bool
	oneWay    OneWayData
	hasOneWay bool
}

func NewSolid(position, size dmath.Vec2) *Solid {
	return &Solid{Entity: NewEntity(position, size, true, true, true)}
}

// SetSlopeData turns the solid into a ramp. The last call wins.
func (s *Solid) SetSlopeData(start int, rate SlopeRate) error {
	if rate.Run == 0 || rate.Rise == 0 {
		return fmt.Errorf("%w: slope rate %d/%d", ErrInvalidSolidConfiguration, rate.Rise, rate.Run)
	}
	s.slope = SlopeData{Start: start, Rate: rate}
	s.hasSlope = true
	return nil
}

// SetOneWayData makes the solid passable from direction. The last call wins.
func (s *Solid) SetOneWayData(direction PassThrough) error {
	if direction == PassNone || !direction.valid() {
		return fmt.Errorf("%w: one-way direction %v", ErrInvalidSolidConfiguration, direction)
	}
	s.oneWay = OneWayData{Direction: direction}
	s.hasOneWay = true
	return nil
}

// Slope returns the ramp descriptor. The data is meaningful only when ok.
func (s *Solid) Slope() (SlopeData, bool) {
	return s.slope, s.hasSlope
}

// OneWay returns the pass-through descriptor. The data is meaningful only
// when ok.
func (s *Solid) OneWay() (OneWayData, bool) {
	return s.oneWay, s.hasOneWay
}
