package entities

import "fmt"

// PassThrough names the approach directions a one-way solid lets actors
// through from.
type PassThrough int

const (
	PassNone PassThrough = iota
	PassBottom
	PassTop
	PassRight
	PassLeft
	PassHorizontal
	PassVertical
)

func (p PassThrough) String() string {
	switch p {
	case PassNone:
		return "none"
	case PassBottom:
		return "bottom"
	case PassTop:
		return "top"
	case PassRight:
		return "right"
	case PassLeft:
		return "left"
	case PassHorizontal:
		return "horizontal"
	case PassVertical:
		return "vertical"
	}
	return fmt.Sprintf("PassThrough(%d)", int(p))
}

// ParsePassThrough accepts the names produced by String.
func ParsePassThrough(s string) (PassThrough, error) {
	switch s {
	case "none":
		return PassNone, nil
	case "bottom":
		return PassBottom, nil
	case "top":
		return PassTop, nil
	case "right":
		return PassRight, nil
	case "left":
		return PassLeft, nil
	case "horizontal":
		return PassHorizontal, nil
	case "vertical":
		return PassVertical, nil
	}
	return PassNone, fmt.Errorf("%w: unknown pass-through direction %q", ErrInvalidSolidConfiguration, s)
}

// Axes reports which movement axes the direction opens up.
func (p PassThrough) Axes() (horizontal, vertical bool) {
	switch p {
	case PassNone:
		return false, false
	case PassBottom, PassTop, PassVertical:
		return false, true
	case PassRight, PassLeft, PassHorizontal:
		return true, false
	}
	return false, false
}

func (p PassThrough) valid() bool {
	return p >= PassNone && p <= PassVertical
}
