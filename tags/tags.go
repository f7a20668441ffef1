package tags

import "github.com/yohamta/donburi"

var (
	Actor = donburi.NewTag().SetName("Actor")
	Solid = donburi.NewTag().SetName("Solid")
	Ramp  = donburi.NewTag().SetName("Ramp")
)

// Resolv tags for the broad phase
const (
	ResolvSolid  = "solid"
	ResolvRamp   = "ramp"
	ResolvOneWay = "oneway"
	ResolvActor  = "actor"

	// Slope presets
	Slope45UpRight = "45_up_right"
	Slope45UpLeft  = "45_up_left"
)
