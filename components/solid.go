package components

import (
	"github.com/automoto/actorcore/entities"
	"github.com/yohamta/donburi"
)

type SolidData struct {
	*entities.Solid
}

var Solid = donburi.NewComponentType[SolidData]()
