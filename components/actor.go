package components

import (
	"github.com/automoto/actorcore/entities"
	"github.com/yohamta/donburi"
)

type ActorData struct {
	*entities.Actor
}

var Actor = donburi.NewComponentType[ActorData]()
