package systems

import (
	"github.com/automoto/actorcore/entities"
	"github.com/automoto/actorcore/input"
	"github.com/automoto/actorcore/level"
	"github.com/automoto/actorcore/render"
	"github.com/yohamta/donburi/ecs"
)

const (
	LayerDefault ecs.LayerID = iota
	LayerDebug
)

// Context is the state shared by the playground systems.
type Context struct {
	Level    *level.Level
	Camera   *render.Camera
	Input    input.State
	PlayerID string
	Debug    bool
}

// player returns the actor the input drives, if it is still in the level.
func (c *Context) player() (*entities.Actor, bool) {
	return c.Level.Actor(c.PlayerID)
}
