// Package entities holds the simulation bodies: static solids and mobile
// actors, plus the collision resolution between them.
package entities

import (
	"github.com/automoto/actorcore/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Collidable is anything an actor can be resolved against.
type Collidable interface {
	CollisionBox() gamemath.Rect
	IsSolid() bool
}

// Entity is a positioned, sized body. Its collision box is always
// SnapRect(position, size) and only changes through setPosition/setSize.
type Entity struct {
	position dmath.Vec2
	size     dmath.Vec2
	box      gamemath.Rect
	solid    bool
	visible  bool
	enabled  bool
}

func NewEntity(position, size dmath.Vec2, solid, visible, enabled bool) Entity {
	e := Entity{
		position: position,
		size:     size,
		solid:    solid,
		visible:  visible,
		enabled:  enabled,
	}
	e.updateBox()
	return e
}

func (e *Entity) updateBox() {
	e.box = gamemath.SnapRect(e.position, e.size)
}

func (e *Entity) setPosition(p dmath.Vec2) {
	e.position = p
	e.updateBox()
}

func (e *Entity) setSize(s dmath.Vec2) {
	e.size = s
	e.updateBox()
}

func (e *Entity) Position() dmath.Vec2 { return e.position }
func (e *Entity) Size() dmath.Vec2 { return e.size }

// CollisionBox returns the current integer-snapped box.
func (e *Entity) CollisionBox() gamemath.Rect { return e.box }

func (e *Entity) IsSolid() bool { return e.solid }
func (e *Entity) Visible() bool { return e.visible }
func (e *Entity) Enabled() bool { return e.enabled }

func (e *Entity) SetVisible(v bool) { e.visible = v }
func (e *Entity) SetEnabled(v bool) { e.enabled = v }
