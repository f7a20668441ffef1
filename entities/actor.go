package entities

import (
	"fmt"
	"image"

	"github.com/automoto/actorcore/assets"
	"github.com/automoto/actorcore/assets/animations"
	"github.com/automoto/actorcore/config"
	"github.com/automoto/actorcore/logger"
	"github.com/automoto/actorcore/shared/gamemath"
	"github.com/sirupsen/logrus"
	dmath "github.com/yohamta/donburi/features/math"
)

// ActorOptions configures NewActor. Zero values for SpriteSheet and
// FramePeriod fall back to config.Actor and config.Animation.
type ActorOptions struct {
	ID       string
	Position dmath.Vec2
	Size     dmath.Vec2

	Solid    bool
	Visible  bool
	Enabled  bool
	Grounded bool

	SpriteSheet string
	FramePeriod float64

	// Gravity is only applied by Update when ApplyGravity is set.
	GravityForce     float64
	GravityDirection float64
	ApplyGravity     bool
	MaxFallSpeed     float64
}

// Actor is a mobile body. It integrates its own velocity, resolves
// overlaps against solids and animates its sprite.
type Actor struct {
	Entity

	id       string
	previous dmath.Vec2
	center   image.Point
	velocity dmath.Vec2
	drawRect gamemath.Rect

	gravityForce     float64
	gravityDirection float64
	applyGravity     bool
	maxFallSpeed     float64

	jumping  bool
	moving   bool
	grounded bool

	spriteSheet string
	texture     assets.Texture
	provider    assets.Provider
	released    bool

	animator  *animations.Animator
	sequences map[string]*animations.Sequence
	current   string

	nextSubscription SubscriptionID
	moved            listeners[MoveEvent]
	moveFinished     listeners[MoveFinishedEvent]

	log *logrus.Entry
}

// NewActor builds an actor and acquires its sprite sheet from provider.
// A nil provider leaves the actor without a texture.
func NewActor(opts ActorOptions, provider assets.Provider) (*Actor, error) {
	if opts.SpriteSheet == "" {
		opts.SpriteSheet = config.Actor.SpriteSheet
	}
	if opts.FramePeriod == 0 {
		opts.FramePeriod = config.Animation.FramePeriod
	}

	animator, err := animations.NewAnimator(nil, opts.FramePeriod, false)
	if err != nil {
		return nil, fmt.Errorf("entities: actor %q: %w", opts.ID, err)
	}

	a := &Actor{
		Entity:           NewEntity(opts.Position, opts.Size, opts.Solid, opts.Visible, opts.Enabled),
		id:               opts.ID,
		previous:         opts.Position,
		gravityForce:     opts.GravityForce,
		gravityDirection: opts.GravityDirection,
		applyGravity:     opts.ApplyGravity,
		maxFallSpeed:     opts.MaxFallSpeed,
		grounded:         opts.Grounded,
		spriteSheet:      opts.SpriteSheet,
		provider:         provider,
		animator:         animator,
		sequences:        make(map[string]*animations.Sequence),
		log:              logger.For("entities").WithField("actor", opts.ID),
	}

	if provider != nil {
		tex, err := provider.Acquire(opts.SpriteSheet)
		if err != nil {
			return nil, fmt.Errorf("entities: actor %q: %w", opts.ID, err)
		}
		a.texture = tex
	}

	a.updateDerived()
	a.log.WithField("sheet", a.spriteSheet).Debug("actor created")
	return a, nil
}

// place moves the actor and recomputes everything derived from its box.
func (a *Actor) place(p dmath.Vec2) {
	a.setPosition(p)
	a.updateDerived()
}

func (a *Actor) updateDerived() {
	box := a.CollisionBox()
	a.center = image.Point{
		X: box.Right() - int(a.size.X)/2,
		Y: box.Bottom() - int(a.size.Y)/2,
	}

	w, h := box.W, box.H
	if seq := a.animator.Sequence(); seq != nil {
		fs := seq.FrameSize()
		w, h = fs.X, fs.Y
	}
	a.drawRect = gamemath.NewRect(box.X, box.Y, w, h)
}

// Update applies gravity when enabled, integrates velocity, and advances
// the animation by elapsed seconds. The integrated position is staged, so
// subscribers see a MoveEvent for it.
func (a *Actor) Update(elapsed float64) {
	if a.applyGravity {
		g := gamemath.GravityVector(a.gravityForce, a.gravityDirection)
		a.velocity.X += g.X
		a.velocity.Y += g.Y
		if a.maxFallSpeed > 0 {
			a.velocity.Y = gamemath.ClampSpeed(a.velocity.Y, a.maxFallSpeed)
		}
	}

	if a.velocity.X != 0 || a.velocity.Y != 0 {
		a.StageMovement(dmath.Vec2{
			X: a.position.X + a.velocity.X,
			Y: a.position.Y + a.velocity.Y,
		})
	} else {
		a.previous = a.position
	}

	if a.jumping && a.velocity.Y >= 0 {
		a.jumping = false
	}

	a.animator.Update(elapsed)
}

// StageMovement records the previous position, applies pos and notifies
// MoveEvent subscribers with the proposed collision box.
func (a *Actor) StageMovement(pos dmath.Vec2) {
	a.previous = a.position
	a.place(pos)
	a.moving = true
	a.moved.fire(MoveEvent{Actor: a, CollisionBox: a.CollisionBox()})
}

// FinishMove confirms the staged movement. It fires MoveFinishedEvent with
// the final position and does nothing if no movement is pending.
func (a *Actor) FinishMove() {
	if !a.moving {
		return
	}
	a.moving = false
	a.moveFinished.fire(MoveFinishedEvent{Actor: a, Position: a.position})
}

// Resize changes the actor's size and recomputes its derived rectangles.
func (a *Actor) Resize(size dmath.Vec2) {
	a.setSize(size)
	a.updateDerived()
}

// Jump launches a grounded actor upward with the given speed. It reports
// false when the actor is airborne.
func (a *Actor) Jump(impulse float64) bool {
	if !a.grounded {
		return false
	}
	a.velocity.Y = -impulse
	a.jumping = true
	a.grounded = false
	return true
}

func (a *Actor) SetVelocity(v dmath.Vec2) { a.velocity = v }

// SetGrounded overrides the grounded flag, e.g. when a ground probe finds
// nothing under the actor.
func (a *Actor) SetGrounded(v bool) { a.grounded = v }

// SubscribeMoved registers fn for MoveEvents.
func (a *Actor) SubscribeMoved(fn func(MoveEvent)) SubscriptionID {
	a.nextSubscription++
	a.moved.add(a.nextSubscription, fn)
	return a.nextSubscription
}

// SubscribeMoveFinished registers fn for MoveFinishedEvents.
func (a *Actor) SubscribeMoveFinished(fn func(MoveFinishedEvent)) SubscriptionID {
	a.nextSubscription++
	a.moveFinished.add(a.nextSubscription, fn)
	return a.nextSubscription
}

// Unsubscribe removes a listener registered with either Subscribe method.
func (a *Actor) Unsubscribe(id SubscriptionID) bool {
	return a.moved.remove(id) || a.moveFinished.remove(id)
}

// AddAnimation registers seq under name, replacing any previous sequence
// with that name.
func (a *Actor) AddAnimation(name string, seq *animations.Sequence) error {
	if seq == nil {
		return fmt.Errorf("%w: nil sequence %q", animations.ErrInvalidConfiguration, name)
	}
	a.sequences[name] = seq
	return nil
}

// PlayAnimation rewinds the named sequence and makes it active. Playing the
// sequence that is already active leaves it running.
func (a *Actor) PlayAnimation(name string) error {
	seq, ok := a.sequences[name]
	if !ok {
		return fmt.Errorf("%w: %q on actor %q", ErrUnknownAnimation, name, a.id)
	}
	if name == a.current && a.animator.Sequence() == seq {
		return nil
	}

	seq.Reset()
	a.animator.Swap(seq)
	a.current = name
	a.updateDerived()
	return nil
}

// Animations returns the registered sequence names.
func (a *Actor) Animations() []string {
	names := make([]string, 0, len(a.sequences))
	for name := range a.sequences {
		names = append(names, name)
	}
	return names
}

// ClearAnimations drops every sequence and stops animating.
func (a *Actor) ClearAnimations() {
	clear(a.sequences)
	a.current = ""
	a.animator.Swap(nil)
	a.updateDerived()
}

// Draw renders the current frame at the draw rectangle. Invisible actors
// and actors without an active sequence draw nothing.
func (a *Actor) Draw(sink animations.Sink) {
	if !a.visible {
		return
	}
	a.animator.Draw(sink, a.drawRect)
}

// Release hands the sprite sheet back to the provider. Calls after the
// first are ignored.
func (a *Actor) Release() {
	if a.released || a.provider == nil {
		return
	}
	a.released = true
	a.provider.Release(a.spriteSheet)
	a.texture = nil
	a.log.Debug("actor released")
}

func (a *Actor) ID() string { return a.id }

// PreviousPosition returns the position before the last staged movement.
func (a *Actor) PreviousPosition() dmath.Vec2 { return a.previous }

// Delta returns the displacement since the previous position.
func (a *Actor) Delta() dmath.Vec2 {
	return dmath.Vec2{X: a.position.X - a.previous.X, Y: a.position.Y - a.previous.Y}
}

func (a *Actor) Center() image.Point { return a.center }
func (a *Actor) Velocity() dmath.Vec2 { return a.velocity }
func (a *Actor) DrawRect() gamemath.Rect { return a.drawRect }

func (a *Actor) IsJumping() bool { return a.jumping }
func (a *Actor) IsMoving() bool { return a.moving }
func (a *Actor) IsGrounded() bool { return a.grounded }

func (a *Actor) GravityForce() float64 { return a.gravityForce }
func (a *Actor) GravityDirection() float64 { return a.gravityDirection }
func (a *Actor) AppliesGravity() bool { return a.applyGravity }

func (a *Actor) SpriteSheet() string { return a.spriteSheet }

// Texture returns the acquired sprite sheet, or nil once released.
func (a *Actor) Texture() assets.Texture { return a.texture }

// CurrentAnimation returns the name of the active sequence, or "".
func (a *Actor) CurrentAnimation() string { return a.current }

func (a *Actor) Animator() *animations.Animator { return a.animator }
