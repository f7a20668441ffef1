package entities

import (
	"github.com/automoto/actorcore/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// SubscriptionID identifies a registered listener.
type SubscriptionID uint64

// MoveEvent is fired when a movement is staged. CollisionBox is the box at
// the proposed position.
type MoveEvent struct {
	Actor        *Actor
	CollisionBox gamemath.Rect
}

// MoveFinishedEvent is fired once a staged movement has been confirmed.
type MoveFinishedEvent struct {
	Actor    *Actor
	Position dmath.Vec2
}

type listener[T any] struct {
	id SubscriptionID
	fn func(T)
}

// listeners dispatches synchronously, in subscription order, over a
// snapshot so handlers may subscribe or unsubscribe while being called.
type listeners[T any] struct {
	entries []listener[T]
}

func (l *listeners[T]) add(id SubscriptionID, fn func(T)) {
	l.entries = append(l.entries, listener[T]{id: id, fn: fn})
}

func (l *listeners[T]) remove(id SubscriptionID) bool {
	for i, e := range l.entries {
		if e.id == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (l *listeners[T]) fire(ev T) {
	if len(l.entries) == 0 {
		return
	}
	snapshot := make([]listener[T], len(l.entries))
	copy(snapshot, l.entries)
	for _, e := range snapshot {
		e.fn(ev)
	}
}
