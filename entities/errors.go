package entities

import "errors"

var (
	// ErrInvalidSolidConfiguration is returned for slope or one-way
	// metadata that has no meaningful geometry.
	ErrInvalidSolidConfiguration = errors.New("entities: invalid solid configuration")

	// ErrUnknownAnimation is returned when an actor is asked to play a
	// sequence it was never given.
	ErrUnknownAnimation = errors.New("entities: unknown animation")
)
