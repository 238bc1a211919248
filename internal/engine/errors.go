package engine

import "errors"

var (
	// ErrGameOver is returned when a movement or shoot command arrives after
	// the session has ended. The state is left untouched.
	ErrGameOver = errors.New("engine: game over")

	// ErrUnknownCommand is returned for a command kind the engine does not handle.
	ErrUnknownCommand = errors.New("engine: unknown command")

	// ErrInvariant wraps every invariant violation reported by State.Validate.
	ErrInvariant = errors.New("engine: invariant violated")
)
