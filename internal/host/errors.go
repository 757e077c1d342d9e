package host

import "errors"

var (
	// ErrUnknownTarget is returned when attaching to a class that is not loaded.
	ErrUnknownTarget = errors.New("unknown target class")
	// ErrIncompatibleShape is returned when a capability fits none of the
	// shapes the target class accepts.
	ErrIncompatibleShape = errors.New("capability does not fit target class")
	// ErrUnknownRoute is returned when resolving a route name that is not drawn.
	ErrUnknownRoute = errors.New("unknown route")
	// ErrMissingParam is returned when a route pattern needs more parameters
	// than were given.
	ErrMissingParam = errors.New("missing route parameter")
	// ErrNotBooted is returned by operations that need a completed boot.
	ErrNotBooted = errors.New("host not booted")
	// ErrAlreadyBooted is returned by a second Boot call.
	ErrAlreadyBooted = errors.New("host already booted")
)
