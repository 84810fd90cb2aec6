package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnavailable means no engine was compiled in under the requested name.
	ErrBackendUnavailable = errors.New("physics backend unavailable")
	// ErrUninitialized is returned when a world or body is used before creation.
	ErrUninitialized = errors.New("physics world not initialized")
	// ErrUnsupportedShape is returned for shapes the engine cannot simulate.
	ErrUnsupportedShape = errors.New("unsupported collider shape")
)

// InitializationError is fatal to startup. The caller must show it to the user.
type InitializationError struct {
	Backend string
	Err     error
}

func (e *InitializationError) Error() string {
	if e.Backend == "" {
		return fmt.Sprintf("physics initialization failed: %v", e.Err)
	}
	return fmt.Sprintf("physics initialization failed (backend %q): %v", e.Backend, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}
