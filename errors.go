package tgdango

import "fmt"

// CapabilityError is returned when a capability is invoked on a context whose update
// does not carry what the capability needs, e.g. a reply for an inline query.
type CapabilityError struct {
	Method     string     // Method is the name of the capability that was invoked.
	UpdateType UpdateType // UpdateType is the kind of update the context was built from.
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("tgdango: %q isn't available for %q", e.Method, e.UpdateType)
}

// Unwrap returns [ErrCapabilityUnavailable].
func (e *CapabilityError) Unwrap() error {
	return ErrCapabilityUnavailable
}

// RemovedError is returned by capabilities that still exist by name but no longer work.
type RemovedError struct {
	Method string // Method is the removed capability.
	Use    string // Use names the replacement.
}

func (e *RemovedError) Error() string {
	return fmt.Sprintf("tgdango: %s is removed, use %s instead", e.Method, e.Use)
}

// Unwrap returns [ErrCapabilityRemoved].
func (e *RemovedError) Unwrap() error {
	return ErrCapabilityRemoved
}

// assertChat fails with a [CapabilityError] when the context has no chat.
func assertChat(c *Context, method string) error {
	if c.Chat == nil {
		return &CapabilityError{Method: method, UpdateType: c.UpdateType}
	}

	return nil
}
