package logging

import (
	"fmt"
	"strings"
)

// CollisionError reports a configured method name that is reserved or
// already defined. Generation stops at the first collision.
type CollisionError struct {
	Name string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("logging: method name %q collides with an existing property", e.Name)
}

// EscalationError is returned by a method configured with Throws after its
// output has been produced. Args holds the arguments of the original call.
type EscalationError struct {
	Method string
	Args   []any
}

func (e *EscalationError) Error() string {
	return fmt.Sprintf("logging: %s escalated: %s", e.Method, strings.TrimSuffix(fmt.Sprintln(e.Args...), "\n"))
}
