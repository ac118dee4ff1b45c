package settings

import "fmt"

// InvalidArgumentError reports a top-level overrides argument that is not a
// mapping. No keys are processed when this is returned.
type InvalidArgumentError struct {
	Value any
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("settings: overrides must be a mapping, got %s", typeName(e.Value))
}

// TypeMismatchError reports an override whose type disagrees with the
// default at the same key.
type TypeMismatchError struct {
	Key          string
	DefaultType  string
	OverrideType string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("settings: cannot merge %s over %s at key %q",
		e.OverrideType, e.DefaultType, e.Key)
}

// StructureMismatchError reports a sequence merged against a mapping (or
// vice versa). Both shapes are collections, so this is distinct from a
// plain type mismatch.
type StructureMismatchError struct {
	Key string
}

func (e *StructureMismatchError) Error() string {
	return fmt.Sprintf("settings: sequence/mapping shape conflict at key %q", e.Key)
}
