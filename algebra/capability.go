package algebra

import (
	"fmt"
	"reflect"
)

// Returned when an implementation does not provide the capability a law needs.
type MissingCapabilityError struct {
	Capability     string
	Implementation string
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("algebra: %v does not implement %v", e.Implementation, e.Capability)
}

// Return impl as the capability C.
//
// Returns a MissingCapabilityError if impl does not implement C.
func Require[C any](impl any) (C, error) {
	c, ok := impl.(C)
	if !ok {
		return c, &MissingCapabilityError{
			Capability:     Name[C](),
			Implementation: fmt.Sprintf("%T", impl),
		}
	}
	return c, nil
}

// The name of the capability C.
func Name[C any]() string {
	return reflect.TypeOf((*C)(nil)).Elem().Name()
}
