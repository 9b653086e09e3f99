package checking

import (
	"errors"
	"fmt"
)

// Returned when the suite configures an interface that is not in the catalog.
type MissingInterfaceError struct {
	Interface string
}

func (e *MissingInterfaceError) Error() string {
	return fmt.Sprintf("checking: no laws are defined for interface %q", e.Interface)
}

// Returned when a configuration provides one comparator per law but the number of comparators does not match the number of laws.
type ComparatorArityError struct {
	Interface   string
	Laws        int
	Comparators int
}

func (e *ComparatorArityError) Error() string {
	return fmt.Sprintf("checking: interface %q has %v laws but %v comparators were provided", e.Interface, e.Laws, e.Comparators)
}

var ComparatorConflictError = errors.New("checking: CompareWith and CompareEach can not both be configured")
