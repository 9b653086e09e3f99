package algebra

import (
	"errors"
	"testing"
)

type concatOnly struct{}

func (concatOnly) Concat(a, b any) any { return a.(int) + b.(int) }

type sum struct{ concatOnly }

func (sum) Empty() any { return 0 }

func TestRequire(t *testing.T) {
	s, err := Require[Semigroup](concatOnly{})
	if err != nil {
		t.Errorf("Did not expect to receive an error. Got %v", err)
	}
	if out := s.Concat(1, 2); out != 3 {
		t.Errorf("Expected the capability to be usable. Got: %v", out)
	}

	_, err = Require[Monoid](concatOnly{})
	var missing *MissingCapabilityError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected a MissingCapabilityError. Got: %v", err)
	}
	if missing.Capability != "Monoid" {
		t.Errorf("Expected the missing capability to be Monoid. Got: %v", missing.Capability)
	}
	if missing.Implementation != "algebra.concatOnly" {
		t.Errorf("Expected the implementation to be named. Got: %v", missing.Implementation)
	}

	if _, err := Require[Monoid](sum{}); err != nil {
		t.Errorf("Did not expect to receive an error. Got %v", err)
	}

	if _, err := Require[Functor](nil); err == nil {
		t.Errorf("Expected a nil implementation to be rejected")
	}
}

func TestName(t *testing.T) {
	for i, test := range []struct {
		name     string
		expected string
	}{
		{Name[Functor](), "Functor"},
		{Name[Traversable](), "Traversable"},
		{Name[Setoid](), "Setoid"},
	} {
		if test.name != test.expected {
			t.Errorf("Test %v: Expected %v. Got: %v", i, test.expected, test.name)
		}
	}
}
