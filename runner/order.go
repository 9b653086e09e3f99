package runner

import (
	"math/rand"
	"sync"

	"lawcheck/checking"

	"golang.org/x/exp/slices"
)

// Decides which tests are checked and in which order they are started.
//
// Results are always reported in the order of the tests, whatever order they were started in.
type Order interface {
	// Returns the indices of the tests to check, in the order they should be started.
	Schedule(tests []checking.Test) ([]int, error)
}

type declared struct{}

// Start every test in the order they are provided.
func Declared() Order { return declared{} }

func (declared) Schedule(tests []checking.Test) ([]int, error) {
	order := make([]int, len(tests))
	for i := range order {
		order[i] = i
	}
	return order, nil
}

// Starts the tests in a random order.
//
// Useful to detect laws that only hold because of the order they are checked in,
// e.g. an implementation with hidden state.
type Random struct {
	sync.Mutex
	rand *rand.Rand
}

// Create a new Random order initialized with seed
func NewRandom(seed int64) *Random {
	return &Random{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Schedule(tests []checking.Test) ([]int, error) {
	r.Lock()
	defer r.Unlock()

	pending := make([]int, len(tests))
	for i := range pending {
		pending[i] = i
	}

	order := make([]int, 0, len(tests))
	for len(pending) > 0 {
		index := r.rand.Intn(len(pending))
		order = append(order, pending[index])

		// Remove the element by moving the last element into its place.
		// Since we are drawing randomly the ordering does not matter
		pending[index] = pending[len(pending)-1]
		pending = pending[:len(pending)-1]
	}
	return order, nil
}

// Only starts the tests with the provided names.
//
// The names are usually the names exported by a Report of an earlier run.
type Replay struct {
	names []string
	order Order
}

// Create a Replay of the named laws. The selected tests are started in the order given by order.
//
// If order is nil the tests are started in the order they are provided.
func NewReplay(names []string, order Order) *Replay {
	if order == nil {
		order = Declared()
	}
	return &Replay{
		names: names,
		order: order,
	}
}

// Returns an UnknownLawError if a name does not match any test.
func (r *Replay) Schedule(tests []checking.Test) ([]int, error) {
	for _, name := range r.names {
		if slices.IndexFunc(tests, func(t checking.Test) bool { return t.Name == name }) < 0 {
			return nil, &UnknownLawError{Law: name}
		}
	}

	order, err := r.order.Schedule(tests)
	if err != nil {
		return nil, err
	}
	selected := make([]int, 0, len(r.names))
	for _, i := range order {
		if slices.Contains(r.names, tests[i].Name) {
			selected = append(selected, i)
		}
	}
	return selected, nil
}
