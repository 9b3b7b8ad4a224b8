package multiply

// Note: Factory is not mockable with mockgen because Register() takes the
// unexported coreMultiplier type. Use NewDefaultFactory or a hand-built
// factory in tests.

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agbru/decicalc/internal/dft"
)

// Factory creates and caches Multiplier instances by name.
type Factory interface {
	// Get returns the cached Multiplier registered under name.
	Get(name string) (Multiplier, error)

	// List returns the registered names in sorted order.
	List() []string

	// Register adds or replaces an algorithm.
	Register(name string, creator func() coreMultiplier) error
}

// DefaultFactory is the thread-safe Factory implementation.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() coreMultiplier
	multipliers map[string]Multiplier
}

// NewDefaultFactory returns a factory with the built-in algorithms:
//   - "schoolbook": bignum long multiplication of the mantissas
//   - "karatsuba": bignum Karatsuba multiplication of the mantissas
//   - "grid": fixed-point grid method
//   - "dft": convolution through the direct O(N²) transform
//   - "mathbig": math/big reference
//   - "govalues": 19-digit decimal reference, small operands only
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() coreMultiplier),
		multipliers: make(map[string]Multiplier),
	}
	_ = f.Register("schoolbook", func() coreMultiplier { return Schoolbook{} })
	_ = f.Register("karatsuba", func() coreMultiplier { return Karatsuba{} })
	_ = f.Register("grid", func() coreMultiplier { return Grid{} })
	_ = f.Register("dft", func() coreMultiplier { return Convolution{name: "dft", transform: dft.Direct} })
	_ = f.Register("mathbig", func() coreMultiplier { return MathBig{} })
	_ = f.Register("govalues", func() coreMultiplier { return FixedPoint{} })
	return f
}

// Register adds a new algorithm. An existing registration with the same
// name is replaced and its cached instance dropped.
func (f *DefaultFactory) Register(name string, creator func() coreMultiplier) error {
	if name == "" || creator == nil {
		return fmt.Errorf("multiply: invalid registration %q", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	delete(f.multipliers, name)
	return nil
}

// Create always builds a fresh, uncached Multiplier.
func (f *DefaultFactory) Create(name string) (Multiplier, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	return NewMultiplier(creator()), nil
}

// Get returns the cached Multiplier for name, creating it on first use.
//
// Parameters:
//   - name: The registry name of the algorithm.
//
// Returns:
//   - Multiplier: The cached instance.
//   - error: An error if no algorithm is registered under name.
func (f *DefaultFactory) Get(name string) (Multiplier, error) {
	f.mu.RLock()
	if m, exists := f.multipliers[name]; exists {
		f.mu.RUnlock()
		return m, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring the write lock.
	if m, exists := f.multipliers[name]; exists {
		return m, nil
	}
	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	m := NewMultiplier(creator())
	f.multipliers[name] = m
	return m, nil
}

// List returns the registered names, sorted alphabetically.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MustGet is like Get but panics if name is not registered.
func (f *DefaultFactory) MustGet(name string) Multiplier {
	m, err := f.Get(name)
	if err != nil {
		panic(fmt.Sprintf("multiply: required algorithm not found: %s", name))
	}
	return m
}

// Has reports whether name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

var globalFactory = NewDefaultFactory()

// GlobalFactory returns the process-wide factory.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// RegisterMultiplier registers an algorithm in the global factory.
func RegisterMultiplier(name string, creator func() coreMultiplier) error {
	return globalFactory.Register(name, creator)
}
