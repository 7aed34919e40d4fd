// Package registry provides a global registry for environment
// factories. Environments register themselves in init() functions,
// allowing front-ends to discover and instantiate them without
// hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/helpingstar/gym-game2048/internal/game"
)

// Environment is the interface every registered environment implements.
// Environments contain pure simulation logic with no terminal or
// storage dependencies; front-ends handle input, rendering and
// persistence.
type Environment interface {
	// ID returns the unique environment identifier (e.g. "game2048-v0").
	ID() string

	// Reset starts a new episode deterministically from a seed.
	Reset(seed int64) (game.StepResult, error)

	// Step applies a discrete action and returns the step tuple.
	Step(action int) (game.StepResult, error)
}

// Factory creates a new instance of an environment.
type Factory func() (Environment, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds an environment factory to the registry. Typically
// called from an environment package's init() function. Panics if the
// ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: environment %q already registered", id))
	}
	factories[id] = f
}

// List returns the registered environment IDs, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Create instantiates a new environment by its ID.
func Create(id string) (Environment, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown environment %q", id)
	}
	return f()
}

// Exists checks if an environment with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
