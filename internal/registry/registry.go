// Package registry holds the named replay scenarios the CLI can run by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/torus-snake/internal/replay"
)

// Scenario is a named, reproducible tick script.
type Scenario interface {
	ID() string
	Title() string

	// Script returns a fresh copy; callers may modify it.
	Script() replay.Script
}

// ScenarioInfo summarizes a registered scenario for listings.
type ScenarioInfo struct {
	ID    string
	Title string
	Ticks int // Expanded tick count of the script
}

// Factory builds a scenario.
type Factory func() Scenario

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]ScenarioInfo)
)

// Register adds a scenario under id. Listing metadata is captured here, so
// List never has to build scenarios. A duplicate id is a programming error
// and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", id))
	}

	sc := f()
	factories[id] = f
	infos[id] = ScenarioInfo{
		ID:    id,
		Title: sc.Title(),
		Ticks: len(sc.Script().Ticks()),
	}
}

// List returns all registered scenarios ordered by ID.
func List() []ScenarioInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScenarioInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds the scenario registered under id.
func Create(id string) (Scenario, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown scenario %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
