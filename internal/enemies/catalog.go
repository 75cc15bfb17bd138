package enemies

import (
	"fmt"
	"sort"

	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Factory builds a fully wired enemy object at pos.
type Factory func(pos rl.Vector3) *engine.GameObject

// Catalog maps enemy types to factories.
type Catalog struct {
	factories map[EnemyType]Factory
}

func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[EnemyType]Factory)}
}

// Register adds a factory. Registering the same type twice panics.
func (c *Catalog) Register(t EnemyType, f Factory) {
	if _, exists := c.factories[t]; exists {
		panic(fmt.Sprintf("enemy %q already registered", t))
	}
	c.factories[t] = f
}

// Create builds an enemy of type t.
func (c *Catalog) Create(t EnemyType, pos rl.Vector3) (*engine.GameObject, error) {
	f, ok := c.factories[t]
	if !ok {
		return nil, fmt.Errorf("no factory for enemy %q", t)
	}
	return f(pos), nil
}

// Types returns the registered types in ascending order.
func (c *Catalog) Types() []EnemyType {
	types := make([]EnemyType, 0, len(c.factories))
	for t := range c.factories {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
