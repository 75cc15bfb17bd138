package engine

// Component is attached to a GameObject. Start runs once before the first
// tick. Per-tick behaviour lives on narrower interfaces the world's phases
// look up with FindComponent.
type Component interface {
	Start()
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
