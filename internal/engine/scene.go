package engine

// Scene owns the live GameObjects of one room. Removal requested through
// Destroy is deferred until FlushDestroyed so callers may destroy objects
// while iterating GameObjects.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
	pending     []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject removes g immediately. Prefer Destroy during a tick.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.uidMap, g.UID)
			g.Scene = nil
			return
		}
	}
}

// Destroy marks g for removal at the next FlushDestroyed. Destroying an
// object twice, or one that is not in the scene, is a no-op.
func (s *Scene) Destroy(g *GameObject) {
	if g == nil || g.destroyed || s.uidMap[g.UID] != g {
		return
	}
	g.destroyed = true
	s.pending = append(s.pending, g)
}

// FlushDestroyed removes every object marked by Destroy and returns them.
func (s *Scene) FlushDestroyed() []*GameObject {
	if len(s.pending) == 0 {
		return nil
	}
	removed := s.pending
	s.pending = nil
	for _, g := range removed {
		s.RemoveGameObject(g)
	}
	return removed
}

// Clear destroys every object, pending or not. Objects that should
// survive a teardown must be removed first.
func (s *Scene) Clear() {
	for _, g := range s.GameObjects {
		g.Scene = nil
		g.destroyed = true
	}
	s.GameObjects = make([]*GameObject, 0)
	s.uidMap = make(map[uint64]*GameObject)
	s.pending = nil
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

// FindByTag returns live objects carrying tag. Objects pending destruction
// are skipped.
func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if !g.destroyed && g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}
