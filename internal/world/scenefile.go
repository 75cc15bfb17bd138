package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"reflex3d/internal/components"
	"reflex3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

// SceneFile describes one arena layout. Rooms reuse the same layout; what
// changes between rooms is the enemies the spawner places.
type SceneFile struct {
	Name    string      `json:"name"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type meshRendererDef struct {
	Type  string     `json:"type"`
	Mesh  string     `json:"mesh"`
	Size  [3]float32 `json:"size"`
	Color string     `json:"color"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string  `json:"type"`
	Radius float32 `json:"radius"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"DarkBlue":  rl.DarkBlue,
	"Black":     rl.Black,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}

// --- Loading ---

func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	sf, err := ParseSceneFile(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return sf, nil
}

func ParseSceneFile(data []byte) (*SceneFile, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := sf.Validate(); err != nil {
		return nil, err
	}
	return &sf, nil
}

// Validate checks the markers every arena needs.
func (sf *SceneFile) Validate() error {
	var floors, spawns int
	var errs []error
	for _, def := range sf.Objects {
		for _, tag := range def.Tags {
			switch tag {
			case engine.TagFloor:
				floors++
				if !def.hasComponent("BoxCollider") {
					errs = append(errs, fmt.Errorf("floor %q needs a BoxCollider", def.Name))
				}
			case engine.TagSpawn:
				spawns++
			}
		}
	}
	if floors != 1 {
		errs = append(errs, fmt.Errorf("expected exactly one floor, found %d", floors))
	}
	if spawns == 0 {
		errs = append(errs, errors.New("no spawn marker"))
	}
	return errors.Join(errs...)
}

func (def ObjectDef) hasComponent(typ string) bool {
	for _, raw := range def.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err == nil && header.Type == typ {
			return true
		}
	}
	return false
}

// Instantiate builds a game object from its definition. Unknown component
// types are skipped.
func Instantiate(def ObjectDef) *engine.GameObject {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = vec(def.Position)
	g.Transform.Rotation = vec(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = vec(def.Scale)
	}

	for _, raw := range def.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			continue
		}

		switch header.Type {
		case "MeshRenderer":
			loadMeshRenderer(g, raw)
		case "BoxCollider":
			loadBoxCollider(g, raw)
		case "SphereCollider":
			loadSphereCollider(g, raw)
		}
	}
	return g
}

func loadMeshRenderer(g *engine.GameObject, raw json.RawMessage) {
	var def meshRendererDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	g.AddComponent(components.NewMeshRenderer(components.ParseMeshType(def.Mesh), lookupColor(def.Color), vec(def.Size)))
}

func loadBoxCollider(g *engine.GameObject, raw json.RawMessage) {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	col := components.NewBoxCollider(vec(def.Size))
	col.Offset = vec(def.Offset)
	g.AddComponent(col)
}

func loadSphereCollider(g *engine.GameObject, raw json.RawMessage) {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return
	}
	g.AddComponent(components.NewSphereCollider(def.Radius))
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// --- Saving ---

func (sf *SceneFile) Save(path string) error {
	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}

func mustComponent(def any) json.RawMessage {
	data, err := json.Marshal(def)
	if err != nil {
		panic(err)
	}
	return data
}

func box(name string, tags []string, pos, size [3]float32, color string) ObjectDef {
	return ObjectDef{
		Name:     name,
		Tags:     tags,
		Position: pos,
		Components: []json.RawMessage{
			mustComponent(meshRendererDef{Type: "MeshRenderer", Mesh: "cube", Size: size, Color: color}),
			mustComponent(boxColliderDef{Type: "BoxCollider", Size: size}),
		},
	}
}

// DefaultArena is a walled 40x40 floor with four pillars, the player spawn
// in the middle and the exit door on the north wall.
func DefaultArena() *SceneFile {
	solid := []string{engine.TagSolid}
	sf := &SceneFile{
		Name: "arena",
		Objects: []ObjectDef{
			box("Floor", []string{engine.TagFloor}, [3]float32{0, -0.5, 0}, [3]float32{40, 1, 40}, "DarkGray"),
			box("Wall_N", solid, [3]float32{0, 1.5, 20.5}, [3]float32{42, 3, 1}, "Gray"),
			box("Wall_S", solid, [3]float32{0, 1.5, -20.5}, [3]float32{42, 3, 1}, "Gray"),
			box("Wall_E", solid, [3]float32{20.5, 1.5, 0}, [3]float32{1, 3, 40}, "Gray"),
			box("Wall_W", solid, [3]float32{-20.5, 1.5, 0}, [3]float32{1, 3, 40}, "Gray"),
			box("Pillar_NE", solid, [3]float32{8, 1.5, 8}, [3]float32{2, 3, 2}, "LightGray"),
			box("Pillar_NW", solid, [3]float32{-8, 1.5, 8}, [3]float32{2, 3, 2}, "LightGray"),
			box("Pillar_SE", solid, [3]float32{8, 1.5, -8}, [3]float32{2, 3, 2}, "LightGray"),
			box("Pillar_SW", solid, [3]float32{-8, 1.5, -8}, [3]float32{2, 3, 2}, "LightGray"),
			{
				Name:     "Spawn",
				Tags:     []string{engine.TagSpawn},
				Position: [3]float32{0, 0.5, 0},
			},
			{
				Name:     "Door",
				Tags:     []string{engine.TagDoor},
				Position: [3]float32{0, 1, 19},
				Components: []json.RawMessage{
					mustComponent(meshRendererDef{Type: "MeshRenderer", Mesh: "cube", Size: [3]float32{3, 2, 0.4}, Color: "SkyBlue"}),
				},
			},
		},
	}
	return sf
}
