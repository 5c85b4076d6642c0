package prefabs

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/treasurehunt/ecs/component"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

// Archetype kinds.
const (
	KindPlayer     = "player"
	KindPatroller  = "patroller"
	KindAmbusher   = "ambusher"
	KindCharger    = "charger"
	KindTurret     = "turret"
	KindProjectile = "projectile"
	KindHazard     = "hazard"
	KindCoin       = "coin"
	KindGoal       = "goal"
)

// DefaultArchetypes lists every prefab shipped with the game.
var DefaultArchetypes = []string{
	"player", "tooth", "crabby", "pinkstar", "shell", "pearl",
	"spikes", "gold", "silver", "diamond", "flag",
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ArchetypeSpec is the tuning of one archetype.
type ArchetypeSpec struct {
	Name           string  `yaml:"name"`
	Kind           string  `yaml:"kind"`
	Faction        string  `yaml:"faction"`
	NativeFacing   string  `yaml:"native_facing"`
	DefaultStatus  string  `yaml:"default_status"`
	AnimationSpeed float64 `yaml:"animation_speed"`

	Speed         float64 `yaml:"speed"`
	AttackSpeed   float64 `yaml:"attack_speed"`
	Gravity       float64 `yaml:"gravity"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	Knockback     float64 `yaml:"knockback"`
	FallThreshold float64 `yaml:"fall_threshold"`

	Health        int  `yaml:"health"`
	ContactDamage int  `yaml:"contact_damage"`
	Value         int  `yaml:"value"`
	Solid         bool `yaml:"solid"`

	Collider ColliderSpec         `yaml:"collider"`
	Frame    FrameSpec            `yaml:"frame"`
	States   map[string]StateSpec `yaml:"states"`
	Timers   map[string]Duration  `yaml:"timers"`
	Melee    []AttackSpec         `yaml:"melee"`
	Ranged   *RangedSpec          `yaml:"ranged"`
	Aggro    AggroSpec            `yaml:"aggro"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FrameSpec sizes the placeholder art used when no decoded frames exist.
// Body is the opaque rectangle inside the frame: [x, y, width, height].
type FrameSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Body   []int  `yaml:"body"`
	Color  string `yaml:"color"`
}

type StateSpec struct {
	Repeat        string `yaml:"repeat"`
	Interruptible bool   `yaml:"interruptible"`
	Next          string `yaml:"next"`
	Terminal      bool   `yaml:"terminal"`
	// Frames is the placeholder frame count.
	Frames int `yaml:"frames"`
}

type AttackSpec struct {
	Status  string  `yaml:"status"`
	Frame   int     `yaml:"frame"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Damage  int     `yaml:"damage"`
}

type RangedSpec struct {
	Status     string  `yaml:"status"`
	Frame      int     `yaml:"frame"`
	Projectile string  `yaml:"projectile"`
	OffsetX    float64 `yaml:"offset_x"`
	OffsetY    float64 `yaml:"offset_y"`
}

type AggroSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Distance float64 `yaml:"distance"`
}

// Duration decodes Go duration strings ("3s", "500ms") or plain
// milliseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration: expected scalar at line %d", node.Line)
	}
	raw := strings.TrimSpace(node.Value)
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		d.Duration = time.Duration(ms) * time.Millisecond
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("duration %q: %w", raw, err)
	}
	d.Duration = parsed
	return nil
}

// LoadArchetype loads name.yaml. The archetype name defaults to the file
// name.
func LoadArchetype(name string) (*ArchetypeSpec, error) {
	spec, err := LoadSpec[ArchetypeSpec](FileName(name))
	if err != nil {
		return nil, err
	}
	if spec.Name == "" {
		spec.Name = ArchetypeName(name)
	}
	return &spec, nil
}

// StateTable converts the YAML states to the runtime table.
func (s *ArchetypeSpec) StateTable() (component.StateTable, error) {
	table := make(component.StateTable, len(s.States))
	for status, st := range s.States {
		repeat, err := component.ParseRepeat(st.Repeat)
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %v", ErrInvalidSpec, s.Name, status, err)
		}
		table[status] = component.StateSpec{
			Repeat:        repeat,
			Interruptible: st.Interruptible,
			Next:          st.Next,
			Terminal:      st.Terminal,
		}
	}
	return table, nil
}

// Statuses returns the state names in sorted order.
func (s *ArchetypeSpec) Statuses() []string {
	out := make([]string, 0, len(s.States))
	for status := range s.States {
		out = append(out, status)
	}
	sort.Strings(out)
	return out
}

// Timer returns the configured duration of a named timer.
func (s *ArchetypeSpec) Timer(name string) (time.Duration, bool) {
	d, ok := s.Timers[name]
	return d.Duration, ok
}

// Variants converts the melee specs.
func (s *ArchetypeSpec) Variants() []component.AttackVariant {
	if len(s.Melee) == 0 {
		return nil
	}
	out := make([]component.AttackVariant, len(s.Melee))
	for i, m := range s.Melee {
		out[i] = component.AttackVariant{
			Status:  m.Status,
			Frame:   m.Frame,
			OffsetX: m.OffsetX,
			OffsetY: m.OffsetY,
			Width:   m.Width,
			Height:  m.Height,
			Damage:  m.Damage,
		}
	}
	return out
}

// EnemyKind maps enemy kinds to their component tag.
func (s *ArchetypeSpec) EnemyKind() (component.EnemyKind, bool) {
	switch s.Kind {
	case KindPatroller, KindAmbusher, KindCharger, KindTurret:
		k, err := component.ParseEnemyKind(s.Kind)
		return k, err == nil
	default:
		return 0, false
	}
}

// FrameBody returns the placeholder body rectangle, defaulting to the
// whole frame.
func (f FrameSpec) FrameBody() image.Rectangle {
	if len(f.Body) == 4 {
		return image.Rect(f.Body[0], f.Body[1], f.Body[0]+f.Body[2], f.Body[1]+f.Body[3])
	}
	return image.Rect(0, 0, f.Width, f.Height)
}

// RGBA parses Color as #rrggbb, falling back to magenta.
func (f FrameSpec) RGBA() color.RGBA {
	c := color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	s := strings.TrimPrefix(f.Color, "#")
	if len(s) != 6 {
		return c
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return c
	}
	c.R = uint8(v >> 16)
	c.G = uint8(v >> 8)
	c.B = uint8(v)
	return c
}
