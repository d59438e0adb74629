package entity

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/emberfall/anim"
	"chosenoffset.com/emberfall/geom"
)

// KindID identifies an enemy kind in the registry.
type KindID string

// KindDef is the immutable configuration record for one enemy kind. The
// registry hands out copies; hooks are attached per kind, not per JSON
// field, so the state machine's core loop stays uniform across kinds.
type KindDef struct {
	ID     KindID
	Config Config

	StopDistance float64 // Stop walking toward the player inside this range
	AggroRange   float64 // Ignore the player beyond this range

	AttackHook AttackHook // Optional, e.g. projectile spawn for ranged kinds
	HookFrame  int        // Attack frame at which the hook fires
	UpdateHook UpdateHook // Optional auxiliary per-tick behavior

	Asleep bool // Start dormant until woken externally
}

// KindPatch overrides selected fields of a kind definition. Nil fields
// keep the base value; Merge is pure and never mutates the base.
type KindPatch struct {
	MaxHP          *int     `json:"max_hp,omitempty"`
	Speed          *float64 `json:"speed,omitempty"`
	AttackDamage   *int     `json:"attack_damage,omitempty"`
	AttackRange    *float64 `json:"attack_range,omitempty"`
	AttackCooldown *float64 `json:"attack_cooldown,omitempty"`
	AggroRange     *float64 `json:"aggro_range,omitempty"`
	Asleep         *bool    `json:"asleep,omitempty"`
}

// Merge returns base with the patch's non-nil fields applied.
func Merge(base KindDef, patch KindPatch) KindDef {
	out := base
	if patch.MaxHP != nil {
		out.Config.MaxHP = *patch.MaxHP
	}
	if patch.Speed != nil {
		out.Config.Speed = *patch.Speed
	}
	if patch.AttackDamage != nil {
		out.Config.AttackDamage = *patch.AttackDamage
	}
	if patch.AttackRange != nil {
		out.Config.AttackRange = *patch.AttackRange
	}
	if patch.AttackCooldown != nil {
		out.Config.AttackCooldown = *patch.AttackCooldown
	}
	if patch.AggroRange != nil {
		out.AggroRange = *patch.AggroRange
	}
	if patch.Asleep != nil {
		out.Asleep = *patch.Asleep
	}
	return out
}

// Registry holds the known enemy kinds.
type Registry struct {
	kinds map[KindID]KindDef
}

// NewRegistry creates an empty kind registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[KindID]KindDef)}
}

// Register adds or replaces a kind definition.
func (r *Registry) Register(def KindDef) {
	r.kinds[def.ID] = def
}

// Kind returns the definition for an id.
func (r *Registry) Kind(id KindID) (KindDef, bool) {
	def, ok := r.kinds[id]
	return def, ok
}

// Spawn creates an enemy of the given kind at a position, with an
// optional patch applied. Unknown kinds and invalid configs abort
// creation.
func (r *Registry) Spawn(id KindID, pos geom.Vec2, patch *KindPatch) (*Enemy, error) {
	def, ok := r.kinds[id]
	if !ok {
		return nil, fmt.Errorf("unknown enemy kind %q", id)
	}
	if patch != nil {
		def = Merge(def, *patch)
	}

	core, err := newCore(def.Config, pos)
	if err != nil {
		return nil, fmt.Errorf("enemy kind %q: %w", id, err)
	}

	return &Enemy{
		Core:         core,
		Kind:         id,
		stopDistance: def.StopDistance,
		aggroRange:   def.AggroRange,
		attackHook:   def.AttackHook,
		hookFrame:    def.HookFrame,
		updateHook:   def.UpdateHook,
		asleep:       def.Asleep,
	}, nil
}

// clipDef is the JSON form of an animation clip in a kind library.
type clipDef struct {
	Sprite      string  `json:"sprite"`
	Frames      int     `json:"frames"`
	FrameWidth  int     `json:"frame_w"`
	FrameHeight int     `json:"frame_h"`
	FrameTime   float64 `json:"frame_time"`
	Loop        bool    `json:"loop,omitempty"`
}

// kindEntry is the JSON form of one enemy kind.
type kindEntry struct {
	ID             string             `json:"id"`
	MaxHP          int                `json:"max_hp"`
	Speed          float64            `json:"speed"`
	FootW          float64            `json:"foot_w"`
	FootH          float64            `json:"foot_h"`
	AttackDamage   int                `json:"attack_damage"`
	AttackRange    float64            `json:"attack_range"`
	AttackReach    float64            `json:"attack_reach,omitempty"`
	AttackRadius   float64            `json:"attack_radius,omitempty"`
	AttackCooldown float64            `json:"attack_cooldown"`
	HitWindowStart int                `json:"hit_window_start,omitempty"`
	HitWindowEnd   int                `json:"hit_window_end,omitempty"`
	HurtRecovery   float64            `json:"hurt_recovery,omitempty"`
	StopDistance   float64            `json:"stop_distance"`
	AggroRange     float64            `json:"aggro_range"`
	Asleep         bool               `json:"asleep,omitempty"`
	Clips          map[string]clipDef `json:"clips"`
}

// kindLibrary is the JSON form of a kind library file.
type kindLibrary struct {
	Name  string      `json:"name"`
	Kinds []kindEntry `json:"kinds"`
}

// LoadKindLibrary reads enemy kind definitions from a JSON file into the
// registry. Hooks cannot be described in data; callers attach them after
// loading via AttachHooks.
func (r *Registry) LoadKindLibrary(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read kind library: %w", err)
	}

	var lib kindLibrary
	if err := json.Unmarshal(data, &lib); err != nil {
		return fmt.Errorf("failed to parse kind library: %w", err)
	}

	for _, entry := range lib.Kinds {
		def, err := entry.toDef()
		if err != nil {
			return fmt.Errorf("kind library %s: %w", lib.Name, err)
		}
		r.Register(def)
	}
	return nil
}

// AttachHooks sets the hooks on an already-registered kind.
func (r *Registry) AttachHooks(id KindID, attack AttackHook, hookFrame int, update UpdateHook) error {
	def, ok := r.kinds[id]
	if !ok {
		return fmt.Errorf("unknown enemy kind %q", id)
	}
	def.AttackHook = attack
	def.HookFrame = hookFrame
	def.UpdateHook = update
	r.kinds[id] = def
	return nil
}

func (e kindEntry) toDef() (KindDef, error) {
	if e.ID == "" {
		return KindDef{}, fmt.Errorf("kind entry missing id")
	}
	clips := make(map[State]anim.Clip, len(e.Clips))
	for name, cd := range e.Clips {
		state, ok := stateByName(name)
		if !ok {
			return KindDef{}, fmt.Errorf("kind %s has unknown state %q", e.ID, name)
		}
		clips[state] = anim.Clip{
			Sprite:      cd.Sprite,
			Frames:      cd.Frames,
			FrameWidth:  cd.FrameWidth,
			FrameHeight: cd.FrameHeight,
			FrameTime:   cd.FrameTime,
			Loop:        cd.Loop,
		}
	}

	return KindDef{
		ID: KindID(e.ID),
		Config: Config{
			MaxHP:          e.MaxHP,
			Speed:          e.Speed,
			FootW:          e.FootW,
			FootH:          e.FootH,
			AttackDamage:   e.AttackDamage,
			AttackRange:    e.AttackRange,
			AttackReach:    e.AttackReach,
			AttackRadius:   e.AttackRadius,
			AttackCooldown: e.AttackCooldown,
			HitWindowStart: e.HitWindowStart,
			HitWindowEnd:   e.HitWindowEnd,
			HurtRecovery:   e.HurtRecovery,
			Clips:          clips,
		},
		StopDistance: e.StopDistance,
		AggroRange:   e.AggroRange,
		Asleep:       e.Asleep,
	}, nil
}
