// Package interaction resolves what happens when the player uses or steps on
// a floor feature. Each sprite kind maps to one rule in a single table.
package interaction

import (
	"fmt"
	"log"

	"chosenoffset.com/deepdelve/internal/character"
	"chosenoffset.com/deepdelve/internal/core/geom"
	"chosenoffset.com/deepdelve/internal/dice"
	"chosenoffset.com/deepdelve/internal/entity"
	"chosenoffset.com/deepdelve/internal/inventory"
	"chosenoffset.com/deepdelve/internal/world/grid"
)

// TriggerType defines what initiates an interaction
type TriggerType string

const (
	TriggerInteract TriggerType = "interact" // Player presses the interact key
	TriggerEnter    TriggerType = "enter"    // Player steps onto the tile
)

// Outcome is a run-level consequence of an interaction.
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeDescend asks for the next floor to be generated.
	OutcomeDescend
	// OutcomeVictory ends the run after the final floor.
	OutcomeVictory
)

// Config tunes feature effects.
type Config struct {
	MaxFloor          int    `json:"max_floor"`
	ChestGoldMin      int    `json:"chest_gold_min"`
	ChestGoldMax      int    `json:"chest_gold_max"`
	ChestGoldPerFloor int    `json:"chest_gold_per_floor"`
	ChestWeaponChance int    `json:"chest_weapon_chance"` // percent
	TrapRoll          string `json:"trap_roll"`           // dice expression, floor number is added
}

// DefaultConfig returns the standard feature tuning.
func DefaultConfig() Config {
	return Config{
		MaxFloor:          10,
		ChestGoldMin:      5,
		ChestGoldMax:      15,
		ChestGoldPerFloor: 5,
		ChestWeaponChance: 35,
		TrapRoll:          "1d6",
	}
}

// Sink receives status lines for the message log.
type Sink interface {
	Add(text string)
}

// Context is the game state an interaction may touch.
type Context struct {
	Player *character.Player
	Roster *inventory.Inventory
	World  *grid.World
	Floor  int
}

// Result reports a triggered interaction.
type Result struct {
	Triggered  bool
	Kind       grid.SpriteKind
	Outcome    Outcome
	Gold       int
	Loot       *entity.Weapon
	Damage     int
	PlayerDied bool
}

// Interaction is one rule of the feature table.
type Interaction struct {
	Trigger     TriggerType
	SingleUse   bool
	Description string // shown when the rule does not fire
	Spent       string // shown when a single-use feature is used again

	apply func(s *System, at geom.Coord, ctx Context, res *Result)
}

var rules = map[grid.SpriteKind]Interaction{
	grid.SpriteStairs: {
		Trigger:     TriggerInteract,
		Description: "Stairs lead down into the dark.",
		apply:       (*System).useStairs,
	},
	grid.SpriteChest: {
		Trigger:     TriggerInteract,
		SingleUse:   true,
		Description: "A heavy chest sits here.",
		Spent:       "The chest is empty.",
		apply:       (*System).openChest,
	},
	grid.SpriteShrine: {
		Trigger:     TriggerInteract,
		SingleUse:   true,
		Description: "A shrine glows softly.",
		Spent:       "The shrine's light has faded.",
		apply:       (*System).prayAtShrine,
	},
	grid.SpriteTrap: {
		Trigger: TriggerEnter,
		apply:   (*System).springTrap,
	},
}

// Rule returns the interaction for a sprite kind, if it has one.
func Rule(k grid.SpriteKind) (Interaction, bool) {
	r, ok := rules[k]
	return r, ok
}

// System applies feature effects.
type System struct {
	config Config
	roller *dice.Roller
	trap   dice.Expr
	sink   Sink
}

// New creates an interaction system. An invalid trap expression falls back
// to the default.
func New(config Config, roller *dice.Roller, sink Sink) *System {
	trap, err := dice.ParseExpr(config.TrapRoll)
	if err != nil {
		log.Printf("Warning: invalid trap roll %q, using default: %v", config.TrapRoll, err)
		trap, _ = dice.ParseExpr(DefaultConfig().TrapRoll)
	}
	if config.MaxFloor <= 0 {
		config.MaxFloor = DefaultConfig().MaxFloor
	}
	return &System{config: config, roller: roller, trap: trap, sink: sink}
}

// Config returns the tuning in use.
func (s *System) Config() Config {
	return s.config
}

// Trigger fires the feature on tile at for the given trigger. Tiles without
// a feature, or whose rule wants another trigger, do nothing.
func (s *System) Trigger(trigger TriggerType, at geom.Coord, ctx Context) Result {
	sp := ctx.World.SpriteAt(at)
	if sp == nil {
		return Result{}
	}
	rule, ok := Rule(sp.Kind)
	if !ok {
		return Result{}
	}
	if rule.Trigger != trigger {
		if trigger == TriggerEnter && !s.used(sp.Kind, at, ctx.World) {
			s.say(rule.Description)
		}
		return Result{}
	}
	if rule.SingleUse && s.used(sp.Kind, at, ctx.World) {
		s.say(rule.Spent)
		return Result{}
	}

	res := Result{Triggered: true, Kind: sp.Kind}
	rule.apply(s, at, ctx, &res)
	return res
}

// HasInteract reports whether tile at holds a feature that reacts to the
// interact key and has not been spent.
func (s *System) HasInteract(at geom.Coord, w *grid.World) bool {
	sp := w.SpriteAt(at)
	if sp == nil {
		return false
	}
	rule, ok := Rule(sp.Kind)
	return ok && rule.Trigger == TriggerInteract && !(rule.SingleUse && s.used(sp.Kind, at, w))
}

func (s *System) used(k grid.SpriteKind, at geom.Coord, w *grid.World) bool {
	switch k {
	case grid.SpriteChest:
		return w.OpenedChests.Has(at)
	case grid.SpriteShrine:
		return w.UsedShrines.Has(at)
	}
	return false
}

func (s *System) useStairs(_ geom.Coord, ctx Context, res *Result) {
	next := ctx.Floor + 1
	if next > s.config.MaxFloor {
		res.Outcome = OutcomeVictory
		s.say("You climb out of the deepest vault. Victory!")
		return
	}
	res.Outcome = OutcomeDescend
	s.say(fmt.Sprintf("You descend to floor %d.", next))
}

func (s *System) openChest(at geom.Coord, ctx Context, res *Result) {
	ctx.World.OpenedChests.Put(at)

	gold := s.roller.Range(s.config.ChestGoldMin, s.config.ChestGoldMax) + s.config.ChestGoldPerFloor*ctx.Floor
	ctx.Player.AddGold(gold)
	res.Gold = gold
	s.say(fmt.Sprintf("You open the chest and find %d gold.", gold))

	if !s.roller.Chance(s.config.ChestWeaponChance) {
		return
	}
	w := entity.RollWeapon(s.roller, ctx.Floor)
	res.Loot = &w
	added := ctx.Roster.Add(w)
	switch {
	case !added.Added:
		s.say(fmt.Sprintf("Inside lies a %s, but your pack is full of better steel.", w.Name))
	case added.Replaced != nil:
		s.say(fmt.Sprintf("Inside lies a %s. It replaces your %s.", w.Name, added.Replaced.Name))
	default:
		s.say(fmt.Sprintf("Inside lies a %s. Press %d to equip.", w.Name, added.Index+1))
	}
}

func (s *System) prayAtShrine(at geom.Coord, ctx Context, _ *Result) {
	ctx.World.UsedShrines.Put(at)
	ctx.Player.RestoreAll()
	s.say("The shrine restores your body and mind.")
}

func (s *System) springTrap(_ geom.Coord, ctx Context, res *Result) {
	dmg := ctx.Player.TakeDamage(max(1, s.trap.Roll(s.roller)+ctx.Floor))
	res.Damage = dmg
	s.say(fmt.Sprintf("A trap springs! You take %d damage.", dmg))
	if !ctx.Player.IsAlive() {
		res.PlayerDied = true
		s.say("The trap claims your life.")
	}
}

func (s *System) say(text string) {
	if s.sink != nil && text != "" {
		s.sink.Add(text)
	}
}
