// Package combat runs the real-time melee exchange between the player and one
// engaged enemy.
//
// The machine has two states. Idle holds no enemy. Engaged holds an enemy and
// its tile, and lasts until the enemy dies, the player dies, or the player
// steps out of 8-directional reach. While engaged the enemy swings on its own
// timer regardless of player input.
package combat

import (
	"fmt"
	"log"

	"chosenoffset.com/deepdelve/internal/character"
	"chosenoffset.com/deepdelve/internal/core/geom"
	"chosenoffset.com/deepdelve/internal/core/timer"
	"chosenoffset.com/deepdelve/internal/dice"
	"chosenoffset.com/deepdelve/internal/entity"
	"chosenoffset.com/deepdelve/internal/inventory"
	"chosenoffset.com/deepdelve/internal/world/grid"
)

// State is the combat phase.
type State int

const (
	Idle State = iota
	Engaged
)

func (s State) String() string {
	if s == Engaged {
		return "engaged"
	}
	return "idle"
}

// Config tunes combat.
type Config struct {
	AttackCooldown   float64 `json:"attack_cooldown"`    // seconds between player swings
	EnemyAttackDelay float64 `json:"enemy_attack_delay"` // seconds between enemy swings
	BleedChance      int     `json:"bleed_chance"`       // percent
	LootChance       int     `json:"loot_chance"`        // percent chance a kill drops a weapon
	HealCost         int     `json:"heal_cost"`          // mana
	HealRoll         string  `json:"heal_roll"`          // dice expression

	HitFlash    float64 `json:"hit_flash"`    // enemy flash after a player hit
	DamageFlash float64 `json:"damage_flash"` // red tint after the player is hit
	ScreenShake float64 `json:"screen_shake"`
}

// DefaultConfig returns the standard combat tuning.
func DefaultConfig() Config {
	return Config{
		AttackCooldown:   0.5,
		EnemyAttackDelay: 1.2,
		BleedChance:      30,
		LootChance:       25,
		HealCost:         10,
		HealRoll:         "2d6+8",
		HitFlash:         0.15,
		DamageFlash:      0.35,
		ScreenShake:      0.25,
	}
}

// Sink receives status lines for the message log.
type Sink interface {
	Add(text string)
}

// Encounter is the slice of game state one combat step reads and mutates.
type Encounter struct {
	Player *character.Player
	Roster *inventory.Inventory
	World  *grid.World
	Pos    geom.Coord
	Facing geom.Direction
	Floor  int
}

func (e Encounter) ahead() geom.Coord {
	return e.Pos.Step(e.Facing)
}

// Result summarizes what one step did.
type Result struct {
	Struck bool
	// Dealt is the computed damage of the swing and any bleed, before the
	// enemy's remaining HP caps it. Taken is what the player actually lost.
	Dealt        int
	Taken        int
	Killed       *entity.Enemy
	LevelsGained int
	Loot         *entity.Weapon
	PlayerDied   bool
}

// System is the combat state machine.
type System struct {
	State    State
	Enemy    *entity.Enemy
	EnemyPos geom.Coord

	Cooldown    timer.Countdown
	EnemyTimer  timer.Countdown
	HitFlash    timer.Countdown
	DamageFlash timer.Countdown
	Shake       timer.Countdown

	config Config
	roller *dice.Roller
	heal   dice.Expr
	sink   Sink
}

// New creates an idle combat system. An invalid heal expression falls back to
// the default.
func New(config Config, roller *dice.Roller, sink Sink) *System {
	heal, err := dice.ParseExpr(config.HealRoll)
	if err != nil {
		log.Printf("Warning: invalid heal roll %q, using default: %v", config.HealRoll, err)
		heal, _ = dice.ParseExpr(DefaultConfig().HealRoll)
	}
	return &System{
		Cooldown:    timer.New(config.AttackCooldown),
		EnemyTimer:  timer.New(config.EnemyAttackDelay),
		HitFlash:    timer.New(config.HitFlash),
		DamageFlash: timer.New(config.DamageFlash),
		Shake:       timer.New(config.ScreenShake),
		config:      config,
		roller:      roller,
		heal:        heal,
		sink:        sink,
	}
}

// Config returns the tuning in use.
func (s *System) Config() Config {
	return s.config
}

// InCombat reports whether an enemy is engaged.
func (s *System) InCombat() bool {
	return s.State == Engaged && s.Enemy != nil
}

// Engage locks onto e standing at pos. Engaging the current enemy is a no-op.
func (s *System) Engage(e *entity.Enemy, pos geom.Coord) {
	if e == nil || !e.IsAlive() {
		return
	}
	if s.State == Engaged && s.Enemy == e {
		return
	}
	s.State = Engaged
	s.Enemy = e
	s.EnemyPos = pos
	s.EnemyTimer.Reset()
	s.say(e.Kind.Stats().Flavor)
}

// Disengage returns to Idle without touching the enemy.
func (s *System) Disengage() {
	s.State = Idle
	s.Enemy = nil
	s.EnemyTimer.Stop()
}

// Update advances timers by dt and lets the engaged enemy act.
func (s *System) Update(dt float64, enc Encounter) Result {
	s.Cooldown.Tick(dt)
	s.HitFlash.Tick(dt)
	s.DamageFlash.Tick(dt)
	s.Shake.Tick(dt)

	var res Result
	if s.State != Engaged {
		return res
	}
	if !s.Enemy.IsAlive() || enc.World.EnemyAt(s.EnemyPos) != s.Enemy {
		s.Disengage()
		return res
	}
	if geom.Chebyshev(enc.Pos, s.EnemyPos) > 1 {
		s.say(fmt.Sprintf("You back away from the %s.", s.Enemy.Name))
		s.Disengage()
		return res
	}

	if s.EnemyTimer.Tick(dt) {
		s.enemyAttack(enc, &res)
		s.EnemyTimer.Reset()
	}
	return res
}

// Attack swings the equipped weapon at the tile in front. Attacking an enemy
// there engages it first, so the swing doubles as the opening strike.
func (s *System) Attack(enc Encounter) Result {
	var res Result
	if s.Cooldown.Active() || !enc.Player.IsAlive() {
		return res
	}
	s.Cooldown.Reset()

	target := enc.ahead()
	e := enc.World.EnemyAt(target)
	if e == nil || !e.IsAlive() {
		return res
	}
	if s.Enemy != e {
		s.Engage(e, target)
	}
	s.playerAttack(enc, &res)
	return res
}

// Defend raises the guard against the next enemy hit.
func (s *System) Defend(enc Encounter) {
	if !s.InCombat() || enc.Player.Defending {
		return
	}
	enc.Player.Defending = true
	s.say("You raise your guard.")
}

// Heal spends mana to restore health. It works in and out of combat.
func (s *System) Heal(enc Encounter) int {
	p := enc.Player
	if p.HP >= p.MaxHP {
		s.say("You are already at full health.")
		return 0
	}
	if !p.SpendMana(s.config.HealCost) {
		s.say("Not enough mana to heal.")
		return 0
	}
	healed := p.Heal(s.heal.Roll(s.roller))
	s.say(fmt.Sprintf("You heal for %d.", healed))
	return healed
}

func (s *System) playerAttack(enc Encounter, res *Result) {
	e := s.Enemy
	w := enc.Roster.Current()

	variance := s.roller.Range(-3, 3)
	crit := s.roller.Chance(w.CritChance)
	dmg := PlayerDamage(w, enc.Player.Attack, e.Defense, variance, crit)
	e.TakeDamage(dmg)

	res.Struck = true
	res.Dealt = dmg
	s.HitFlash.Reset()
	if crit {
		s.say(fmt.Sprintf("Critical hit! %d damage to the %s.", dmg, e.Name))
	} else {
		s.say(fmt.Sprintf("You hit the %s for %d.", e.Name, dmg))
	}

	switch w.Special {
	case entity.SpecialBleed:
		if e.IsAlive() && s.roller.Chance(s.config.BleedChance) {
			bleed := max(1, dmg/4)
			e.TakeDamage(bleed)
			res.Dealt += bleed
			s.say(fmt.Sprintf("The %s bleeds for %d.", e.Name, bleed))
		}
	case entity.SpecialLifesteal:
		if drained := enc.Player.Heal(dmg / 4); drained > 0 {
			s.say(fmt.Sprintf("You drain %d health.", drained))
		}
	}

	if !e.IsAlive() {
		s.enemyDied(enc, res)
	}
}

func (s *System) enemyAttack(enc Encounter, res *Result) {
	p := enc.Player
	e := s.Enemy
	if !e.IsAlive() || !p.IsAlive() {
		return
	}

	variance := s.roller.Range(-2, 3)
	blocked := p.Defending
	dmg := p.TakeDamage(EnemyDamage(e.Attack, p.Defense, variance, blocked))
	p.Defending = false

	res.Taken += dmg
	s.DamageFlash.Reset()
	s.Shake.Reset()
	if blocked {
		s.say(fmt.Sprintf("You block! The %s hits you for %d.", e.Name, dmg))
	} else {
		s.say(fmt.Sprintf("The %s hits you for %d.", e.Name, dmg))
	}

	if !p.IsAlive() {
		res.PlayerDied = true
		s.say(fmt.Sprintf("You were slain by the %s.", e.Name))
		s.Disengage()
	}
}

func (s *System) enemyDied(enc Encounter, res *Result) {
	e := s.Enemy
	p := enc.Player

	enc.World.RemoveEnemy(s.EnemyPos)
	p.AddGold(e.Gold)
	res.Killed = e
	s.say(fmt.Sprintf("You slay the %s! +%d XP, +%d gold.", e.Name, e.XP, e.Gold))

	if levels := p.GainXP(e.XP); levels > 0 {
		res.LevelsGained = levels
		s.say(fmt.Sprintf("Level up! You are now level %d.", p.Level))
	}

	if s.roller.Chance(s.config.LootChance) {
		w := entity.RollWeapon(s.roller, enc.Floor)
		res.Loot = &w
		s.take(enc.Roster, w, fmt.Sprintf("The %s dropped", e.Name))
	}

	s.Disengage()
}

// take offers a found weapon to the roster and reports the outcome.
func (s *System) take(roster *inventory.Inventory, w entity.Weapon, prefix string) {
	added := roster.Add(w)
	switch {
	case !added.Added:
		s.say(fmt.Sprintf("%s a %s, but you leave it behind.", prefix, w.Name))
	case added.Replaced != nil:
		s.say(fmt.Sprintf("%s a %s. It replaces your %s.", prefix, w.Name, added.Replaced.Name))
	default:
		s.say(fmt.Sprintf("%s a %s. Press %d to equip.", prefix, w.Name, added.Index+1))
	}
}

// TakeLoot offers a weapon found outside combat to the roster.
func (s *System) TakeLoot(roster *inventory.Inventory, w entity.Weapon) {
	s.take(roster, w, "You find")
}

func (s *System) say(text string) {
	if s.sink != nil && text != "" {
		s.sink.Add(text)
	}
}
