// Package entity defines the enemy and weapon records together with the stat
// tables that drive them. Every kind-dependent value lives in one table per
// category so gameplay code never switches on kinds directly.
package entity

import "chosenoffset.com/deepdelve/internal/dice"

// EnemyKind identifies an enemy archetype.
type EnemyKind int

const (
	EnemyRat EnemyKind = iota
	EnemySkeleton
	EnemyGoblin
	EnemyOrc
	EnemyWraith
	EnemyDemon

	enemyKindCount
)

// EnemyKinds lists every enemy archetype.
var EnemyKinds = []EnemyKind{EnemyRat, EnemySkeleton, EnemyGoblin, EnemyOrc, EnemyWraith, EnemyDemon}

// EnemyStats is one row of the enemy table. Per-floor values are added once
// for every floor past the first.
type EnemyStats struct {
	Name     string
	MinFloor int

	HP, HPPerFloor           int
	Attack, AttackPerFloor   int
	Defense, DefensePerFloor int
	XP, XPPerFloor           int
	Gold, GoldPerFloor       int

	// Flavor is shown when the enemy engages the player.
	Flavor string
}

var enemyTable = [enemyKindCount]EnemyStats{
	EnemyRat: {
		Name: "Giant Rat", MinFloor: 1,
		HP: 12, HPPerFloor: 3, Attack: 6, AttackPerFloor: 1, Defense: 0, DefensePerFloor: 0,
		XP: 8, XPPerFloor: 2, Gold: 2, GoldPerFloor: 1,
		Flavor: "A giant rat bares its yellow teeth.",
	},
	EnemySkeleton: {
		Name: "Skeleton", MinFloor: 1,
		HP: 20, HPPerFloor: 4, Attack: 8, AttackPerFloor: 2, Defense: 2, DefensePerFloor: 1,
		XP: 15, XPPerFloor: 4, Gold: 5, GoldPerFloor: 2,
		Flavor: "Bones rattle as a skeleton lurches forward.",
	},
	EnemyGoblin: {
		Name: "Goblin", MinFloor: 2,
		HP: 24, HPPerFloor: 5, Attack: 10, AttackPerFloor: 2, Defense: 3, DefensePerFloor: 1,
		XP: 20, XPPerFloor: 5, Gold: 10, GoldPerFloor: 3,
		Flavor: "A goblin cackles and raises a crude blade.",
	},
	EnemyOrc: {
		Name: "Orc Brute", MinFloor: 4,
		HP: 40, HPPerFloor: 7, Attack: 14, AttackPerFloor: 2, Defense: 5, DefensePerFloor: 1,
		XP: 35, XPPerFloor: 7, Gold: 15, GoldPerFloor: 4,
		Flavor: "An orc brute roars a challenge.",
	},
	EnemyWraith: {
		Name: "Wraith", MinFloor: 6,
		HP: 36, HPPerFloor: 6, Attack: 18, AttackPerFloor: 3, Defense: 4, DefensePerFloor: 1,
		XP: 50, XPPerFloor: 9, Gold: 20, GoldPerFloor: 5,
		Flavor: "The air turns cold as a wraith drifts closer.",
	},
	EnemyDemon: {
		Name: "Pit Demon", MinFloor: 8,
		HP: 70, HPPerFloor: 10, Attack: 22, AttackPerFloor: 3, Defense: 8, DefensePerFloor: 2,
		XP: 90, XPPerFloor: 12, Gold: 40, GoldPerFloor: 8,
		Flavor: "A pit demon rises from the smoke.",
	},
}

// Stats returns the table row for k.
func (k EnemyKind) Stats() EnemyStats {
	if k < 0 || k >= enemyKindCount {
		return enemyTable[EnemyRat]
	}
	return enemyTable[k]
}

// String returns the display name of the kind.
func (k EnemyKind) String() string {
	return k.Stats().Name
}

// Enemy is a live enemy occupying a tile.
type Enemy struct {
	Name    string
	Kind    EnemyKind
	HP      int
	MaxHP   int
	Attack  int
	Defense int
	XP      int
	Gold    int
}

// NewEnemy builds an enemy of kind k scaled to the given floor.
func NewEnemy(k EnemyKind, floor int) *Enemy {
	s := k.Stats()
	n := max(floor-1, 0)
	hp := s.HP + s.HPPerFloor*n
	return &Enemy{
		Name:    s.Name,
		Kind:    k,
		HP:      hp,
		MaxHP:   hp,
		Attack:  s.Attack + s.AttackPerFloor*n,
		Defense: s.Defense + s.DefensePerFloor*n,
		XP:      s.XP + s.XPPerFloor*n,
		Gold:    s.Gold + s.GoldPerFloor*n,
	}
}

// IsAlive reports whether the enemy has health left.
func (e *Enemy) IsAlive() bool {
	return e != nil && e.HP > 0
}

// TakeDamage reduces health, never below zero, and returns the damage dealt.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > e.HP {
		amount = e.HP
	}
	e.HP -= amount
	return amount
}

// KindsForFloor returns the archetypes that may appear on a floor.
func KindsForFloor(floor int) []EnemyKind {
	var kinds []EnemyKind
	for _, k := range EnemyKinds {
		if enemyTable[k].MinFloor <= floor {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// RandomEnemy picks an archetype available on floor and builds it.
func RandomEnemy(r *dice.Roller, floor int) *Enemy {
	kinds := KindsForFloor(floor)
	if len(kinds) == 0 {
		return NewEnemy(EnemyRat, floor)
	}
	return NewEnemy(kinds[r.Intn(len(kinds))], floor)
}
