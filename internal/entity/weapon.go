package entity

import (
	"fmt"

	"chosenoffset.com/deepdelve/internal/dice"
)

// WeaponKind identifies a weapon archetype.
type WeaponKind int

const (
	WeaponSword WeaponKind = iota
	WeaponAxe
	WeaponDagger
	WeaponMace
	WeaponSpear

	weaponKindCount
)

// WeaponKinds lists every weapon archetype.
var WeaponKinds = []WeaponKind{WeaponSword, WeaponAxe, WeaponDagger, WeaponMace, WeaponSpear}

// Rarity is the loot tier of a weapon.
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Epic
	Legendary

	rarityCount
)

// Special is an optional on-hit effect.
type Special string

const (
	SpecialNone      Special = ""
	SpecialBleed     Special = "bleed"
	SpecialLifesteal Special = "lifesteal"
)

type weaponStats struct {
	noun           string
	baseDamage     int
	attackBonus    int
	critChance     int
	critMultiplier float64
	// preferred is the special this archetype rolls when it rolls one.
	preferred Special
}

var weaponTable = [weaponKindCount]weaponStats{
	WeaponSword:  {noun: "Sword", baseDamage: 5, attackBonus: 1, critChance: 8, critMultiplier: 1.5, preferred: SpecialLifesteal},
	WeaponAxe:    {noun: "Axe", baseDamage: 7, attackBonus: 0, critChance: 6, critMultiplier: 1.75, preferred: SpecialBleed},
	WeaponDagger: {noun: "Dagger", baseDamage: 3, attackBonus: 2, critChance: 20, critMultiplier: 2.0, preferred: SpecialBleed},
	WeaponMace:   {noun: "Mace", baseDamage: 8, attackBonus: -1, critChance: 5, critMultiplier: 1.5, preferred: SpecialLifesteal},
	WeaponSpear:  {noun: "Spear", baseDamage: 6, attackBonus: 1, critChance: 10, critMultiplier: 1.5, preferred: SpecialBleed},
}

type rarityStats struct {
	name string
	// bonus is added to base damage; critBonus to crit chance.
	bonus         int
	critBonus     int
	specialChance int
}

var rarityTable = [rarityCount]rarityStats{
	Common:    {name: "Worn", bonus: 0, critBonus: 0, specialChance: 0},
	Uncommon:  {name: "Sturdy", bonus: 2, critBonus: 2, specialChance: 10},
	Rare:      {name: "Fine", bonus: 4, critBonus: 4, specialChance: 35},
	Epic:      {name: "Masterwork", bonus: 7, critBonus: 6, specialChance: 65},
	Legendary: {name: "Mythic", bonus: 11, critBonus: 10, specialChance: 100},
}

// String returns the rarity display adjective.
func (r Rarity) String() string {
	if r < 0 || r >= rarityCount {
		return rarityTable[Common].name
	}
	return rarityTable[r].name
}

// String returns the weapon archetype noun.
func (k WeaponKind) String() string {
	if k < 0 || k >= weaponKindCount {
		return weaponTable[WeaponSword].noun
	}
	return weaponTable[k].noun
}

var specialSuffix = map[Special]string{
	SpecialBleed:     "of Bleeding",
	SpecialLifesteal: "of Leeching",
}

// Weapon is immutable after creation.
type Weapon struct {
	Name           string
	Kind           WeaponKind
	Rarity         Rarity
	BaseDamage     int
	AttackBonus    int
	CritChance     int
	CritMultiplier float64
	Special        Special
}

// StarterWeapon returns the weapon every run begins with.
func StarterWeapon() Weapon {
	return Weapon{
		Name:           "Rusty Sword",
		Kind:           WeaponSword,
		Rarity:         Common,
		BaseDamage:     5,
		AttackBonus:    0,
		CritChance:     5,
		CritMultiplier: 1.5,
	}
}

// NewWeapon builds a weapon from the tables.
func NewWeapon(k WeaponKind, rarity Rarity, floor int, special Special) Weapon {
	if k < 0 || k >= weaponKindCount {
		k = WeaponSword
	}
	if rarity < 0 || rarity >= rarityCount {
		rarity = Common
	}
	ws := weaponTable[k]
	rs := rarityTable[rarity]

	name := fmt.Sprintf("%s %s", rs.name, ws.noun)
	if suffix, ok := specialSuffix[special]; ok {
		name += " " + suffix
	}

	return Weapon{
		Name:           name,
		Kind:           k,
		Rarity:         rarity,
		BaseDamage:     ws.baseDamage + rs.bonus + max(floor-1, 0),
		AttackBonus:    ws.attackBonus + int(rarity),
		CritChance:     min(ws.critChance+rs.critBonus, 100),
		CritMultiplier: ws.critMultiplier,
		Special:        special,
	}
}

// RollRarity picks a rarity; deeper floors shift the odds upward.
func RollRarity(r *dice.Roller, floor int) Rarity {
	roll := r.Percent() + floor*3
	switch {
	case roll >= 112:
		return Legendary
	case roll >= 95:
		return Epic
	case roll >= 75:
		return Rare
	case roll >= 45:
		return Uncommon
	default:
		return Common
	}
}

// RollWeapon generates random loot for a floor.
func RollWeapon(r *dice.Roller, floor int) Weapon {
	k := WeaponKinds[r.Intn(len(WeaponKinds))]
	rarity := RollRarity(r, floor)
	special := SpecialNone
	if r.Chance(rarityTable[rarity].specialChance) {
		special = weaponTable[k].preferred
	}
	return NewWeapon(k, rarity, floor, special)
}
