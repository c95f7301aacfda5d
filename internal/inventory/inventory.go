// Package inventory provides the player's weapon roster.
// Weapons are kept in pickup order with exactly one equipped by index.
package inventory

import (
	"fmt"

	"chosenoffset.com/deepdelve/internal/entity"
)

// DefaultSlots matches the five weapon-select keys.
const DefaultSlots = 5

// Inventory holds the owned weapons
type Inventory struct {
	Weapons  []entity.Weapon
	Equipped int

	// MaxSlots limits roster size (0 = unlimited)
	MaxSlots int

	// OnEquip is called with the newly equipped weapon (for HUD messages)
	OnEquip func(w entity.Weapon)
}

// AddResult describes what happened to a picked-up weapon.
type AddResult struct {
	Added    bool
	Index    int
	Replaced *entity.Weapon
}

// New creates a roster holding only the starter weapon, equipped
func New(maxSlots int) *Inventory {
	return &Inventory{
		Weapons:  []entity.Weapon{entity.StarterWeapon()},
		MaxSlots: maxSlots,
	}
}

// Current returns the equipped weapon.
func (inv *Inventory) Current() entity.Weapon {
	if inv.Equipped < 0 || inv.Equipped >= len(inv.Weapons) {
		return entity.StarterWeapon()
	}
	return inv.Weapons[inv.Equipped]
}

// Count returns the number of owned weapons
func (inv *Inventory) Count() int {
	return len(inv.Weapons)
}

// IsFull returns true if the roster cannot grow
func (inv *Inventory) IsFull() bool {
	return inv.MaxSlots > 0 && len(inv.Weapons) >= inv.MaxSlots
}

// Add appends a weapon. A full roster swaps out its weakest unequipped weapon
// when w hits harder, and otherwise leaves w behind.
func (inv *Inventory) Add(w entity.Weapon) AddResult {
	if !inv.IsFull() {
		inv.Weapons = append(inv.Weapons, w)
		return AddResult{Added: true, Index: len(inv.Weapons) - 1}
	}

	weakest := -1
	for i, owned := range inv.Weapons {
		if i == inv.Equipped {
			continue
		}
		if weakest < 0 || Power(owned) < Power(inv.Weapons[weakest]) {
			weakest = i
		}
	}
	if weakest < 0 || Power(w) <= Power(inv.Weapons[weakest]) {
		return AddResult{Index: -1}
	}

	old := inv.Weapons[weakest]
	inv.Weapons[weakest] = w
	return AddResult{Added: true, Index: weakest, Replaced: &old}
}

// Equip selects the weapon at index i. Out-of-range indices are ignored.
func (inv *Inventory) Equip(i int) bool {
	if i < 0 || i >= len(inv.Weapons) || i == inv.Equipped {
		return false
	}
	inv.Equipped = i
	inv.notifyEquip()
	return true
}

// Power is the flat damage a weapon adds before variance and crits.
func Power(w entity.Weapon) int {
	return w.BaseDamage + w.AttackBonus
}

// Debug returns a string representation of the inventory
func (inv *Inventory) Debug() string {
	return fmt.Sprintf("Inventory{%d weapons, equipped %q}", len(inv.Weapons), inv.Current().Name)
}

// notifyEquip calls the OnEquip callback if set
func (inv *Inventory) notifyEquip() {
	if inv.OnEquip != nil {
		inv.OnEquip(inv.Current())
	}
}
