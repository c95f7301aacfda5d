package inventory

import (
	"testing"

	"chosenoffset.com/deepdelve/internal/entity"
)

func TestNewEquipsStarter(t *testing.T) {
	inv := New(DefaultSlots)
	if inv.Count() != 1 || inv.Current().Name != "Rusty Sword" {
		t.Fatalf("expected only the starter equipped, got %s", inv.Debug())
	}
}

func TestAddAndEquip(t *testing.T) {
	inv := New(DefaultSlots)
	var equipped []string
	inv.OnEquip = func(w entity.Weapon) { equipped = append(equipped, w.Name) }

	axe := entity.NewWeapon(entity.WeaponAxe, entity.Rare, 1, entity.SpecialBleed)
	res := inv.Add(axe)
	if !res.Added || res.Index != 1 {
		t.Fatalf("expected axe in slot 1, got %+v", res)
	}
	if inv.Current().Name == axe.Name {
		t.Error("adding a weapon must not change the equipped one")
	}
	if !inv.Equip(1) || inv.Current().Name != axe.Name {
		t.Errorf("expected %q equipped, got %q", axe.Name, inv.Current().Name)
	}
	if inv.Equip(7) {
		t.Error("equipping an empty slot should be ignored")
	}
	if len(equipped) != 1 || equipped[0] != axe.Name {
		t.Errorf("expected one equip notification for %q, got %v", axe.Name, equipped)
	}
}

func TestFullRosterKeepsStrongest(t *testing.T) {
	inv := New(2)
	dagger := entity.NewWeapon(entity.WeaponDagger, entity.Common, 1, entity.SpecialNone)
	inv.Add(dagger)
	if !inv.IsFull() {
		t.Fatal("roster of two should be full")
	}

	weak := entity.NewWeapon(entity.WeaponDagger, entity.Common, 1, entity.SpecialNone)
	if res := inv.Add(weak); res.Added {
		t.Error("an equal weapon should not replace anything")
	}

	mace := entity.NewWeapon(entity.WeaponMace, entity.Epic, 3, entity.SpecialNone)
	res := inv.Add(mace)
	if !res.Added || res.Replaced == nil || res.Replaced.Name != dagger.Name {
		t.Fatalf("expected the mace to replace the dagger, got %+v", res)
	}
	if inv.Weapons[0].Name != "Rusty Sword" {
		t.Error("the equipped weapon must never be replaced")
	}
}
