package entity

import (
	"math/rand"
	"strings"
	"testing"

	"chosenoffset.com/deepdelve/internal/dice"
)

func TestNewEnemyScalesWithFloor(t *testing.T) {
	for _, k := range EnemyKinds {
		first := NewEnemy(k, 1)
		deep := NewEnemy(k, 5)
		if first.HP != first.MaxHP {
			t.Errorf("%v: new enemy should be at full health", k)
		}
		if deep.MaxHP <= first.MaxHP {
			t.Errorf("%v: floor 5 max HP %d should exceed floor 1 max HP %d", k, deep.MaxHP, first.MaxHP)
		}
		if deep.Attack < first.Attack || deep.XP <= first.XP {
			t.Errorf("%v: attack/xp should not shrink with depth", k)
		}
		if first.Name == "" {
			t.Errorf("%v: enemy should have a name", k)
		}
	}
}

func TestKindsForFloorUnlocksGradually(t *testing.T) {
	if got := len(KindsForFloor(1)); got != 2 {
		t.Errorf("expected 2 kinds on floor 1, got %d", got)
	}
	if got := len(KindsForFloor(10)); got != len(EnemyKinds) {
		t.Errorf("expected all %d kinds on floor 10, got %d", len(EnemyKinds), got)
	}
	for _, k := range KindsForFloor(3) {
		if k.Stats().MinFloor > 3 {
			t.Errorf("%v should not appear on floor 3", k)
		}
	}
}

func TestEnemyTakeDamageClamps(t *testing.T) {
	e := NewEnemy(EnemyRat, 1)
	dealt := e.TakeDamage(1000)
	if e.HP != 0 || e.IsAlive() {
		t.Errorf("expected dead enemy at 0 HP, got %d", e.HP)
	}
	if dealt != e.MaxHP {
		t.Errorf("expected %d effective damage, got %d", e.MaxHP, dealt)
	}
	if e.TakeDamage(-5) != 0 {
		t.Error("negative damage should be ignored")
	}
}

func TestNewWeaponNaming(t *testing.T) {
	w := NewWeapon(WeaponAxe, Rare, 1, SpecialBleed)
	if w.Name != "Fine Axe of Bleeding" {
		t.Errorf("unexpected name %q", w.Name)
	}
	if w.BaseDamage != 7+4 {
		t.Errorf("expected base damage 11, got %d", w.BaseDamage)
	}
	plain := NewWeapon(WeaponDagger, Common, 1, SpecialNone)
	if strings.Contains(plain.Name, "of") {
		t.Errorf("weapon without special should have no suffix: %q", plain.Name)
	}
}

func TestRollWeaponStaysInTables(t *testing.T) {
	r := dice.NewRoller(rand.New(rand.NewSource(7)))
	for i := 0; i < 200; i++ {
		w := RollWeapon(r, 1+i%10)
		if w.Rarity < Common || w.Rarity > Legendary {
			t.Fatalf("rarity out of range: %v", w.Rarity)
		}
		if w.CritChance < 0 || w.CritChance > 100 {
			t.Fatalf("crit chance out of range: %d", w.CritChance)
		}
		if w.CritMultiplier < 1 {
			t.Fatalf("crit multiplier below 1: %v", w.CritMultiplier)
		}
		if w.Rarity == Legendary && w.Special == SpecialNone {
			t.Fatalf("legendary weapons always roll a special: %+v", w)
		}
	}
}

func TestRollRarityIsMonotonicInFloor(t *testing.T) {
	// Same percentile roll on a deeper floor never lowers the tier.
	for roll := 0; roll < 100; roll += 7 {
		shallow := RollRarity(dice.NewRoller(&dice.Sequence{Ints: []int{roll}}), 1)
		deep := RollRarity(dice.NewRoller(&dice.Sequence{Ints: []int{roll}}), 10)
		if deep < shallow {
			t.Errorf("roll %d: floor 10 rarity %v below floor 1 rarity %v", roll, deep, shallow)
		}
	}
}
