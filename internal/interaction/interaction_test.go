package interaction

import (
	"testing"

	"chosenoffset.com/deepdelve/internal/character"
	"chosenoffset.com/deepdelve/internal/core/geom"
	"chosenoffset.com/deepdelve/internal/dice"
	"chosenoffset.com/deepdelve/internal/inventory"
	"chosenoffset.com/deepdelve/internal/world/grid"
)

type messages []string

func (m *messages) Add(text string) { *m = append(*m, text) }

var spot = geom.Coord{X: 2, Y: 1}

func setup(kind grid.SpriteKind, floor int, rolls ...int) (*System, Context, *messages) {
	w := grid.New(5, 3)
	for x := 1; x <= 3; x++ {
		w.Set(x, 1, grid.Floor)
	}
	w.PlaceSprite(spot, kind)
	log := &messages{}
	s := New(DefaultConfig(), dice.NewRoller(&dice.Sequence{Ints: rolls}), log)
	ctx := Context{
		Player: character.New(character.DefaultConfig()),
		Roster: inventory.New(inventory.DefaultSlots),
		World:  w,
		Floor:  floor,
	}
	return s, ctx, log
}

func TestStairsDescendOrWin(t *testing.T) {
	tests := []struct {
		floor int
		want  Outcome
	}{
		{1, OutcomeDescend},
		{9, OutcomeDescend},
		{10, OutcomeVictory},
	}
	for _, tt := range tests {
		s, ctx, _ := setup(grid.SpriteStairs, tt.floor)
		res := s.Trigger(TriggerInteract, spot, ctx)
		if res.Outcome != tt.want {
			t.Errorf("floor %d: expected outcome %v, got %v", tt.floor, tt.want, res.Outcome)
		}
	}
}

func TestStairsIgnoreEnter(t *testing.T) {
	s, ctx, log := setup(grid.SpriteStairs, 1)
	if res := s.Trigger(TriggerEnter, spot, ctx); res.Triggered {
		t.Error("stepping onto stairs should not descend")
	}
	if len(*log) != 1 {
		t.Errorf("stepping onto stairs should describe them, got %v", *log)
	}
}

func TestChestOpensOnce(t *testing.T) {
	// gold index 0 -> 5, then 99 fails the weapon roll
	s, ctx, _ := setup(grid.SpriteChest, 2, 0, 99)
	res := s.Trigger(TriggerInteract, spot, ctx)
	if !res.Triggered || res.Gold != 15 || ctx.Player.Gold != 15 {
		t.Fatalf("expected 5 + 5*2 gold, got %+v", res)
	}
	if res.Loot != nil {
		t.Error("failed weapon roll should not drop loot")
	}
	if !ctx.World.OpenedChests.Has(spot) {
		t.Error("chest should be marked opened")
	}
	if s.HasInteract(spot, ctx.World) {
		t.Error("opened chest should no longer offer an interaction")
	}
	if res := s.Trigger(TriggerInteract, spot, ctx); res.Triggered || ctx.Player.Gold != 15 {
		t.Error("second open must not pay out again")
	}
}

func TestChestWeaponDrop(t *testing.T) {
	s, ctx, _ := setup(grid.SpriteChest, 1, 0, 0)
	res := s.Trigger(TriggerInteract, spot, ctx)
	if res.Loot == nil || ctx.Roster.Count() != 2 {
		t.Errorf("expected a weapon in the roster, got %+v", res)
	}
}

func TestShrineRestoresOnce(t *testing.T) {
	s, ctx, _ := setup(grid.SpriteShrine, 1)
	ctx.Player.HP = 10
	ctx.Player.Mana = 0
	s.Trigger(TriggerInteract, spot, ctx)
	if ctx.Player.HP != ctx.Player.MaxHP || ctx.Player.Mana != ctx.Player.MaxMana {
		t.Fatal("shrine should fully restore")
	}
	ctx.Player.HP = 10
	s.Trigger(TriggerInteract, spot, ctx)
	if ctx.Player.HP != 10 {
		t.Error("a used shrine must not heal again")
	}
}

func TestTrapFiresEveryStep(t *testing.T) {
	// each 1d6 roll of index 2 is a 3
	s, ctx, _ := setup(grid.SpriteTrap, 4, 2, 2)
	for i := 0; i < 2; i++ {
		res := s.Trigger(TriggerEnter, spot, ctx)
		if res.Damage != 7 {
			t.Fatalf("step %d: expected 3 + 4 damage, got %d", i, res.Damage)
		}
	}
	if ctx.Player.HP != 86 {
		t.Errorf("expected 86 HP after two traps, got %d", ctx.Player.HP)
	}
	if res := s.Trigger(TriggerInteract, spot, ctx); res.Triggered {
		t.Error("traps do not react to the interact key")
	}
}

func TestTrapCanKill(t *testing.T) {
	s, ctx, _ := setup(grid.SpriteTrap, 1, 5)
	ctx.Player.HP = 3
	if res := s.Trigger(TriggerEnter, spot, ctx); !res.PlayerDied {
		t.Error("a lethal trap should report the death")
	}
}

func TestDecorationsDoNothing(t *testing.T) {
	s, ctx, _ := setup(grid.SpriteTorch, 1)
	if res := s.Trigger(TriggerInteract, spot, ctx); res.Triggered {
		t.Error("torches have no interaction")
	}
	if res := s.Trigger(TriggerEnter, geom.Coord{X: 1, Y: 1}, ctx); res.Triggered {
		t.Error("empty tiles have no interaction")
	}
}

func TestRuleTriggers(t *testing.T) {
	tests := []struct {
		kind    grid.SpriteKind
		ok      bool
		trigger TriggerType
	}{
		{grid.SpriteStairs, true, TriggerInteract},
		{grid.SpriteChest, true, TriggerInteract},
		{grid.SpriteShrine, true, TriggerInteract},
		{grid.SpriteTrap, true, TriggerEnter},
		{grid.SpriteTorch, false, ""},
		{grid.SpritePillar, false, ""},
	}
	for _, tt := range tests {
		rule, ok := Rule(tt.kind)
		if ok != tt.ok || rule.Trigger != tt.trigger {
			t.Errorf("Rule(%v) expected %v/%q, got %v/%q", tt.kind, tt.ok, tt.trigger, ok, rule.Trigger)
		}
	}
}
