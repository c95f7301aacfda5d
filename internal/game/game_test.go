package game

import (
	"errors"
	"testing"

	"chosenoffset.com/deepdelve/internal/core/geom"
	"chosenoffset.com/deepdelve/internal/dice"
	"chosenoffset.com/deepdelve/internal/entity"
	"chosenoffset.com/deepdelve/internal/input"
	"chosenoffset.com/deepdelve/internal/render"
	"chosenoffset.com/deepdelve/internal/simulation"
	"chosenoffset.com/deepdelve/internal/world/grid"
	"chosenoffset.com/deepdelve/internal/world/maze"
)

const tick = 1.0 / 60

func testConfig() *simulation.Config {
	cfg := simulation.DefaultConfig()
	cfg.World.Seed = 99
	return cfg
}

func newTestState() *GameState {
	return NewGameState(testConfig(), dice.NewSeeded(5))
}

// corridor loads a 5-tile east-west corridor with the player at its west end
// facing east.
func corridor(g *GameState, floor int) *grid.World {
	w := grid.New(7, 5)
	for x := 1; x <= 5; x++ {
		w.Set(x, 2, grid.Floor)
	}
	g.LoadFloor(&maze.Result{World: w, Floor: floor, Spawn: geom.Coord{X: 1, Y: 2}, Facing: geom.East})
	return w
}

func step(g *GameState, in *input.State) {
	g.Update(tick, in)
	in.EndTick()
}

func TestNewGameStateStartsOnFloorOne(t *testing.T) {
	g := newTestState()
	if g.Floor != 1 || g.Phase != PhasePlaying {
		t.Fatalf("expected playing on floor 1, got %s on %d", g.Phase, g.Floor)
	}
	if g.Camera.Pos != (geom.Coord{X: 1, Y: 1}) {
		t.Errorf("expected spawn (1,1), got %v", g.Camera.Pos)
	}
	if !g.World.IsExplored(1, 1) {
		t.Error("spawn should be explored")
	}
	if g.Log.Len() == 0 {
		t.Error("expected an opening message")
	}
}

func TestStairsBeyondFinalFloorIsVictory(t *testing.T) {
	g := newTestState()
	w := corridor(g, 10)
	w.PlaceSprite(geom.Coord{X: 2, Y: 2}, grid.SpriteStairs)

	step(g, input.NewState().Press(input.Interact))

	if g.Phase != PhaseVictory {
		t.Errorf("expected victory, got %s", g.Phase)
	}
}

func TestStairsDescend(t *testing.T) {
	g := newTestState()
	w := corridor(g, 1)
	w.PlaceSprite(geom.Coord{X: 2, Y: 2}, grid.SpriteStairs)

	step(g, input.NewState().Press(input.Interact))

	if g.Phase != PhasePlaying {
		t.Fatalf("expected to keep playing, got %s", g.Phase)
	}
	if g.Floor != 2 {
		t.Errorf("expected floor 2, got %d", g.Floor)
	}
	if g.World == w {
		t.Error("descending should replace the world")
	}
	if g.Camera.Pos != (geom.Coord{X: 1, Y: 1}) {
		t.Errorf("expected the new spawn, got %v", g.Camera.Pos)
	}
}

func TestBumpEngagesWithoutMoving(t *testing.T) {
	g := newTestState()
	w := corridor(g, 1)
	rat := entity.NewEnemy(entity.EnemyRat, 1)
	w.PlaceEnemy(geom.Coord{X: 2, Y: 2}, rat)

	step(g, input.NewState().Hold(input.MoveForward))

	if !g.Combat.InCombat() || g.Combat.Enemy != rat {
		t.Fatal("bumping an enemy should engage it")
	}
	if g.Camera.Pos != (geom.Coord{X: 1, Y: 2}) {
		t.Errorf("player should stay put, got %v", g.Camera.Pos)
	}
	if rat.HP != rat.MaxHP {
		t.Error("a bump is not an attack")
	}
	if g.HUD().Enemy != rat {
		t.Error("HUD should show the engaged enemy")
	}
}

func TestInteractFacingEnemyEngages(t *testing.T) {
	g := newTestState()
	w := corridor(g, 1)
	rat := entity.NewEnemy(entity.EnemyRat, 1)
	w.PlaceEnemy(geom.Coord{X: 2, Y: 2}, rat)

	if g.HUD().Enemy != nil {
		t.Fatal("HUD should show no enemy before combat")
	}
	step(g, input.NewState().Press(input.Interact))

	if g.Combat.Enemy != rat {
		t.Error("interacting with an enemy should engage it")
	}
	if rat.HP != rat.MaxHP {
		t.Error("interacting is not an attack")
	}
}

func TestAttackKillsAndRewards(t *testing.T) {
	g := newTestState()
	w := corridor(g, 1)
	dummy := &entity.Enemy{Name: "Dummy", HP: 1, MaxHP: 1, XP: 5, Gold: 3}
	w.PlaceEnemy(geom.Coord{X: 2, Y: 2}, dummy)

	step(g, input.NewState().Hold(input.Attack))

	if dummy.IsAlive() {
		t.Fatal("a 1 HP enemy should die to one swing")
	}
	if w.EnemyAt(geom.Coord{X: 2, Y: 2}) != nil {
		t.Error("dead enemy should leave the grid")
	}
	if g.Player.XP != 5 || g.Player.Gold != 3 {
		t.Errorf("expected 5 XP and 3 gold, got %d XP and %d gold", g.Player.XP, g.Player.Gold)
	}
	if g.Combat.InCombat() {
		t.Error("combat should end with the kill")
	}
}

func TestHeldAttackKeepsDefendAndHeal(t *testing.T) {
	g := newTestState()
	w := corridor(g, 1)
	golem := &entity.Enemy{Name: "Golem", HP: 100000, MaxHP: 100000, Attack: 1}
	w.PlaceEnemy(geom.Coord{X: 2, Y: 2}, golem)

	in := input.NewState().Hold(input.Attack)
	step(g, in)
	if g.Combat.Enemy != golem {
		t.Fatal("holding attack should engage the enemy ahead")
	}

	g.Player.HP = 50
	mana := g.Player.Mana
	step(g, in.Press(input.Defend, input.Heal))

	if !g.Player.Defending {
		t.Error("defend should register while attack is held")
	}
	if g.Player.HP <= 50 {
		t.Errorf("heal should register while attack is held, HP %d", g.Player.HP)
	}
	if g.Player.Mana != mana-g.Combat.Config().HealCost {
		t.Errorf("expected heal to spend %d mana, have %d of %d", g.Combat.Config().HealCost, g.Player.Mana, mana)
	}
}

func TestSteppingOnTrapHurts(t *testing.T) {
	g := newTestState()
	w := corridor(g, 1)
	w.PlaceSprite(geom.Coord{X: 2, Y: 2}, grid.SpriteTrap)

	step(g, input.NewState().Hold(input.MoveForward))

	if g.Camera.Pos != (geom.Coord{X: 2, Y: 2}) {
		t.Fatalf("expected to step onto the trap, at %v", g.Camera.Pos)
	}
	if g.Player.HP >= g.Player.MaxHP {
		t.Error("trap should deal damage")
	}
	if g.Camera.Pitch == 0 {
		t.Error("taking damage should kick the view")
	}
}

func TestDeathEndsRun(t *testing.T) {
	g := newTestState()
	w := corridor(g, 1)
	w.PlaceSprite(geom.Coord{X: 2, Y: 2}, grid.SpriteTrap)
	g.Player.HP = 1

	step(g, input.NewState().Hold(input.MoveForward))

	if g.Phase != PhaseGameOver {
		t.Fatalf("expected game over, got %s", g.Phase)
	}
	hp := g.Player.HP
	step(g, input.NewState().Hold(input.MoveBack))
	if g.Camera.Pos != (geom.Coord{X: 2, Y: 2}) || g.Player.HP != hp {
		t.Error("a finished run should ignore input")
	}
}

func TestWeaponSelect(t *testing.T) {
	g := newTestState()
	g.Roster.Add(entity.NewWeapon(entity.WeaponAxe, entity.Rare, 1, entity.SpecialNone))

	step(g, input.NewState().Press(input.Weapon2))

	if g.Roster.Equipped != 1 {
		t.Fatalf("expected slot 2 equipped, got index %d", g.Roster.Equipped)
	}
	if last := g.Log.Last(); last != "You ready the "+g.Roster.Current().Name+"." {
		t.Errorf("expected a ready message, got %q", last)
	}
	if got := g.View(nil).Weapon.Kind; got != entity.WeaponAxe {
		t.Errorf("view should carry the equipped weapon, got %v", got)
	}

	step(g, input.NewState().Press(input.Weapon5))
	if g.Roster.Equipped != 1 {
		t.Error("selecting an empty slot should keep the current weapon")
	}
}

func TestMessageLogKeepsNewest(t *testing.T) {
	l := NewMessageLog(8)
	for i := 0; i < 10; i++ {
		l.Add(string(rune('a' + i)))
	}
	l.Add("")

	lines := l.Lines()
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d", len(lines))
	}
	if lines[0] != "c" || lines[7] != "j" {
		t.Errorf("expected c..j oldest first, got %v", lines)
	}
	if l.Last() != "j" {
		t.Errorf("expected last j, got %q", l.Last())
	}
}

type fixedClock float64

func (c fixedClock) DeltaSeconds() float64 { return float64(c) }

func TestManagerQuitAndRestart(t *testing.T) {
	in := input.NewState()
	m := NewManager(testConfig(), nil, in, fixedClock(tick), nil)

	if err := m.Update(); err != nil {
		t.Fatalf("plain tick should not fail: %v", err)
	}

	first := m.State
	first.Phase = PhaseGameOver
	in.Press(input.Restart)
	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	in.EndTick()
	if m.State == first || m.State.Phase != PhasePlaying || m.State.Floor != 1 {
		t.Error("restart should begin a fresh run on floor 1")
	}

	in.Press(input.Quit)
	if err := m.Update(); !errors.Is(err, render.ErrQuit) {
		t.Errorf("expected ErrQuit, got %v", err)
	}
}

func TestManagerLayoutIsFixed(t *testing.T) {
	m := NewManager(testConfig(), nil, input.NewState(), fixedClock(tick), nil)
	w, h := m.Layout(1920, 1080)
	if w != 640 || h != 400 {
		t.Errorf("expected 640x400, got %dx%d", w, h)
	}
}
