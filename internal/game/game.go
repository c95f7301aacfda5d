package game

import (
	"fmt"
	"log"
	"math"

	"chosenoffset.com/deepdelve/internal/camera"
	"chosenoffset.com/deepdelve/internal/character"
	"chosenoffset.com/deepdelve/internal/combat"
	"chosenoffset.com/deepdelve/internal/core/geom"
	"chosenoffset.com/deepdelve/internal/dice"
	"chosenoffset.com/deepdelve/internal/entity"
	"chosenoffset.com/deepdelve/internal/input"
	"chosenoffset.com/deepdelve/internal/interaction"
	"chosenoffset.com/deepdelve/internal/inventory"
	"chosenoffset.com/deepdelve/internal/render/lighting"
	"chosenoffset.com/deepdelve/internal/render/raycast"
	"chosenoffset.com/deepdelve/internal/simulation"
	"chosenoffset.com/deepdelve/internal/texture"
	"chosenoffset.com/deepdelve/internal/world/grid"
	"chosenoffset.com/deepdelve/internal/world/maze"
)

const (
	// hitKick is the pitch added when the player takes damage.
	hitKick = 0.035
	// shakeAmplitude and shakeFrequency shape the horizon jitter after a hit.
	shakeAmplitude = 0.012
	shakeFrequency = 70.0
	// MinimapRadius is the half-size of the minimap window in tiles.
	MinimapRadius = 6
)

// GameState is the whole mutable state of a run. Update owns it; the
// renderer only sees the View it returns.
type GameState struct {
	Config *simulation.Config
	Phase  Phase
	Floor  int
	Stairs geom.Coord

	World    *grid.World
	Camera   *camera.Camera
	Player   *character.Player
	Roster   *inventory.Inventory
	Combat   *combat.System
	Features *interaction.System
	Lighting *lighting.Manager
	Log      *MessageLog

	// Elapsed is simulated seconds since the run began.
	Elapsed float64

	generator *maze.Generator
	roller    *dice.Roller
}

// NewGameState starts a run on floor 1. A nil roller is seeded from the
// configured world seed.
func NewGameState(config *simulation.Config, roller *dice.Roller) *GameState {
	if config == nil {
		config = simulation.DefaultConfig()
	}
	if roller == nil {
		roller = dice.NewSeeded(config.World.Seed)
	}

	g := &GameState{
		Config:    config,
		Player:    character.New(config.Player),
		Roster:    inventory.New(config.Inventory.Slots),
		Lighting:  lighting.NewManager(config.Lighting),
		Log:       NewMessageLog(config.Inventory.MessageLines),
		generator: maze.NewGenerator(config.World),
		roller:    roller,
	}
	g.Roster.OnEquip = func(w entity.Weapon) {
		g.Log.Add(fmt.Sprintf("You ready the %s.", w.Name))
	}
	g.Combat = combat.New(config.Combat, roller, g.Log)
	g.Features = interaction.New(config.Interaction, roller, g.Log)

	g.LoadFloor(g.generator.Generate(1))
	g.Log.Add("You wake in the dark. Find the stairs.")
	return g
}

// LoadFloor replaces the current floor with a generated one.
func (g *GameState) LoadFloor(res *maze.Result) {
	g.World = res.World
	g.Floor = res.Floor
	g.Stairs = res.Stairs

	if g.Camera == nil {
		g.Camera = camera.New(g.Config.Movement, res.Spawn, res.Facing)
	} else {
		g.Camera.Place(res.Spawn, res.Facing)
	}
	g.World.Explore(res.Spawn, 1)
	g.Combat.Disengage()

	g.Lighting.ClearLights()
	for _, s := range g.World.Sprites {
		if s.Kind == grid.SpriteTorch {
			g.Lighting.AddTorch(s.X, s.Y)
		}
	}

	log.Printf("Floor %d: %dx%d, %d/%d features, %d/%d enemies, %d decorations",
		res.Floor, g.World.Width, g.World.Height,
		res.FeaturesPlaced, res.FeaturesWanted, res.EnemiesPlaced, res.EnemiesWanted, res.Decorations)
}

func (g *GameState) encounter() combat.Encounter {
	return combat.Encounter{
		Player: g.Player,
		Roster: g.Roster,
		World:  g.World,
		Pos:    g.Camera.Pos,
		Facing: g.Camera.Facing,
		Floor:  g.Floor,
	}
}

func (g *GameState) context() interaction.Context {
	return interaction.Context{Player: g.Player, Roster: g.Roster, World: g.World, Floor: g.Floor}
}

func (g *GameState) playing() bool {
	return g.Phase == PhasePlaying
}

// Update advances the run by dt seconds under the given input.
func (g *GameState) Update(dt float64, in input.Oracle) {
	if !g.playing() {
		return
	}
	g.Elapsed += dt
	g.Camera.Update(dt)
	g.Lighting.Update(dt)

	g.selectWeapon(in)
	g.move(in)
	if !g.playing() {
		return
	}

	g.absorbCombat(g.Combat.Update(dt, g.encounter()))
	if !g.playing() {
		return
	}

	// Each action is read separately so a held attack never swallows a press.
	if in.Pressed(input.Interact) {
		g.interact()
	}
	if g.playing() && in.Held(input.Attack) {
		g.absorbCombat(g.Combat.Attack(g.encounter()))
	}
	if g.playing() && in.Pressed(input.Defend) {
		g.Combat.Defend(g.encounter())
	}
	if g.playing() && in.Pressed(input.Heal) {
		g.Combat.Heal(g.encounter())
	}
}

func (g *GameState) selectWeapon(in input.Oracle) {
	for i, a := range input.WeaponActions {
		if in.Pressed(a) {
			g.Roster.Equip(i)
			return
		}
	}
}

// move applies at most one discrete movement or turn.
func (g *GameState) move(in input.Oracle) {
	c := g.Camera
	if !c.Ready() {
		return
	}

	var res camera.MoveResult
	switch {
	case in.Held(input.MoveForward):
		res = c.MoveForward(g.World)
	case in.Held(input.MoveBack):
		res = c.MoveBack(g.World)
	case in.Held(input.StrafeLeft):
		res = c.StrafeLeft(g.World)
	case in.Held(input.StrafeRight):
		res = c.StrafeRight(g.World)
	case in.Held(input.TurnLeft):
		c.TurnLeft()
		return
	case in.Held(input.TurnRight):
		c.TurnRight()
		return
	default:
		return
	}

	switch res.Outcome {
	case camera.Bumped:
		g.Combat.Engage(res.Enemy, res.Target)
	case camera.Moved:
		g.World.Explore(c.Pos, 1)
		g.absorbFeature(g.Features.Trigger(interaction.TriggerEnter, c.Pos, g.context()))
	}
}

// interact uses whatever is in front, then whatever is underfoot.
func (g *GameState) interact() {
	ahead := g.Camera.Ahead()
	if e := g.World.EnemyAt(ahead); e != nil {
		g.Combat.Engage(e, ahead)
		return
	}

	var at geom.Coord
	switch {
	case g.Features.HasInteract(ahead, g.World):
		at = ahead
	case g.World.SpriteAt(g.Camera.Pos) != nil:
		at = g.Camera.Pos
	case g.World.SpriteAt(ahead) != nil:
		at = ahead
	default:
		g.Log.Add("There is nothing here.")
		return
	}
	g.absorbFeature(g.Features.Trigger(interaction.TriggerInteract, at, g.context()))
}

func (g *GameState) absorbCombat(res combat.Result) {
	if res.Taken > 0 {
		g.Camera.Kick(hitKick)
	}
	if res.PlayerDied {
		g.end(PhaseGameOver)
	}
}

func (g *GameState) absorbFeature(res interaction.Result) {
	if !res.Triggered {
		return
	}
	if res.Damage > 0 {
		g.Camera.Kick(hitKick)
		g.Combat.DamageFlash.Reset()
	}
	switch {
	case res.PlayerDied:
		g.end(PhaseGameOver)
	case res.Outcome == interaction.OutcomeVictory:
		g.end(PhaseVictory)
	case res.Outcome == interaction.OutcomeDescend:
		g.Descend()
	}
}

// Descend generates and enters the next floor.
func (g *GameState) Descend() {
	g.LoadFloor(g.generator.Generate(g.Floor + 1))
}

func (g *GameState) end(p Phase) {
	g.Phase = p
	g.Combat.Disengage()
	log.Printf("Run ended: %s on floor %d at level %d with %d gold", p, g.Floor, g.Player.Level, g.Player.Gold)
}

// shake is the horizon jitter while the screen-shake timer runs.
func (g *GameState) shake() float64 {
	f := g.Combat.Shake.Fraction()
	if f == 0 {
		return 0
	}
	return f * shakeAmplitude * math.Sin(g.Elapsed*shakeFrequency)
}

// View returns the read-only frame description for the raycaster.
func (g *GameState) View(textures texture.Provider) raycast.View {
	w := g.Roster.Current()
	return raycast.View{
		World:       g.World,
		Eye:         raycast.EyeFrom(g.Camera, g.shake()),
		Textures:    textures,
		Light:       g.Lighting,
		FlashEnemy:  g.Combat.Enemy,
		Flash:       g.Combat.HitFlash.Fraction(),
		DamageFlash: g.Combat.DamageFlash.Fraction(),
		Weapon:      &w,
		Swing:       g.Combat.Cooldown.Fraction(),
		Bob:         g.Camera.BobOffset(),
	}
}

// HUDState is what the status overlay shows.
type HUDState struct {
	Phase Phase
	Floor int

	HP, MaxHP     int
	Mana, MaxMana int
	Level         int
	XP, XPNext    int
	Gold          int
	Defending     bool

	Weapon   entity.Weapon
	Equipped int
	Weapons  []entity.Weapon

	// Enemy is the engaged enemy, or nil.
	Enemy *entity.Enemy

	Messages []string
	Hint     string
	Explored [][]bool
	Minimap  [][]grid.Cell
}

// HUD snapshots the overlay state.
func (g *GameState) HUD() HUDState {
	p := g.Player
	h := HUDState{
		Phase:     g.Phase,
		Floor:     g.Floor,
		HP:        p.HP,
		MaxHP:     p.MaxHP,
		Mana:      p.Mana,
		MaxMana:   p.MaxMana,
		Level:     p.Level,
		XP:        p.XP,
		XPNext:    p.XPNext,
		Gold:      p.Gold,
		Defending: p.Defending,
		Weapon:    g.Roster.Current(),
		Equipped:  g.Roster.Equipped,
		Weapons:   append([]entity.Weapon(nil), g.Roster.Weapons...),
		Messages:  g.Log.Lines(),
		Explored:  g.World.Explored,
		Minimap:   g.World.Minimap(g.Camera.Pos, MinimapRadius),
	}
	if g.Combat.InCombat() {
		h.Enemy = g.Combat.Enemy
	}
	h.Hint = g.hint()
	return h
}

func (g *GameState) hint() string {
	ahead := g.Camera.Ahead()
	if e := g.World.EnemyAt(ahead); e != nil && !g.Combat.InCombat() {
		return fmt.Sprintf("[F] engage the %s", e.Name)
	}
	if g.Features.HasInteract(ahead, g.World) {
		return fmt.Sprintf("[F] use the %s", g.World.SpriteAt(ahead).Kind)
	}
	if s := g.World.SpriteAt(g.Camera.Pos); s != nil && g.Features.HasInteract(g.Camera.Pos, g.World) {
		return fmt.Sprintf("[F] use the %s", s.Kind)
	}
	return ""
}
