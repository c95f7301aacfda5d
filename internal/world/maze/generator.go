// Package maze generates dungeon floors: a connected maze carved into a
// walled grid, then populated with stairs, features, decorations and enemies.
package maze

import (
	"chosenoffset.com/deepdelve/internal/core/geom"
	"chosenoffset.com/deepdelve/internal/dice"
	"chosenoffset.com/deepdelve/internal/entity"
	"chosenoffset.com/deepdelve/internal/world/grid"
)

// Config holds configuration for floor generation
type Config struct {
	Width  int   `json:"width"`  // Grid width in tiles (0 = grid.DefaultSize)
	Height int   `json:"height"` // Grid height in tiles (0 = grid.DefaultSize)
	Seed   int64 `json:"seed"`   // Random seed (0 = fresh seed every floor)

	FeatureAttempts    int     `json:"feature_attempts"`    // Rejection-sampling budget per feature
	EnemyAttempts      int     `json:"enemy_attempts"`      // Rejection-sampling budget per enemy
	DecorationAttempts int     `json:"decoration_attempts"` // Rejection-sampling budget per torch or pillar
	MaxPillars         int     `json:"max_pillars"`
	MinEnemyDistance   float64 `json:"min_enemy_distance"` // Enemies spawn strictly farther than this from the spawn tile
}

// DefaultConfig returns the standard floor layout rules.
func DefaultConfig() Config {
	return Config{
		Width:              grid.DefaultSize,
		Height:             grid.DefaultSize,
		FeatureAttempts:    50,
		EnemyAttempts:      100,
		DecorationAttempts: 30,
		MaxPillars:         2,
		MinEnemyDistance:   3,
	}
}

// Result is a generated, populated floor.
type Result struct {
	World  *grid.World
	Floor  int
	Spawn  geom.Coord
	Facing geom.Direction
	Stairs geom.Coord

	FeaturesWanted, FeaturesPlaced int
	EnemiesWanted, EnemiesPlaced   int
	Decorations                    int
}

// MinSize is the smallest world edge that still leaves a carved interior
// around the spawn.
const MinSize = 5

// Generator handles procedural floor generation
type Generator struct {
	config Config
}

// NewGenerator creates a new floor generator
func NewGenerator(config Config) *Generator {
	def := DefaultConfig()
	if config.Width <= 0 {
		config.Width = def.Width
	}
	if config.Height <= 0 {
		config.Height = def.Height
	}
	config.Width = max(config.Width, MinSize)
	config.Height = max(config.Height, MinSize)
	if config.FeatureAttempts <= 0 {
		config.FeatureAttempts = def.FeatureAttempts
	}
	if config.EnemyAttempts <= 0 {
		config.EnemyAttempts = def.EnemyAttempts
	}
	if config.DecorationAttempts <= 0 {
		config.DecorationAttempts = def.DecorationAttempts
	}
	return &Generator{config: config}
}

// Config returns the effective configuration.
func (g *Generator) Config() Config {
	return g.config
}

// rollerFor returns the random source for one floor. A fixed seed is mixed
// with the floor number so every floor of a seeded run differs.
func (g *Generator) rollerFor(floor int) *dice.Roller {
	if g.config.Seed == 0 {
		return dice.NewSeeded(0)
	}
	return dice.NewSeeded(g.config.Seed + int64(floor)*7919)
}

// Generate creates a new floor.
func (g *Generator) Generate(floor int) *Result {
	return g.GenerateWith(floor, g.rollerFor(floor))
}

// GenerateWith creates a new floor drawing all randomness from r.
func (g *Generator) GenerateWith(floor int, r *dice.Roller) *Result {
	floor = max(floor, 1)
	w := grid.New(g.config.Width, g.config.Height)
	spawn := geom.Coord{X: 1, Y: 1}

	carve(w, spawn, r)
	addLoops(w, r)

	res := &Result{
		World:  w,
		Floor:  floor,
		Spawn:  spawn,
		Facing: openFacing(w, spawn),
	}

	res.Stairs = farthestFloor(w, spawn)
	w.PlaceSprite(res.Stairs, grid.SpriteStairs)

	res.FeaturesWanted = 5 + 2*floor
	res.FeaturesPlaced = g.placeFeatures(w, spawn, res.FeaturesWanted, r)

	res.EnemiesWanted = 3 + 2*floor
	res.EnemiesPlaced = g.placeEnemies(w, spawn, floor, res.EnemiesWanted, r)

	res.Decorations = g.placeDecorations(w, spawn, floor, r)

	w.Explore(spawn, 1)
	return res
}

// carve runs a randomized depth-first growing tree from start. Every carved
// cell joins the tree through its intermediate cell, so the result is one
// connected component.
func carve(w *grid.World, start geom.Coord, r *dice.Roller) {
	w.Set(start.X, start.Y, grid.Floor)
	stack := []geom.Coord{start}
	candidates := make([]geom.Coord, 0, 4)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range geom.Directions {
			dx, dy := d.Offset()
			n := cur.Add(dx*2, dy*2)
			if interior(w, n) && w.At(n.X, n.Y) == grid.Wall {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[r.Intn(len(candidates))]
		w.Set((cur.X+next.X)/2, (cur.Y+next.Y)/2, grid.Floor)
		w.Set(next.X, next.Y, grid.Floor)
		stack = append(stack, next)
	}
}

// addLoops opens walls that already touch two floor tiles, turning the tree
// into a graph with cycles. Opening a wall only adds edges.
func addLoops(w *grid.World, r *dice.Roller) {
	samples := (w.Width * w.Height) / 20
	for i := 0; i < samples; i++ {
		c := randomInterior(w, r)
		if w.At(c.X, c.Y) == grid.Wall && w.FloorNeighbours(c.X, c.Y) >= 2 {
			w.Set(c.X, c.Y, grid.Floor)
		}
	}
}

// farthestFloor scans every Floor tile for the largest Manhattan distance.
func farthestFloor(w *grid.World, from geom.Coord) geom.Coord {
	best, bestDist := from, -1
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			if !w.IsFloor(x, y) {
				continue
			}
			c := geom.Coord{X: x, Y: y}
			if d := geom.Manhattan(from, c); d > bestDist {
				best, bestDist = c, d
			}
		}
	}
	return best
}

func (g *Generator) placeFeatures(w *grid.World, spawn geom.Coord, count int, r *dice.Roller) int {
	placed := 0
	for i := 0; i < count; i++ {
		c, ok := g.sample(w, r, g.config.FeatureAttempts, func(c geom.Coord) bool {
			return c != spawn && !w.Occupied(c)
		})
		if !ok {
			continue
		}
		if w.PlaceSprite(c, rollFeature(r)) {
			placed++
		}
	}
	return placed
}

// rollFeature splits features 40% chest, 30% trap, 30% shrine.
func rollFeature(r *dice.Roller) grid.SpriteKind {
	roll := r.Percent()
	switch {
	case roll < 40:
		return grid.SpriteChest
	case roll < 70:
		return grid.SpriteTrap
	default:
		return grid.SpriteShrine
	}
}

func (g *Generator) placeEnemies(w *grid.World, spawn geom.Coord, floor, count int, r *dice.Roller) int {
	placed := 0
	for i := 0; i < count; i++ {
		c, ok := g.sample(w, r, g.config.EnemyAttempts, func(c geom.Coord) bool {
			return !w.Occupied(c) && geom.Euclidean(c, spawn) > g.config.MinEnemyDistance
		})
		if !ok {
			continue
		}
		if w.PlaceEnemy(c, entity.RandomEnemy(r, floor)) {
			placed++
		}
	}
	return placed
}

// placeDecorations adds wall torches and dead-end pillars. A pillar on a dead
// end never separates two other floor tiles.
func (g *Generator) placeDecorations(w *grid.World, spawn geom.Coord, floor int, r *dice.Roller) int {
	placed := 0
	torches := 2 + floor/2
	for i := 0; i < torches; i++ {
		c, ok := g.sample(w, r, g.config.DecorationAttempts, func(c geom.Coord) bool {
			return c != spawn && !w.Occupied(c) && w.FloorNeighbours(c.X, c.Y) < 4
		})
		if ok && w.PlaceSprite(c, grid.SpriteTorch) {
			placed++
		}
	}
	for i := 0; i < g.config.MaxPillars; i++ {
		c, ok := g.sample(w, r, g.config.DecorationAttempts, func(c geom.Coord) bool {
			return geom.Manhattan(c, spawn) > 1 && !w.Occupied(c) && w.FloorNeighbours(c.X, c.Y) == 1
		})
		if ok && w.PlaceSprite(c, grid.SpritePillar) {
			placed++
		}
	}
	return placed
}

// sample draws random interior Floor tiles until accept passes or the attempt
// budget runs out.
func (g *Generator) sample(w *grid.World, r *dice.Roller, attempts int, accept func(geom.Coord) bool) (geom.Coord, bool) {
	for i := 0; i < attempts; i++ {
		c := randomInterior(w, r)
		if w.IsFloor(c.X, c.Y) && accept(c) {
			return c, true
		}
	}
	return geom.Coord{}, false
}

func randomInterior(w *grid.World, r *dice.Roller) geom.Coord {
	return geom.Coord{
		X: 1 + r.Intn(max(w.Width-2, 1)),
		Y: 1 + r.Intn(max(w.Height-2, 1)),
	}
}

func interior(w *grid.World, c geom.Coord) bool {
	return c.X > 0 && c.Y > 0 && c.X < w.Width-1 && c.Y < w.Height-1
}

// openFacing picks the first direction from spawn that looks down a corridor.
func openFacing(w *grid.World, c geom.Coord) geom.Direction {
	for _, d := range geom.Directions {
		n := c.Step(d)
		if w.IsFloor(n.X, n.Y) {
			return d
		}
	}
	return geom.East
}
