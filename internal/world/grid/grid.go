// Package grid holds the tile world of one dungeon floor: the binary tile
// grid, the explored bitmap used by the minimap, and the per-tile enemy and
// sprite occupancy maps.
package grid

import (
	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/deepdelve/internal/core/geom"
	"chosenoffset.com/deepdelve/internal/entity"
)

// Tile is the binary passability of a grid cell.
type Tile uint8

const (
	Wall Tile = iota
	Floor
)

// DefaultSize is the edge length of a generated floor.
const DefaultSize = 24

// World holds the tile grid and occupancy for one floor.
type World struct {
	Width, Height int
	Tiles         [][]Tile
	Explored      [][]bool

	Enemies map[geom.Coord]*entity.Enemy
	Sprites map[geom.Coord]*Sprite

	OpenedChests mapset.Set[geom.Coord]
	UsedShrines  mapset.Set[geom.Coord]
}

// New creates a World filled with walls.
func New(width, height int) *World {
	tiles := make([][]Tile, height)
	explored := make([][]bool, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		explored[y] = make([]bool, width)
	}
	return &World{
		Width:        width,
		Height:       height,
		Tiles:        tiles,
		Explored:     explored,
		Enemies:      make(map[geom.Coord]*entity.Enemy),
		Sprites:      make(map[geom.Coord]*Sprite),
		OpenedChests: mapset.New[geom.Coord](),
		UsedShrines:  mapset.New[geom.Coord](),
	}
}

// InBounds reports whether (x, y) is within the grid.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// At returns the tile at (x, y); out-of-bounds reads as Wall.
func (w *World) At(x, y int) Tile {
	if !w.InBounds(x, y) {
		return Wall
	}
	return w.Tiles[y][x]
}

// Set replaces the tile at (x, y). Out-of-bounds writes are ignored.
func (w *World) Set(x, y int, t Tile) {
	if !w.InBounds(x, y) {
		return
	}
	w.Tiles[y][x] = t
}

// IsFloor reports whether (x, y) is an in-bounds Floor tile.
func (w *World) IsFloor(x, y int) bool {
	return w.At(x, y) == Floor
}

// IsSolid reports whether a ray or mover is blocked at (x, y).
func (w *World) IsSolid(x, y int) bool {
	return w.At(x, y) != Floor
}

// IsBorder reports whether (x, y) lies on the outer ring.
func (w *World) IsBorder(x, y int) bool {
	return x == 0 || y == 0 || x == w.Width-1 || y == w.Height-1
}

// FloorNeighbours counts the Floor tiles among the 4 orthogonal neighbours.
func (w *World) FloorNeighbours(x, y int) int {
	n := 0
	for _, d := range geom.Directions {
		dx, dy := d.Offset()
		if w.IsFloor(x+dx, y+dy) {
			n++
		}
	}
	return n
}

// Passable reports whether the player may step onto c: an in-bounds Floor tile
// with no enemy and no blocking sprite.
func (w *World) Passable(c geom.Coord) bool {
	if !w.IsFloor(c.X, c.Y) {
		return false
	}
	if _, ok := w.Enemies[c]; ok {
		return false
	}
	if s, ok := w.Sprites[c]; ok && s.Kind.Blocks() {
		return false
	}
	return true
}

// Occupied reports whether c already holds an enemy or a sprite.
func (w *World) Occupied(c geom.Coord) bool {
	if _, ok := w.Enemies[c]; ok {
		return true
	}
	_, ok := w.Sprites[c]
	return ok
}

// EnemyAt returns the enemy on c, or nil.
func (w *World) EnemyAt(c geom.Coord) *entity.Enemy {
	return w.Enemies[c]
}

// SpriteAt returns the sprite on c, or nil.
func (w *World) SpriteAt(c geom.Coord) *Sprite {
	return w.Sprites[c]
}

// PlaceEnemy puts e on c. It refuses occupied or non-Floor tiles.
func (w *World) PlaceEnemy(c geom.Coord, e *entity.Enemy) bool {
	if e == nil || !w.IsFloor(c.X, c.Y) {
		return false
	}
	if _, ok := w.Enemies[c]; ok {
		return false
	}
	w.Enemies[c] = e
	return true
}

// RemoveEnemy clears the enemy on c.
func (w *World) RemoveEnemy(c geom.Coord) {
	delete(w.Enemies, c)
}

// PlaceSprite puts a sprite of kind k at the centre of c. It refuses occupied
// or non-Floor tiles.
func (w *World) PlaceSprite(c geom.Coord, k SpriteKind) bool {
	if !w.IsFloor(c.X, c.Y) {
		return false
	}
	if _, ok := w.Sprites[c]; ok {
		return false
	}
	center := c.Center()
	w.Sprites[c] = &Sprite{X: center.X, Y: center.Y, Kind: k}
	return true
}

// Explore marks every in-bounds tile within Chebyshev radius of c as explored.
func (w *World) Explore(c geom.Coord, radius int) {
	for y := c.Y - radius; y <= c.Y+radius; y++ {
		for x := c.X - radius; x <= c.X+radius; x++ {
			if w.InBounds(x, y) {
				w.Explored[y][x] = true
			}
		}
	}
}

// IsExplored reports whether (x, y) has been seen.
func (w *World) IsExplored(x, y int) bool {
	return w.InBounds(x, y) && w.Explored[y][x]
}

// FloorCount returns the number of Floor tiles.
func (w *World) FloorCount() int {
	n := 0
	for y := range w.Tiles {
		for _, t := range w.Tiles[y] {
			if t == Floor {
				n++
			}
		}
	}
	return n
}

// Reachable flood-fills Floor tiles 4-directionally from start.
func (w *World) Reachable(start geom.Coord) mapset.Set[geom.Coord] {
	visited := mapset.New[geom.Coord]()
	if !w.IsFloor(start.X, start.Y) {
		return visited
	}
	stack := []geom.Coord{start}
	visited.Put(start)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range geom.Directions {
			n := cur.Step(d)
			if w.IsFloor(n.X, n.Y) && !visited.Has(n) {
				visited.Put(n)
				stack = append(stack, n)
			}
		}
	}
	return visited
}
