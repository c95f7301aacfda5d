package grid

import "chosenoffset.com/deepdelve/internal/core/geom"

// Cell is the minimap classification of one tile.
type Cell uint8

const (
	CellUnexplored Cell = iota
	CellWall
	CellFloor
	CellPlayer
	CellEnemy
	CellStairs
	CellChest
	CellOpenedChest
	CellTrap
	CellShrine
	CellUsedShrine
	CellDecoration
)

// Classify returns the minimap class of (x, y) for a player standing at p.
// Unexplored tiles hide their content.
func (w *World) Classify(x, y int, p geom.Coord) Cell {
	c := geom.Coord{X: x, Y: y}
	if c == p {
		return CellPlayer
	}
	if !w.IsExplored(x, y) {
		return CellUnexplored
	}
	if w.At(x, y) == Wall {
		return CellWall
	}
	if _, ok := w.Enemies[c]; ok {
		return CellEnemy
	}
	if s, ok := w.Sprites[c]; ok {
		switch s.Kind {
		case SpriteStairs:
			return CellStairs
		case SpriteChest:
			if w.OpenedChests.Has(c) {
				return CellOpenedChest
			}
			return CellChest
		case SpriteTrap:
			return CellTrap
		case SpriteShrine:
			if w.UsedShrines.Has(c) {
				return CellUsedShrine
			}
			return CellShrine
		default:
			return CellDecoration
		}
	}
	return CellFloor
}

// Minimap classifies every tile in the window of the given radius around p.
// Rows are indexed [dy+radius][dx+radius]; tiles outside the grid classify
// as unexplored.
func (w *World) Minimap(p geom.Coord, radius int) [][]Cell {
	size := radius*2 + 1
	out := make([][]Cell, size)
	for row := 0; row < size; row++ {
		out[row] = make([]Cell, size)
		for col := 0; col < size; col++ {
			x, y := p.X+col-radius, p.Y+row-radius
			if !w.InBounds(x, y) {
				continue
			}
			out[row][col] = w.Classify(x, y, p)
		}
	}
	return out
}
