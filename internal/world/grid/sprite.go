package grid

// SpriteKind identifies an interactive or decorative sprite.
type SpriteKind int

const (
	SpriteStairs SpriteKind = iota
	SpriteChest
	SpriteTrap
	SpriteShrine
	SpriteTorch
	SpritePillar

	spriteKindCount
)

// SpriteKinds lists every sprite kind.
var SpriteKinds = []SpriteKind{SpriteStairs, SpriteChest, SpriteTrap, SpriteShrine, SpriteTorch, SpritePillar}

type spriteInfo struct {
	name   string
	scale  float64
	blocks bool
}

var spriteTable = [spriteKindCount]spriteInfo{
	SpriteStairs: {name: "stairs", scale: 0.9},
	SpriteChest:  {name: "chest", scale: 0.55},
	SpriteTrap:   {name: "trap", scale: 0.35},
	SpriteShrine: {name: "shrine", scale: 0.8},
	SpriteTorch:  {name: "torch", scale: 0.7},
	SpritePillar: {name: "pillar", scale: 1.0, blocks: true},
}

func (k SpriteKind) info() spriteInfo {
	if k < 0 || k >= spriteKindCount {
		return spriteTable[SpriteTorch]
	}
	return spriteTable[k]
}

// String returns the lowercase sprite name.
func (k SpriteKind) String() string { return k.info().name }

// Scale is the projected size relative to a full wall height.
func (k SpriteKind) Scale() float64 { return k.info().scale }

// Blocks reports whether the sprite stops movement.
func (k SpriteKind) Blocks() bool { return k.info().blocks }

// Sprite is a world object drawn as a billboard. Position is continuous,
// centred on its tile by convention.
type Sprite struct {
	X, Y float64
	Kind SpriteKind
}
