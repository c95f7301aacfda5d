package geom

// Direction is one of the four grid facings. Values rotate clockwise.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists all facings in clockwise order.
var Directions = [4]Direction{North, East, South, West}

// Offset returns the unit grid step for d. Y grows southward.
func (d Direction) Offset() (dx, dy int) {
	switch d.normalize() {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Vector returns the unit direction vector used by the renderer.
func (d Direction) Vector() (x, y float64) {
	dx, dy := d.Offset()
	return float64(dx), float64(dy)
}

// Plane returns the camera-plane vector perpendicular to d, pointing to the
// viewer's right, scaled by fov.
func (d Direction) Plane(fov float64) (x, y float64) {
	dx, dy := d.Vector()
	return -dy * fov, dx * fov
}

// Right returns the facing after a clockwise quarter turn.
func (d Direction) Right() Direction {
	return (d.normalize() + 1) % 4
}

// Left returns the facing after a counter-clockwise quarter turn.
func (d Direction) Left() Direction {
	return (d.normalize() + 3) % 4
}

// Opposite returns the reverse facing.
func (d Direction) Opposite() Direction {
	return (d.normalize() + 2) % 4
}

func (d Direction) normalize() Direction {
	return ((d % 4) + 4) % 4
}

// String returns a lowercase compass name.
func (d Direction) String() string {
	switch d.normalize() {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "west"
	}
}
