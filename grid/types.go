// Package grid defines the geometry substrate shared by every other package in
// this module: points, directions, tiles and the static Map. Nothing here
// mutates after construction; agents and targets live in package world.
package grid

import "errors"

// Sentinel errors for grid construction and lookup.
var (
	// ErrEmptyMap indicates the input has zero rows or zero columns.
	ErrEmptyMap = errors.New("grid: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBorderNotWall indicates a border cell was Free; borders must be Wall.
	ErrBorderNotWall = errors.New("grid: map border must consist of Wall tiles")
	// ErrOutOfBounds indicates a Point lies outside the map's dimensions.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrNotNeighbors indicates DirectionBetween was called on points farther than one step apart.
	ErrNotNeighbors = errors.New("grid: points are not adjacent")
)

// Point is a 0-indexed grid coordinate. Invariant: within map bounds when used
// as a tile location. Axis orientation: y is the row index as written in the
// map file (row 0 is y=0), so South increases y and North decreases it — the
// same sense as screen/terminal row order (see DESIGN.md).
type Point struct {
	X, Y int
}

// Add returns p shifted by the unit step of Direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the L1 distance between p and q.
func (p Point) Manhattan(q Point) int {
	return absInt(p.X-q.X) + absInt(p.Y-q.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the six oracle/move symbols. Unreachable is a sentinel
// used only inside the oracle; it must never appear in an emitted move.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	Stay
	Unreachable
)

// cardinal lists the four movement directions in the fixed deterministic
// expansion order used by BFS, the oracle and the planner's edge insertion.
var cardinal = [4]Direction{North, East, South, West}

// Cardinals returns the four axis directions in their fixed traversal order.
func Cardinals() [4]Direction { return cardinal }

// Delta returns the (dx,dy) unit offset of d. Stay and Unreachable are (0,0).
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse of a cardinal direction; Stay and Unreachable
// map to themselves.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case Stay:
		return "Stay"
	default:
		return "Unreachable"
	}
}

// Tile is the static content of a grid cell.
type Tile int

const (
	Wall Tile = iota
	Free
)
