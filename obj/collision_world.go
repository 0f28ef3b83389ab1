package obj

import "github.com/jakecoffman/cp"

// Obstacle is a solid, axis-aligned rectangle in world pixels.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

// BB returns the obstacle as a chipmunk bounding box. Screen space grows
// downward, so B holds the top edge and T the bottom edge.
func (o Obstacle) BB() cp.BB {
	return rectBB(o.X, o.Y, o.Width, o.Height)
}

func rectBB(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// CollisionWorld is the immutable set of obstacles built from a level's
// collision grid.
type CollisionWorld struct {
	obstacles []Obstacle
	boxes     []cp.BB
	bounds    cp.BB
}

// NewCollisionWorld creates one tileSize square obstacle per grid cell whose
// marker is 1, in row-major order. Other markers are ignored.
func NewCollisionWorld(grid [][]int, tileSize float64) *CollisionWorld {
	cw := &CollisionWorld{}
	for row, cells := range grid {
		for col, marker := range cells {
			if marker != 1 {
				continue
			}
			o := Obstacle{
				X:      float64(col) * tileSize,
				Y:      float64(row) * tileSize,
				Width:  tileSize,
				Height: tileSize,
			}
			bb := o.BB()
			if len(cw.obstacles) == 0 {
				cw.bounds = bb
			} else {
				cw.bounds = cw.bounds.Merge(bb)
			}
			cw.obstacles = append(cw.obstacles, o)
			cw.boxes = append(cw.boxes, bb)
		}
	}
	return cw
}

// Obstacles returns the obstacles in construction order. Callers must not
// modify the returned slice.
func (cw *CollisionWorld) Obstacles() []Obstacle {
	if cw == nil {
		return nil
	}
	return cw.obstacles
}

// Len returns the number of obstacles.
func (cw *CollisionWorld) Len() int {
	if cw == nil {
		return 0
	}
	return len(cw.obstacles)
}

// First returns the index of the first obstacle overlapping the rectangle,
// or -1. Touching edges count as overlap.
func (cw *CollisionWorld) First(x, y, w, h float64) int {
	if cw == nil || len(cw.boxes) == 0 {
		return -1
	}
	bb := rectBB(x, y, w, h)
	if !cw.bounds.Intersects(bb) {
		return -1
	}
	for i, box := range cw.boxes {
		if box.Intersects(bb) {
			return i
		}
	}
	return -1
}
