package reorder

// Point is a pointer position in host coordinates (cells or pixels).
type Point struct {
	X, Y int
}

// Rect is an axis-aligned bounding box. X and Y are the top-left corner;
// the box spans [X, X+Width] by [Y, Y+Height], edges included.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether p lies within r. Containment is inclusive on
// all four edges, so a point exactly on a boundary belongs to the box.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}
