package shell

// Region is an additive union of rectangles in display points: the damage
// accumulated between two paints. Rects may overlap; the public contract is
// only that the union of Rects() equals the union of everything added.
type Region struct {
	rects []Rect
}

// AddRect adds a rectangle to the region. Empty rects are ignored.
func (rg *Region) AddRect(r Rect) {
	if r.IsEmpty() {
		return
	}
	// Skip rects already covered by an existing one, and drop existing
	// rects swallowed by the new one. Keeps the list short without doing
	// full rectangle decomposition.
	keep := rg.rects[:0]
	for _, have := range rg.rects {
		if containsRect(have, r) {
			return
		}
		if !containsRect(r, have) {
			keep = append(keep, have)
		}
	}
	rg.rects = append(keep, r)
}

// UnionWith adds every rectangle of other into the region.
func (rg *Region) UnionWith(other *Region) {
	for _, r := range other.rects {
		rg.AddRect(r)
	}
}

// Rects returns the region's rectangles. The slice is owned by the region
// and must not be retained past the next mutation.
func (rg *Region) Rects() []Rect {
	return rg.rects
}

// IsEmpty returns true if no paint is owed.
func (rg *Region) IsEmpty() bool {
	return len(rg.rects) == 0
}

// Clear empties the region.
func (rg *Region) Clear() {
	rg.rects = rg.rects[:0]
}

// BoundingBox returns the smallest rectangle covering the whole region.
func (rg *Region) BoundingBox() Rect {
	var out Rect
	for _, r := range rg.rects {
		out = out.Union(r)
	}
	return out
}

// Clone returns an independent copy of the region.
func (rg *Region) Clone() Region {
	out := Region{rects: make([]Rect, len(rg.rects))}
	copy(out.rects, rg.rects)
	return out
}

// Contains reports whether the point is inside any rect of the region.
func (rg *Region) Contains(p Point) bool {
	for _, r := range rg.rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

func containsRect(outer, inner Rect) bool {
	return outer.X0 <= inner.X0 && outer.Y0 <= inner.Y0 &&
		outer.X1 >= inner.X1 && outer.Y1 >= inner.Y1
}
