package tile

// Constraints fixes some of a tile's border fingerprints for
// orientation search. Unset borders are wildcards. Values apply to the
// forward reading of each border: left and right top to bottom, top
// and bottom left to right.
type Constraints struct {
	left, top, right, bottom             uint32
	hasLeft, hasTop, hasRight, hasBottom bool
}

// Left fixes only the left border.
func Left(v uint32) Constraints {
	return Constraints{left: v, hasLeft: true}
}

// Top fixes only the top border.
func Top(v uint32) Constraints {
	return Constraints{top: v, hasTop: true}
}

// Right fixes only the right border.
func Right(v uint32) Constraints {
	return Constraints{right: v, hasRight: true}
}

// Bottom fixes only the bottom border.
func Bottom(v uint32) Constraints {
	return Constraints{bottom: v, hasBottom: true}
}

// AndLeft returns a copy with the left border also fixed.
func (c Constraints) AndLeft(v uint32) Constraints {
	c.left, c.hasLeft = v, true
	return c
}

// AndTop returns a copy with the top border also fixed.
func (c Constraints) AndTop(v uint32) Constraints {
	c.top, c.hasTop = v, true
	return c
}

// AndRight returns a copy with the right border also fixed.
func (c Constraints) AndRight(v uint32) Constraints {
	c.right, c.hasRight = v, true
	return c
}

// AndBottom returns a copy with the bottom border also fixed.
func (c Constraints) AndBottom(v uint32) Constraints {
	c.bottom, c.hasBottom = v, true
	return c
}

// Empty reports whether no border is fixed.
func (c Constraints) Empty() bool {
	return !c.hasLeft && !c.hasTop && !c.hasRight && !c.hasBottom
}

// match reports whether an orientation's forward border fingerprints
// satisfy every fixed border.
func (c Constraints) match(e edgeState) bool {
	if c.hasLeft && e.left != c.left {
		return false
	}
	if c.hasTop && e.top != c.top {
		return false
	}
	if c.hasRight && e.right != c.right {
		return false
	}
	if c.hasBottom && e.bottom != c.bottom {
		return false
	}
	return true
}
