package tile

// edgeState tracks all 8 border fingerprints through symmetry
// transforms, so orientation search can run on fingerprints alone and
// the backing array is only rewritten once a match is found.
type edgeState struct {
	top, topRev       uint32
	bottom, bottomRev uint32
	left, leftRev     uint32
	right, rightRev   uint32
}

func (t *Tile) edgeState() edgeState {
	last := t.size - 1
	return edgeState{
		top: t.rowFwd(0), topRev: t.rowRev(0),
		bottom: t.rowFwd(last), bottomRev: t.rowRev(last),
		left: t.colFwd(0), leftRev: t.colRev(0),
		right: t.colFwd(last), rightRev: t.colRev(last),
	}
}

// rotateRight returns the fingerprints after a 90-degree clockwise
// rotation: the old left border, read bottom to top, becomes the new
// top, and so on around the square.
func (e edgeState) rotateRight() edgeState {
	return edgeState{
		top: e.leftRev, topRev: e.left,
		bottom: e.rightRev, bottomRev: e.right,
		left: e.bottom, leftRev: e.bottomRev,
		right: e.top, rightRev: e.topRev,
	}
}

// flipHorizontal returns the fingerprints after mirroring across the
// vertical axis: left and right swap, top and bottom reverse.
func (e edgeState) flipHorizontal() edgeState {
	return edgeState{
		top: e.topRev, topRev: e.top,
		bottom: e.bottomRev, bottomRev: e.bottom,
		left: e.right, leftRev: e.rightRev,
		right: e.left, rightRev: e.leftRev,
	}
}

// Orient searches the tile's 8 dihedral orientations, starting from
// the current one, for the first whose borders satisfy the
// constraints. On success the tile's cells are rewritten in the
// matching orientation and Orient returns true; on failure the tile is
// left untouched.
func (t *Tile) Orient(c Constraints) bool {
	base := t.edgeState()
	for k := 0; k < 8; k++ {
		rotations, flipped := k%4, k >= 4
		e := base
		for i := 0; i < rotations; i++ {
			e = e.rotateRight()
		}
		if flipped {
			e = e.flipHorizontal()
		}
		if c.match(e) {
			for i := 0; i < rotations; i++ {
				t.RotateRight()
			}
			if flipped {
				t.FlipHorizontal()
			}
			return true
		}
	}
	return false
}
