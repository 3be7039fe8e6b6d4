package gridhash

import "iter"

// RadiusSeq streams candidate ids overlapping the square of side radius*2
// anchored at position. Each id is yielded exactly once, flag bit masked off.
func (g *grid) RadiusSeq(entityID uint32, position Position, radius float32) iter.Seq[uint32] {
	return g.regionSeq(entityID, position, radius*2, radius*2)
}

// RectSeq streams candidate ids overlapping [x, x+width) x [y, y+height).
func (g *grid) RectSeq(entityID uint32, position Position, width, height float32) iter.Seq[uint32] {
	return g.regionSeq(entityID, position, width, height)
}

func (g *grid) regionSeq(entityID uint32, position Position, extentX, extentY float32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		sx, sy, ex, ey, ideal := g.cellRange(position, extentX, extentY)

		// There cannot be duplicates when the stored entity occupies a single
		// cell, or when the probe itself visits a single cell. Only ids that
		// straddle cells inside a multi-cell probe need the seen list.
		var seen []uint32
		for y := sy; y <= ey; y++ {
			for x := sx; x <= ex; x++ {
				for _, p := range *g.grid.Vector(x, y) {
					id := p.id()
					if id == entityID {
						continue
					}
					if p.ideal() || ideal {
						if !yield(id) {
							return
						}
						continue
					}
					if containsID(seen, id) {
						continue
					}
					seen = append(seen, id)
					if !yield(id) {
						return
					}
				}
			}
		}
	}
}

func containsID(ids []uint32, id uint32) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
