package gridhash

import (
	iter_util "github.com/TheBitDrifter/util/iter"
)

var _ Grid = &grid{}

// bucket holds the packed ids recorded in one cell, in insertion order. An
// entity spanning n cells appears once in each of those n buckets.
type bucket []packedID

type cell struct {
	x, y uint32
}

type grid struct {
	grid  *FixedTable[bucket]
	maps  *FixedTable[[]cell]
	shift uint32
}

func newGrid(size int, shift uint32) (Grid, error) {
	if shift < 1 || shift > 31 {
		return nil, ShiftRangeError{Shift: shift}
	}
	cells, err := newFixedTable[bucket](size)
	if err != nil {
		return nil, err
	}
	maps, err := newFixedTable[[]cell](size)
	if err != nil {
		return nil, err
	}
	return &grid{
		grid:  cells,
		maps:  maps,
		shift: shift,
	}, nil
}

// Count returns the capacity of the internal tables.
func (g *grid) Count() int {
	return g.grid.Count()
}

// cellRange returns the inclusive cell bounds of the box
// [x, x+extentX) x [y, y+extentY), and whether the box lies within a single
// cell. The position is the min corner of the box, not its center.
func (g *grid) cellRange(position Position, extentX, extentY float32) (sx, sy, ex, ey uint32, ideal bool) {
	sx = uint32(position.X) >> g.shift
	sy = uint32(position.Y) >> g.shift
	ex = uint32(position.X+extentX) >> g.shift
	ey = uint32(position.Y+extentY) >> g.shift
	ideal = sx == ex && sy == ey
	return sx, sy, ex, ey, ideal
}

// Insert records id in every cell its bounding box overlaps. The box has
// side radius*2 and is anchored at position. Inserting an id that is already
// present corrupts its occupancy record; callers must Delete first.
func (g *grid) Insert(id uint32, position Position, radius float32) error {
	if id > MaxEntityID {
		return IDRangeError{ID: id}
	}
	sx, sy, ex, ey, ideal := g.cellRange(position, radius*2, radius*2)

	occupied := g.maps.Scalar(id)
	packed := pack(id, ideal)
	for y := sy; y <= ey; y++ {
		for x := sx; x <= ex; x++ {
			b := g.grid.Vector(x, y)
			*occupied = append(*occupied, cell{x: x, y: y})
			*b = append(*b, packed)
		}
	}
	return nil
}

// Delete removes id from every cell in its occupancy record. A record that
// points at a bucket no longer holding the id means the grid was corrupted
// (double insert, or map-slot aliasing past capacity) and panics with
// MissingEntityError. An id with no record is a no-op.
func (g *grid) Delete(id uint32) {
	occupied := g.maps.Scalar(id)
	for _, c := range *occupied {
		b := g.grid.Vector(c.x, c.y)
		i := indexOf(*b, id)
		if i < 0 {
			panic(MissingEntityError{ID: id, CellX: c.x, CellY: c.y})
		}
		*b = append((*b)[:i], (*b)[i+1:]...)
	}
	*occupied = (*occupied)[:0]
}

// Reinsert relocates an entity whose cell membership may have changed. It
// always pays the full Delete+Insert cost, even when membership is unchanged.
func (g *grid) Reinsert(id uint32, position Position, radius float32) error {
	g.Delete(id)
	return g.Insert(id, position, radius)
}

// QueryRadius returns candidate ids overlapping the square of side radius*2
// anchored at position. Each id appears exactly once; order follows bucket
// iteration and callers must treat it as unordered.
func (g *grid) QueryRadius(entityID uint32, position Position, radius float32) []uint32 {
	return iter_util.Collect(g.RadiusSeq(entityID, position, radius))
}

// QueryRect returns candidate ids overlapping
// [x, x+width) x [y, y+height). Each id appears exactly once; order follows
// bucket iteration and callers must treat it as unordered.
func (g *grid) QueryRect(entityID uint32, position Position, width, height float32) []uint32 {
	return iter_util.Collect(g.RectSeq(entityID, position, width, height))
}

// Clear empties both tables. Count is unchanged.
func (g *grid) Clear() {
	g.grid.Clear()
	g.maps.Clear()
}

func indexOf(b bucket, id uint32) int {
	for i, p := range b {
		if p.id() == id {
			return i
		}
	}
	return -1
}
