package gridhash

import "iter"

// Table is fixed-capacity associative storage addressed by a reduced 64-bit
// key. Access never fails: every key reduces to a valid slot, and distinct
// keys that reduce to the same slot share it.
type Table[T any] interface {
	Count() int
	Vector(x, y uint32) *T
	Scalar(s uint32) *T
	Clear()
}

// Grid maintains the cell occupancy of a dynamic entity population and
// answers region-overlap queries.
type Grid interface {
	Count() int
	Insert(id uint32, position Position, radius float32) error
	Delete(id uint32)
	Reinsert(id uint32, position Position, radius float32) error
	QueryRadius(entityID uint32, position Position, radius float32) []uint32
	QueryRect(entityID uint32, position Position, width, height float32) []uint32
	RadiusSeq(entityID uint32, position Position, radius float32) iter.Seq[uint32]
	RectSeq(entityID uint32, position Position, width, height float32) iter.Seq[uint32]
	Clear()
}
