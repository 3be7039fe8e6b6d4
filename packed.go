package gridhash

// MaxEntityID is the largest insertable entity id. Bit 31 of the stored word
// carries the single-cell flag, leaving 31 bits for the id itself.
const MaxEntityID uint32 = 1<<31 - 1

const idealFlag uint32 = 1 << 31

// packedID is an entity id with the single-cell ("ideal") flag folded into
// bit 31. An ideal entity occupies exactly one bucket, so a query can never
// encounter it twice.
type packedID uint32

func pack(id uint32, ideal bool) packedID {
	if ideal {
		return packedID(id | idealFlag)
	}
	return packedID(id)
}

func (p packedID) id() uint32 {
	return uint32(p) &^ idealFlag
}

func (p packedID) ideal() bool {
	return uint32(p)&idealFlag != 0
}
