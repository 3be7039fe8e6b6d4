package gridhash

type factory struct{}

var Factory factory

// NewGrid creates a grid with a fixed table sizing factor and cells of side
// length 1<<shift.
func (f factory) NewGrid(size int, shift uint32) (Grid, error) {
	return newGrid(size, shift)
}

// FactoryNewTable creates a fixed-capacity table sized for roughly size*1000
// keys.
func FactoryNewTable[T any](size int) (Table[T], error) {
	return newFixedTable[T](size)
}
