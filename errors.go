package gridhash

import "fmt"

type ZeroSizeError struct{}

func (e ZeroSizeError) Error() string {
	return fmt.Sprintf("table size must be greater than zero")
}

type ShiftRangeError struct {
	Shift uint32
}

func (e ShiftRangeError) Error() string {
	return fmt.Sprintf("cell shift %d is outside the supported range [1, 31]", e.Shift)
}

type IDRangeError struct {
	ID uint32
}

func (e IDRangeError) Error() string {
	return fmt.Sprintf("entity id %d exceeds the 31-bit limit (%d)", e.ID, MaxEntityID)
}

type MissingEntityError struct {
	ID           uint32
	CellX, CellY uint32
}

func (e MissingEntityError) Error() string {
	return fmt.Sprintf("entity %d is recorded in cell (%d, %d) but absent from its bucket", e.ID, e.CellX, e.CellY)
}
