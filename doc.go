/*
Package gridhash provides a fixed-capacity spatial hash grid for broad-phase
proximity queries over a large, dynamic population of 2D entities.

Entities are inserted with a position and a size, and the grid answers "which
other entities overlap this region" without scanning the full population. It's
built on a flat, pre-sized hash table whose slots are selected by reducing a
64-bit key modulo the capacity. Two distinct keys may silently share a slot,
a deliberate trade of collision correctness for allocation-free O(1) access.

Core Concepts:

  - Cell: one square region of the uniform partition, side length 1<<shift.
  - Bucket: the packed entity ids currently recorded in one cell.
  - Ideal entity: an entity whose bounding box fits inside a single cell.
  - Table: fixed-capacity storage addressed by a reduced 64-bit key.

Basic Usage:

	// Cell size 16x16 (shift 4)
	grid, _ := gridhash.Factory.NewGrid(2048, 4)

	grid.Insert(0, gridhash.NewPosition(0, 0), 4)
	grid.Insert(1, gridhash.NewPosition(1, 1), 4)

	// Entity 1 is a collision candidate for entity 0
	for _, id := range grid.QueryRadius(0, gridhash.NewPosition(0, 0), 4) {
		fmt.Println(id)
	}

Slot aliasing between unrelated keys is an accepted, capacity-mitigated
approximation (the size*1000 oversizing factor), never an error. The grid is
single-threaded: callers needing concurrent access impose their own
synchronization.

Gridhash is the broad-phase index for the Bappa Framework but also works as a
standalone library.
*/
package gridhash
