// Profiling:
// go build ./profile/grid
// go tool pprof -http=":8000" -nodefraction=0.001 ./grid mem.pprof

package main

import (
	"math/rand/v2"

	"github.com/TheBitDrifter/gridhash"
	"github.com/pkg/profile"
)

func main() {
	rounds := 50
	entities := 10000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, entities)
	p.Stop()
}

func run(rounds, numEntities int) {
	for range rounds {
		grid, err := gridhash.Factory.NewGrid(2048, 4)
		if err != nil {
			panic(err)
		}

		positions := make([]gridhash.Position, numEntities)
		for i := range numEntities {
			positions[i] = gridhash.NewPosition(float32(rand.UintN(4000)), float32(rand.UintN(4000)))
			grid.Insert(uint32(i), positions[i], 8)
		}
		for i := range numEntities {
			_ = grid.QueryRadius(uint32(i), positions[i], 8)
		}
		for i := range numEntities {
			grid.Reinsert(uint32(i), gridhash.NewPosition(float32(rand.UintN(4000)), float32(rand.UintN(4000))), 8)
		}
		for i := range numEntities {
			grid.Delete(uint32(i))
		}
	}
}
