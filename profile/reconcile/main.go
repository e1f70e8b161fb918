// Profiling:
// go build ./profile/reconcile
// go tool pprof -http=":8000" -nodefraction=0.001 ./reconcile cpu.pprof

package main

import (
	"github.com/TheBitDrifter/backstage"
	"github.com/TheBitDrifter/table"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

func main() {
	rounds := 50
	steps := 1000
	entitiesPerStep := 100
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, steps, entitiesPerStep)
	p.Stop()
}

func run(rounds, steps, entitiesPerStep int) {
	posComp := backstage.FactoryNewComponent[position]()
	velComp := backstage.FactoryNewComponent[velocity]()

	for range rounds {
		cd := backstage.Factory.NewCoordinator(table.Factory.NewSchema(), nil)

		sys := &backstage.BaseSystem{}
		_ = sys.Require(cd, posComp)
		_ = sys.Require(cd, velComp)
		backstage.AddSystem(cd, sys)

		var live []backstage.Entity
		for range steps {
			for i := 0; i < entitiesPerStep; i++ {
				entity := cd.Create()
				_ = posComp.Add(cd, entity, position{})
				_ = velComp.Add(cd, entity, velocity{X: 1})
				live = append(live, entity)
			}
			// Destroy the oldest half of what was created this step.
			for i := 0; i < entitiesPerStep/2 && len(live) > 0; i++ {
				cd.Destroy(live[0])
				live = live[1:]
			}
			cd.Update()

			for _, entity := range sys.Entities() {
				pos, err := posComp.Get(cd, entity)
				if err != nil {
					continue
				}
				pos.X++
			}
		}
	}
}
