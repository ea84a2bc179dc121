// Command planetstat drives the planetkit core headlessly: it builds a
// globe, plants a point of interest on the ground, runs a few lifecycle
// ticks, and reports what got loaded and meshed. It exists to exercise the
// core without a rendering backend, input handling, or networking.
package main

import (
	"flag"
	"fmt"
	"os"

	"planetkit/internal/config"
	"planetkit/internal/grid"
	"planetkit/internal/lifecycle"
	"planetkit/internal/logging"
	"planetkit/internal/meshing"
	"planetkit/internal/planet"
	"planetkit/internal/profiling"
	"planetkit/internal/world"
)

func main() {
	specPath := flag.String("spec", "", "path to a YAML planet spec (defaults to a small built-in demo spec)")
	ticks := flag.Int("ticks", 3, "number of lifecycle ticks to run")
	flag.Parse()

	log := logging.NewDefault()

	spec, err := loadSpec(*specPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "planetstat:", err)
		os.Exit(1)
	}
	if err := spec.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "planetstat: invalid spec:", err)
		os.Exit(1)
	}

	globe := world.NewGlobe(spec, log)
	manager := lifecycle.NewManager(log)

	column := grid.NewPoint3(0, 0, 0, 0)
	poi, ok := manager.FindGround(globe, column, planet.MaterialAir)
	if !ok {
		fmt.Fprintln(os.Stderr, "planetstat: could not find ground under the starting column")
		os.Exit(1)
	}
	fmt.Printf("planted point of interest at %+v\n", poi)

	pois := []grid.Point3{poi}
	for i := 0; i < *ticks; i++ {
		profiling.ResetFrame()
		manager.Tick(globe, pois)
		fmt.Printf("tick %d: %d chunks loaded (%s)\n", i+1, globe.NumChunksLoaded(), profiling.TopN(3))
	}

	// Flood the point of interest's cell with water, driving the full
	// mutation API: this bumps the owning chunk's OwnedEdgeVersion and
	// pushes the change to any downstream mirrors immediately, rather than
	// waiting on the next tick's CopyAllAuthoritativeCells sweep.
	poiInOwningRoot := world.NewPosInOwningRoot(poi, spec.RootResolution)
	globe.MutateAuthoritativeCell(poiInOwningRoot, func(c *planet.Cell) {
		c.Material = planet.MaterialWater
	})
	fmt.Printf("flooded point of interest at %+v\n", poi)

	builder := meshing.NewBuilder(spec)
	var vertexData []meshing.Vertex
	var indexData []uint32
	for _, origin := range globe.LoadedOrigins() {
		vertexData, indexData = builder.BuildChunkGeometry(globe, origin, vertexData, indexData)
	}
	fmt.Printf("mesh: %d vertices, %d indices (%d triangles)\n", len(vertexData), len(indexData), len(indexData)/3)
}

// loadSpec loads a spec from path, or falls back to a small demo-scale spec
// when path is empty. Earth-scale resolutions are impractical to walk in a
// quick CLI demo, so the built-in default shrinks every resolution while
// keeping the same structural ratios.
func loadSpec(path string) (planet.Spec, error) {
	if path != "" {
		return config.LoadSpec(path)
	}
	return demoSpec(), nil
}

func demoSpec() planet.Spec {
	return planet.Spec{
		Seed:            14,
		FloorRadius:     1000.0,
		OceanRadius:     1010.0,
		BlockHeight:     1.0,
		RootResolution:  [2]grid.Coord{64, 128},
		ChunkResolution: [3]grid.Coord{16, 16, 4},
	}
}
