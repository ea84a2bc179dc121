package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"planetkit/internal/grid"
	"planetkit/internal/logging"
	"planetkit/internal/planet"
	"planetkit/internal/world"
)

func demoSpec() planet.Spec {
	return planet.Spec{
		Seed:            11,
		FloorRadius:     1000.0,
		OceanRadius:     1010.0,
		BlockHeight:     1.0,
		RootResolution:  [2]grid.Coord{32, 64},
		ChunkResolution: [3]grid.Coord{4, 4, 4},
	}
}

func TestEnsureEssentialChunksPresentLoadsNeighborhood(t *testing.T) {
	spec := demoSpec()
	globe := world.NewGlobe(spec, logging.NewNop())
	manager := NewManager(logging.NewNop())

	poi := grid.NewPoint3(2, 8, 16, 0)
	manager.EnsureEssentialChunksPresent(globe, poi)

	if globe.NumChunksLoaded() == 0 {
		t.Fatalf("expected at least one chunk to be loaded")
	}

	posInOwningRoot := world.NewPosInOwningRoot(poi, spec.RootResolution)
	owningOrigin := globe.OriginOfChunkOwning(posInOwningRoot)
	if _, ok := globe.ChunkAt(owningOrigin); !ok {
		t.Fatalf("the chunk owning the point of interest itself should be loaded")
	}
}

// S5 from spec.md §8: once the loaded set reaches MaxChunksLoaded, eviction
// brings it back down to CullChunksDownTo, keeping the chunks nearest the
// points of interest.
func TestEvictExcessChunksKeepsNearestChunks(t *testing.T) {
	spec := demoSpec()
	globe := world.NewGlobe(spec, logging.NewNop())
	manager := NewManager(logging.NewNop())

	poi := grid.NewPoint3(0, 0, 0, 0)
	var origins []world.ChunkOrigin
	chunksPerSide := spec.ChunksPerRootSide()
	for root := grid.Root(0); root < grid.NumRoots && len(origins) < MaxChunksLoaded; root++ {
		for cx := grid.Coord(0); cx < chunksPerSide[0]; cx++ {
			for cy := grid.Coord(0); cy < chunksPerSide[1]; cy++ {
				if len(origins) >= MaxChunksLoaded {
					break
				}
				origin := world.NewChunkOrigin(
					grid.NewPoint3(root, cx*spec.ChunkResolution[0], cy*spec.ChunkResolution[1], 0),
					spec.RootResolution, spec.ChunkResolution,
				)
				if _, ok := globe.ChunkAt(origin); ok {
					continue
				}
				globe.LoadOrBuildChunk(origin)
				origins = append(origins, origin)
			}
		}
	}

	if globe.NumChunksLoaded() < MaxChunksLoaded {
		t.Skip("could not synthesize enough distinct chunk origins to exercise eviction")
	}

	removed := manager.EvictExcessChunks(globe, globe.LoadedOrigins(), []grid.Point3{poi})
	require.NotEmpty(t, removed, "expected eviction to remove chunks once at MaxChunksLoaded")
	require.Equal(t, CullChunksDownTo, globe.NumChunksLoaded())

	poiOrigin := globe.OriginOfChunkOwning(world.NewPosInOwningRoot(poi, spec.RootResolution))
	_, ok := globe.ChunkAt(poiOrigin)
	require.True(t, ok, "the chunk nearest the point of interest should never be evicted")
}

func TestTickRunsWithoutExceedingMaxChunksLoaded(t *testing.T) {
	spec := demoSpec()
	globe := world.NewGlobe(spec, logging.NewNop())
	manager := NewManager(logging.NewNop())

	poi := grid.NewPoint3(2, 0, 0, 0)
	manager.Tick(globe, []grid.Point3{poi})

	if globe.NumChunksLoaded() == 0 {
		t.Fatalf("expected Tick to load at least the POI's own chunk")
	}
	if globe.NumChunksLoaded() > MaxChunksLoaded {
		t.Fatalf("Tick should never leave more than MaxChunksLoaded chunks resident, got %d", globe.NumChunksLoaded())
	}
}
