package world

import (
	"testing"

	"github.com/stretchr/testify/require"

	"planetkit/internal/grid"
	"planetkit/internal/logging"
	"planetkit/internal/planet"
)

func demoSpec() planet.Spec {
	return planet.Spec{
		Seed:            3,
		FloorRadius:     1000.0,
		OceanRadius:     1010.0,
		BlockHeight:     1.0,
		RootResolution:  [2]grid.Coord{16, 32},
		ChunkResolution: [3]grid.Coord{4, 4, 4},
	}
}

func TestOriginOfChunkOwningIsStableAcrossPoints(t *testing.T) {
	res, chunkRes := [2]grid.Coord{16, 32}, [3]grid.Coord{4, 4, 4}

	// The chunk at (0,0) owns the north pole no matter which root it is
	// viewed from, since every root's pole is equivalent.
	for root := grid.Root(0); root < grid.NumRoots; root++ {
		pos := NewPosInOwningRoot(grid.NewPoint3(root, 0, 0, 0), res)
		origin := OriginOfChunkOwning(pos, res, chunkRes)
		if origin.Pos().X != 0 || origin.Pos().Y != 0 {
			t.Fatalf("root %d: pole should be owned by the (0,0) chunk, got %+v", root, origin.Pos())
		}
	}
}

// The chunk at the north pole owns the pole cell, which the polar chunk of
// every other root mirrors, so it has downstream neighbors; it also has at
// least one accessible chunk.
func TestNewChunkAtPoleHasNeighbors(t *testing.T) {
	res, chunkRes := [2]grid.Coord{16, 32}, [3]grid.Coord{4, 4, 4}
	origin := NewChunkOrigin(grid.NewPoint3(0, 0, 0, 0), res, chunkRes)

	cells := make([]planet.Cell, (chunkRes[0]+1)*(chunkRes[1]+1)*chunkRes[2])
	for i := range cells {
		cells[i] = planet.Cell{Material: planet.MaterialDirt}
	}

	c := NewChunk(origin, cells, res, chunkRes)
	if len(c.AccessibleChunks) == 0 {
		t.Fatalf("expected at least one accessible chunk from the polar chunk")
	}
	if len(c.DownstreamNeighbors) == 0 {
		t.Fatalf("expected the polar chunk to have downstream neighbors mirroring its pole cells")
	}
}

func TestChunkSharedPointsExcludesInterior(t *testing.T) {
	res, chunkRes := [2]grid.Coord{16, 32}, [3]grid.Coord{4, 4, 4}
	origin := NewChunkOrigin(grid.NewPoint3(1, 4, 4, 0), res, chunkRes)

	shared := ChunkSharedPoints(origin, chunkRes)
	for _, p := range shared {
		onXEdge := p.X == 4 || p.X == 8
		onYEdge := p.Y == 4 || p.Y == 8
		if !onXEdge && !onYEdge {
			t.Fatalf("ChunkSharedPoints returned an interior point %+v", p)
		}
	}
}

func TestGlobeAddRemoveChunkPanicsOnMisuse(t *testing.T) {
	spec := demoSpec()
	g := NewGlobe(spec, logging.NewNop())
	origin := NewChunkOrigin(grid.NewPoint3(0, 0, 0, 0), spec.RootResolution, spec.ChunkResolution)

	g.LoadOrBuildChunk(origin)

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatalf("expected a panic adding a duplicate chunk")
			}
		}()
		g.LoadOrBuildChunk(origin)
	}()

	g.RemoveChunk(origin)

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Fatalf("expected a panic removing an already-removed chunk")
			}
		}()
		g.RemoveChunk(origin)
	}()
}

// S4 from spec.md §8: mutating an authoritative cell on a shared edge and
// running CopyAllAuthoritativeCells propagates the change to chunks that
// mirror it.
func TestCopyAllAuthoritativeCellsPropagatesAcrossChunks(t *testing.T) {
	spec := demoSpec()
	g := NewGlobe(spec, logging.NewNop())

	origins := []ChunkOrigin{
		NewChunkOrigin(grid.NewPoint3(0, 0, 0, 0), spec.RootResolution, spec.ChunkResolution),
		NewChunkOrigin(grid.NewPoint3(0, 4, 0, 0), spec.RootResolution, spec.ChunkResolution),
	}
	for _, origin := range origins {
		g.LoadOrBuildChunk(origin)
	}

	sharedEdgePoint := grid.NewPoint3(0, 4, 2, 0)
	posInOwningRoot := NewPosInOwningRoot(sharedEdgePoint, spec.RootResolution)
	owningOrigin := OriginOfChunkOwning(posInOwningRoot, spec.RootResolution, spec.ChunkResolution)

	owningChunk, ok := g.ChunkAt(owningOrigin)
	require.True(t, ok, "owning chunk for %+v not loaded", sharedEdgePoint)
	owningChunk.CellMut(posInOwningRoot.Pos()).Material = planet.MaterialWater

	g.CopyAllAuthoritativeCells()

	for _, origin := range origins {
		c, ok := g.ChunkAt(origin)
		if !ok || !c.ContainsPos(sharedEdgePoint) {
			continue
		}
		require.Equal(t, planet.MaterialWater, c.Cell(sharedEdgePoint).Material,
			"chunk at %+v did not see the propagated change", origin.Pos())
	}
}

// Invariant 2 from spec.md §8: a mirrored cell is stale iff the downstream
// neighbor's LastKnownVersion has fallen behind the upstream chunk's
// OwnedEdgeVersion. MutateAuthoritativeCell drives the full mutation API
// (authoritative_cell_mut, increment_chunk_owned_edge_version_for_cell,
// push_shared_cells_for_chunk) so the push happens immediately, without
// waiting on a CopyAllAuthoritativeCells sweep.
func TestMutateAuthoritativeCellPushesToDownstreamImmediately(t *testing.T) {
	spec := demoSpec()
	g := NewGlobe(spec, logging.NewNop())

	origins := []ChunkOrigin{
		NewChunkOrigin(grid.NewPoint3(0, 0, 0, 0), spec.RootResolution, spec.ChunkResolution),
		NewChunkOrigin(grid.NewPoint3(0, 4, 0, 0), spec.RootResolution, spec.ChunkResolution),
	}
	for _, origin := range origins {
		g.LoadOrBuildChunk(origin)
	}
	g.CopyAllAuthoritativeCells()

	sharedEdgePoint := grid.NewPoint3(0, 4, 2, 0)
	posInOwningRoot := NewPosInOwningRoot(sharedEdgePoint, spec.RootResolution)
	owningOrigin := OriginOfChunkOwning(posInOwningRoot, spec.RootResolution, spec.ChunkResolution)

	g.MutateAuthoritativeCell(posInOwningRoot, func(c *planet.Cell) {
		c.Material = planet.MaterialWater
	})

	for _, origin := range origins {
		c, ok := g.ChunkAt(origin)
		if !ok || !c.ContainsPos(sharedEdgePoint) {
			continue
		}
		require.Equal(t, planet.MaterialWater, c.Cell(sharedEdgePoint).Material,
			"chunk at %+v did not see the pushed change", origin.Pos())
	}

	owningChunk, ok := g.ChunkAt(owningOrigin)
	require.True(t, ok)
	require.Equal(t, uint64(2), owningChunk.OwnedEdgeVersion,
		"mutating an authoritative cell should bump the owner's OwnedEdgeVersion")

	// A further CopyAllAuthoritativeCells sweep should be a no-op: every
	// downstream neighbor's LastKnownVersion already matches the owner's.
	g.CopyAllAuthoritativeCells()
	for _, origin := range origins {
		c, ok := g.ChunkAt(origin)
		if !ok {
			continue
		}
		for i := range c.UpstreamNeighbors {
			if c.UpstreamNeighbors[i].Origin == owningOrigin {
				require.Equal(t, owningChunk.OwnedEdgeVersion, c.UpstreamNeighbors[i].LastKnownVersion)
			}
		}
	}
}

func TestFindLowestCellContainingFindsDirt(t *testing.T) {
	spec := demoSpec()
	g := NewGlobe(spec, logging.NewNop())

	column := grid.NewPoint3(0, 0, 0, 0)
	pos, ok := g.FindLowestCellContaining(column, planet.MaterialDirt)
	if !ok {
		t.Fatalf("expected to find a dirt cell under the bedrock column")
	}
	if cell, ok := g.ChunkAt(g.OriginOfChunkOwning(NewPosInOwningRoot(pos, spec.RootResolution))); ok {
		if c := cell.Cell(NewPosInOwningRoot(pos, spec.RootResolution).Pos()); c.Material != planet.MaterialDirt {
			t.Fatalf("reported position %+v is not actually dirt", pos)
		}
	}
}
