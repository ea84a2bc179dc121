package meshing

import (
	"testing"

	"planetkit/internal/grid"
	"planetkit/internal/logging"
	"planetkit/internal/planet"
	"planetkit/internal/world"
)

func demoSpec() planet.Spec {
	return planet.Spec{
		Seed:            5,
		FloorRadius:     1000.0,
		OceanRadius:     1010.0,
		BlockHeight:     1.0,
		RootResolution:  [2]grid.Coord{16, 32},
		ChunkResolution: [3]grid.Coord{4, 4, 4},
	}
}

func TestShapeForPicksFullHexAwayFromEdges(t *testing.T) {
	shape := shapeFor(2, 2, 4, 4)
	if len(shape.TopOutlineDirOffsets) != len(FullHex.TopOutlineDirOffsets) {
		t.Fatalf("interior cell should get FullHex, got %d offsets", len(shape.TopOutlineDirOffsets))
	}
}

func TestShapeForPicksCornerPortionsAtChunkCorners(t *testing.T) {
	if s := shapeFor(0, 0, 4, 4); len(s.TopOutlineDirOffsets) != len(NorthPortion.TopOutlineDirOffsets) {
		t.Fatalf("expected NorthPortion at (0,0)")
	}
	if s := shapeFor(4, 4, 4, 4); len(s.TopOutlineDirOffsets) != len(SouthPortion.TopOutlineDirOffsets) {
		t.Fatalf("expected SouthPortion at (endX,endY)")
	}
}

// S6 from spec.md §8: a chunk surrounded by loaded, solid neighbors on every
// side, including the chunks directly above and below it, produces no
// geometry for its fully enclosed cells.
func TestBuildChunkGeometrySkipsFullyEnclosedDirt(t *testing.T) {
	spec := demoSpec()
	globe := world.NewGlobe(spec, logging.NewNop())

	// One chunk-height off the floor, so there's room to load a real chunk
	// below it rather than running off the z >= 0 boundary.
	centerPos := grid.NewPoint3(1, 4, 4, spec.ChunkResolution[2])
	centerOrigin := world.NewChunkOrigin(centerPos, spec.RootResolution, spec.ChunkResolution)
	globe.LoadOrBuildChunk(centerOrigin)
	centerChunk, _ := globe.ChunkAt(centerOrigin)

	// Load every chunk that can neighbor it in-plane, plus the chunks
	// directly above and below, so that no cell is culled merely for lack
	// of information in any of the six hex directions or along z.
	neighborhood := append([]world.ChunkOrigin{centerOrigin}, centerChunk.AccessibleChunks...)
	aboveOrigin := world.NewChunkOrigin(
		grid.NewPoint3(centerPos.Root, centerPos.X, centerPos.Y, centerPos.Z+spec.ChunkResolution[2]),
		spec.RootResolution, spec.ChunkResolution)
	belowOrigin := world.NewChunkOrigin(
		grid.NewPoint3(centerPos.Root, centerPos.X, centerPos.Y, centerPos.Z-spec.ChunkResolution[2]),
		spec.RootResolution, spec.ChunkResolution)
	neighborhood = append(neighborhood, aboveOrigin, belowOrigin)

	for _, origin := range neighborhood {
		if _, ok := globe.ChunkAt(origin); !ok {
			globe.LoadOrBuildChunk(origin)
		}
	}
	globe.CopyAllAuthoritativeCells()

	// Force every cell in the neighborhood to solid dirt so nothing is
	// visible from any angle.
	for _, origin := range neighborhood {
		c, ok := globe.ChunkAt(origin)
		if !ok {
			continue
		}
		for i := range c.Cells {
			c.Cells[i].Material = planet.MaterialDirt
		}
	}

	builder := NewBuilder(spec)
	vertexData, indexData := builder.BuildChunkGeometry(globe, centerOrigin, nil, nil)
	if len(vertexData) != 0 || len(indexData) != 0 {
		t.Fatalf("expected no geometry for a fully enclosed solid chunk, got %d vertices, %d indices", len(vertexData), len(indexData))
	}
}

// S6 from spec.md §8: opening a single fully-enclosed Dirt cell's z+1
// neighbor to Air must expose it, producing at least 18 vertices and 24
// indices for a FULL_HEX cell shape, even though all six of its in-plane
// neighbors and its z-1 neighbor are still Dirt.
func TestBuildChunkGeometryDrawsCellOpenedToAirAbove(t *testing.T) {
	spec := demoSpec()
	globe := world.NewGlobe(spec, logging.NewNop())

	centerPos := grid.NewPoint3(1, 4, 4, spec.ChunkResolution[2])
	centerOrigin := world.NewChunkOrigin(centerPos, spec.RootResolution, spec.ChunkResolution)
	globe.LoadOrBuildChunk(centerOrigin)
	centerChunk, _ := globe.ChunkAt(centerOrigin)

	neighborhood := append([]world.ChunkOrigin{centerOrigin}, centerChunk.AccessibleChunks...)
	aboveOrigin := world.NewChunkOrigin(
		grid.NewPoint3(centerPos.Root, centerPos.X, centerPos.Y, centerPos.Z+spec.ChunkResolution[2]),
		spec.RootResolution, spec.ChunkResolution)
	belowOrigin := world.NewChunkOrigin(
		grid.NewPoint3(centerPos.Root, centerPos.X, centerPos.Y, centerPos.Z-spec.ChunkResolution[2]),
		spec.RootResolution, spec.ChunkResolution)
	neighborhood = append(neighborhood, aboveOrigin, belowOrigin)

	for _, origin := range neighborhood {
		if _, ok := globe.ChunkAt(origin); !ok {
			globe.LoadOrBuildChunk(origin)
		}
	}
	globe.CopyAllAuthoritativeCells()

	for _, origin := range neighborhood {
		c, ok := globe.ChunkAt(origin)
		if !ok {
			continue
		}
		for i := range c.Cells {
			c.Cells[i].Material = planet.MaterialDirt
		}
	}

	// Pick a cell interior to the chunk in x/y (away from the edges, so it
	// gets FullHex) and in the middle z-layer, then open only its z+1
	// neighbor to Air.
	testCell := grid.NewPoint3(centerPos.Root, centerPos.X+2, centerPos.Y+2, centerPos.Z+1)
	above := testCell
	above.Z++
	centerChunk.CellMut(above).Material = planet.MaterialAir

	builder := NewBuilder(spec)
	vertexData, indexData := builder.BuildChunkGeometry(globe, centerOrigin, nil, nil)
	if len(vertexData) < 18 {
		t.Fatalf("expected at least 18 vertices once the cell above is opened to air, got %d", len(vertexData))
	}
	if len(indexData) < 24 {
		t.Fatalf("expected at least 24 indices once the cell above is opened to air, got %d", len(indexData))
	}
	if len(indexData)%3 != 0 {
		t.Fatalf("index buffer should form whole triangles, got %d indices", len(indexData))
	}
}

func TestBuildChunkGeometryDrawsExposedDirt(t *testing.T) {
	spec := demoSpec()
	globe := world.NewGlobe(spec, logging.NewNop())

	origin := world.NewChunkOrigin(grid.NewPoint3(1, 4, 4, 0), spec.RootResolution, spec.ChunkResolution)
	globe.LoadOrBuildChunk(origin)
	c, _ := globe.ChunkAt(origin)
	for i := range c.Cells {
		c.Cells[i].Material = planet.MaterialAir
	}
	c.Cells[0].Material = planet.MaterialDirt

	builder := NewBuilder(spec)
	vertexData, indexData := builder.BuildChunkGeometry(globe, origin, nil, nil)
	if len(vertexData) == 0 || len(indexData) == 0 {
		t.Fatalf("expected geometry for a dirt cell surrounded by air")
	}
	if len(indexData)%3 != 0 {
		t.Fatalf("index buffer should form whole triangles, got %d indices", len(indexData))
	}
}

func TestBuildChunkGeometryDrawsCellsAtUnloadedBoundary(t *testing.T) {
	spec := demoSpec()
	globe := world.NewGlobe(spec, logging.NewNop())

	origin := world.NewChunkOrigin(grid.NewPoint3(1, 4, 4, 0), spec.RootResolution, spec.ChunkResolution)
	globe.LoadOrBuildChunk(origin)
	c, _ := globe.ChunkAt(origin)
	for i := range c.Cells {
		c.Cells[i].Material = planet.MaterialDirt
	}

	// No neighboring chunks are loaded, so even fully solid cells on the
	// boundary must be drawn: this engine treats a missing chunk as if it
	// were air, the opposite of what the original engine does.
	builder := NewBuilder(spec)
	vertexData, indexData := builder.BuildChunkGeometry(globe, origin, nil, nil)
	if len(vertexData) == 0 || len(indexData) == 0 {
		t.Fatalf("expected boundary cells to be drawn when neighboring chunks are unloaded")
	}
}
