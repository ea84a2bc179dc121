package world

import (
	"fmt"
	"math/rand"
	"sync"

	"planetkit/internal/grid"
	"planetkit/internal/logging"
	"planetkit/internal/planet"
)

// Globe owns every loaded Chunk for one planet, plus the generator used to
// fill in chunks that haven't been visited yet. Grounded in globe.rs.
type Globe struct {
	spec planet.Spec
	gen  *planet.Generator
	log  logging.Logger

	mu       sync.RWMutex
	chunks   map[ChunkOrigin]*Chunk
	modCount uint64
}

// NewGlobe constructs an empty Globe (no chunks loaded) for spec.
func NewGlobe(spec planet.Spec, log logging.Logger) *Globe {
	return &Globe{
		spec:   spec,
		gen:    planet.NewGenerator(spec),
		log:    log,
		chunks: make(map[ChunkOrigin]*Chunk),
	}
}

// Spec returns the globe's immutable configuration.
func (g *Globe) Spec() planet.Spec {
	return g.spec
}

// ChunkAt returns the chunk at the given origin, if loaded.
func (g *Globe) ChunkAt(origin ChunkOrigin) (*Chunk, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.chunks[origin]
	return c, ok
}

// NumChunksLoaded returns how many chunks are currently resident.
func (g *Globe) NumChunksLoaded() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.chunks)
}

// LoadedOrigins returns the origins of every chunk currently resident, in
// no particular order.
func (g *Globe) LoadedOrigins() []ChunkOrigin {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]ChunkOrigin, 0, len(g.chunks))
	for origin := range g.chunks {
		out = append(out, origin)
	}
	return out
}

// OriginOfChunkOwning returns the origin of the chunk that owns pos.
func (g *Globe) OriginOfChunkOwning(pos PosInOwningRoot) ChunkOrigin {
	return OriginOfChunkOwning(pos, g.spec.RootResolution, g.spec.ChunkResolution)
}

// OriginOfChunkInSameRootContaining returns the origin of some chunk in
// pos's root that contains pos; it may not own pos.
func (g *Globe) OriginOfChunkInSameRootContaining(pos grid.Point3) ChunkOrigin {
	return OriginOfChunkInSameRootContaining(pos, g.spec.RootResolution, g.spec.ChunkResolution)
}

// AddChunk adds chunk to the globe. Panics if a chunk was already loaded at
// the same origin, matching Globe::add_chunk's contract.
func (g *Globe) AddChunk(c *Chunk) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, exists := g.chunks[c.Origin]; exists {
		panic(fmt.Sprintf("world: there was already a chunk loaded at origin %v", c.Origin.Pos()))
	}
	g.chunks[c.Origin] = c
	g.modCount++
}

// RemoveChunk removes and returns the chunk at origin. Panics if no chunk
// was loaded there, matching Globe::remove_chunk's contract.
func (g *Globe) RemoveChunk(origin ChunkOrigin) *Chunk {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.chunks[origin]
	if !ok {
		panic(fmt.Sprintf("world: attempted to remove a chunk that was not loaded at %v", origin.Pos()))
	}
	delete(g.chunks, origin)
	g.modCount++
	return c
}

// AuthoritativeCell returns the cell content at pos, which must already be
// canonicalized to its owning root. Panics if the owning chunk isn't
// loaded.
func (g *Globe) AuthoritativeCell(pos PosInOwningRoot) *planet.Cell {
	origin := g.OriginOfChunkOwning(pos)
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.chunks[origin]
	if !ok {
		panic("world: chunk not loaded for authoritative cell access")
	}
	return c.Cell(pos.Pos())
}

// AuthoritativeCellMut returns a mutable pointer to the cell content at
// pos, which must already be canonicalized to its owning root.
func (g *Globe) AuthoritativeCellMut(pos PosInOwningRoot) *planet.Cell {
	origin := g.OriginOfChunkOwning(pos)
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.chunks[origin]
	if !ok {
		panic("world: chunk not loaded for authoritative cell access")
	}
	return c.CellMut(pos.Pos())
}

// MaybeNonAuthoritativeCell returns the cell content at pos from whichever
// chunk in pos's root happens to contain it, which may be a stale mirrored
// copy rather than the authoritative one.
func (g *Globe) MaybeNonAuthoritativeCell(pos grid.Point3) *planet.Cell {
	origin := g.OriginOfChunkInSameRootContaining(pos)
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.chunks[origin]
	if !ok {
		panic("world: chunk not loaded for non-authoritative cell access")
	}
	return c.Cell(pos)
}

// CopyAllAuthoritativeCells brings every loaded chunk's mirrored cells up
// to date with whatever upstream neighbor currently owns them. Grounded in
// Globe::copy_all_authoritative_cells; intentionally brute-force (scans
// every loaded chunk). EnsureChunkPresent runs it after every chunk it
// loads, so it can run many times within one lifecycle tick.
func (g *Globe) CopyAllAuthoritativeCells() {
	g.mu.Lock()
	origins := make([]ChunkOrigin, 0, len(g.chunks))
	for origin := range g.chunks {
		origins = append(origins, origin)
	}
	g.mu.Unlock()

	for _, origin := range origins {
		g.maybeCopyAuthoritativeCells(origin)
	}
}

func (g *Globe) maybeCopyAuthoritativeCells(targetOrigin ChunkOrigin) {
	g.mu.Lock()
	defer g.mu.Unlock()

	target, ok := g.chunks[targetOrigin]
	if !ok {
		return
	}

	for i := range target.UpstreamNeighbors {
		neighbor := &target.UpstreamNeighbors[i]
		source, ok := g.chunks[neighbor.Origin]
		if !ok {
			continue
		}
		// Invariant 2 (spec.md §8): a mirrored cell is only stale when the
		// upstream's OwnedEdgeVersion has moved past what we last copied.
		if neighbor.LastKnownVersion >= source.OwnedEdgeVersion {
			continue
		}

		for _, pair := range neighbor.SharedCells {
			*target.CellMut(pair.Sink) = *source.Cell(pair.Source)
		}
		neighbor.LastKnownVersion = source.OwnedEdgeVersion
		target.MarkViewAsDirty()
	}
}

// IncrementChunkOwnedEdgeVersionForCell bumps the OwnedEdgeVersion of
// whichever chunk owns pos. Call this after mutating an authoritative cell
// so that downstream mirrors' LastKnownVersion falls behind and the next
// CopyAllAuthoritativeCells (or an explicit PushSharedCellsForChunk) picks
// up the change.
func (g *Globe) IncrementChunkOwnedEdgeVersionForCell(pos PosInOwningRoot) {
	origin := g.OriginOfChunkOwning(pos)
	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.chunks[origin]; ok {
		c.OwnedEdgeVersion++
	}
}

// PushSharedCellsForChunk immediately propagates the chunk at origin's
// authoritative cells to every chunk that mirrors them, rather than waiting
// for the next CopyAllAuthoritativeCells sweep to notice the version bump.
// Grounded in the mutation API's push_shared_cells_for_chunk.
func (g *Globe) PushSharedCellsForChunk(origin ChunkOrigin) {
	g.mu.Lock()
	defer g.mu.Unlock()

	source, ok := g.chunks[origin]
	if !ok {
		return
	}

	for _, downstream := range source.DownstreamNeighbors {
		sink, ok := g.chunks[downstream.Origin]
		if !ok {
			continue
		}
		for _, pair := range downstream.SharedCells {
			*sink.CellMut(pair.Sink) = *source.Cell(pair.Source)
		}
		sink.MarkViewAsDirty()
		if un := sink.upstreamNeighborFor(origin); un != nil {
			un.LastKnownVersion = source.OwnedEdgeVersion
		}
	}
}

// MutateAuthoritativeCell locates the chunk owning pos, applies mutate to
// its cell, and then drives the rest of the mutation API: bumping the
// owner's OwnedEdgeVersion, pushing the change to downstream mirrors
// immediately, and marking every chunk whose mesh the change could affect
// as dirty. This is the recommended single entry point for collaborators
// editing world state; the granular AuthoritativeCellMut/
// IncrementChunkOwnedEdgeVersionForCell/PushSharedCellsForChunk primitives
// remain available individually for callers that need to sequence them
// differently (e.g. batching several edits before propagating).
func (g *Globe) MutateAuthoritativeCell(pos PosInOwningRoot, mutate func(*planet.Cell)) {
	mutate(g.AuthoritativeCellMut(pos))
	g.IncrementChunkOwnedEdgeVersionForCell(pos)
	g.PushSharedCellsForChunk(g.OriginOfChunkOwning(pos))
	g.MarkChunkViewsAffectedByCellAsDirty(pos.Pos())
}

// MarkChunkViewsAffectedByCellAsDirty flags every loaded chunk whose mesh
// could be affected by a change at pos as needing a rebuild. This is
// deliberately over-conservative: it dirties the owning chunks of pos's
// immediate neighbors and their neighbors in turn, rather than computing
// exactly which chunk boundaries the change crosses. Grounded in
// Globe::mark_chunk_views_affected_by_cell_as_dirty.
func (g *Globe) MarkChunkViewsAffectedByCellAsDirty(pos grid.Point3) {
	posInOwningRoot := NewPosInOwningRoot(pos, g.spec.RootResolution)

	dirtyCells := []PosInOwningRoot{posInOwningRoot}
	for _, neighbor := range grid.Neighbors(posInOwningRoot.Pos(), g.spec.RootResolution) {
		dirtyCells = append(dirtyCells, NewPosInOwningRoot(neighbor, g.spec.RootResolution))
	}

	var cellsInDirtyChunks []PosInOwningRoot
	for _, dirtyCell := range dirtyCells {
		for _, neighbor := range grid.Neighbors(dirtyCell.Pos(), g.spec.RootResolution) {
			cellsInDirtyChunks = append(cellsInDirtyChunks, NewPosInOwningRoot(neighbor, g.spec.RootResolution))
		}
	}

	// Many of the cells gathered above land in the same handful of chunks;
	// dedupe by cache key before marking so a single cell edit doesn't
	// re-lock and re-mark the same chunk a dozen times.
	seen := make(map[uint64]ChunkOrigin, len(cellsInDirtyChunks))
	for _, dirtyPos := range cellsInDirtyChunks {
		chunkOrigin := OriginOfChunkOwning(dirtyPos, g.spec.RootResolution, g.spec.ChunkResolution)
		seen[chunkOrigin.CacheKey()] = chunkOrigin
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, chunkOrigin := range seen {
		if c, ok := g.chunks[chunkOrigin]; ok {
			c.MarkViewAsDirty()
		}
	}
}

// LoadOrBuildChunk generates (or, in a future extension, loads from disk)
// the chunk at origin and adds it to the globe. Panics if a chunk was
// already loaded there.
func (g *Globe) LoadOrBuildChunk(origin ChunkOrigin) {
	pos := origin.Pos()
	endX := pos.X + g.spec.ChunkResolution[0]
	endY := pos.Y + g.spec.ChunkResolution[1]
	endZ := pos.Z + g.spec.ChunkResolution[2] - 1

	cells := make([]planet.Cell, 0, int(endX-pos.X+1)*int(endY-pos.Y+1)*int(endZ-pos.Z+1))
	for z := pos.Z; z <= endZ; z++ {
		for y := pos.Y; y <= endY; y++ {
			for x := pos.X; x <= endX; x++ {
				cellPos := grid.NewPoint3(pos.Root, x, y, z)
				cell := g.gen.CellAt(cellPos)
				cell.Shade = 1.0 - 0.5*rand.Float32()
				cells = append(cells, cell)
			}
		}
	}

	g.AddChunk(NewChunk(origin, cells, g.spec.RootResolution, g.spec.ChunkResolution))
}

// EnsureChunkPresent loads or generates the chunk at origin if it isn't
// already, then synchronizes authoritative cell data across the whole
// globe. Pays no attention to loaded-chunk limits; callers that care about
// total memory should use the lifecycle manager instead.
func (g *Globe) EnsureChunkPresent(origin ChunkOrigin) {
	if _, ok := g.ChunkAt(origin); ok {
		return
	}
	g.LoadOrBuildChunk(origin)
	g.CopyAllAuthoritativeCells()
}

// FindLowestCellContaining walks up from bedrock in the column under
// column, ensuring chunks are loaded as needed, until it finds a cell of
// the given material. The walk has no upper bound: if no cell in the column
// is made of material, it does not return. It returns false only when the
// chunk it has just ensured is present cannot be found.
func (g *Globe) FindLowestCellContaining(column grid.Point3, material planet.Material) (grid.Point3, bool) {
	pos := NewPosInOwningRoot(column, g.spec.RootResolution)
	pos.SetZ(0)

	for {
		chunkOrigin := g.OriginOfChunkOwning(pos)
		g.EnsureChunkPresent(chunkOrigin)

		c, ok := g.ChunkAt(chunkOrigin)
		if !ok {
			return grid.Point3{}, false
		}

		cell := c.Cell(pos.Pos())
		if cell.Material == material {
			return pos.Pos(), true
		}
		pos.SetZ(pos.Pos().Z + 1)
	}
}
