package world

import (
	"fmt"
	"sort"

	"planetkit/internal/grid"
	"planetkit/internal/planet"
)

// Chunk is a fixed-size cuboid partition of one root: a fully-inclusive
// [0, chunk_resolution] range of x and y (shared with neighboring chunks at
// the edges) and an exclusive range of z (never shared). Storage and
// ownership rules follow chunk.rs.
type Chunk struct {
	Origin          ChunkOrigin
	ChunkResolution [3]grid.Coord
	// Cells is ordered (z, y, x), inclusive of both the chunk's own edge
	// and the one cell's worth of overlap shared with its neighbors.
	Cells            []planet.Cell
	OwnedEdgeVersion uint64
	// UpstreamNeighbors are chunks that own some of the cells on this
	// chunk's border; DownstreamNeighbors are chunks this one feeds data
	// to. Both lists are populated once, at construction.
	UpstreamNeighbors   []UpstreamNeighbor
	DownstreamNeighbors []DownstreamNeighbor
	IsViewDirty         bool
	// AccessibleChunks are every chunk (including this one) reachable
	// from a cell in this chunk via a single hex-edge step.
	AccessibleChunks []ChunkOrigin
}

// UpstreamNeighbor is a chunk that is the source of truth for some of the
// cells this chunk mirrors on its border.
type UpstreamNeighbor struct {
	Origin      ChunkOrigin
	SharedCells []PointPair
	// LastKnownVersion is the upstream chunk's OwnedEdgeVersion as of the
	// last successful copy. A mirrored cell is stale whenever this falls
	// behind the upstream chunk's current OwnedEdgeVersion.
	LastKnownVersion uint64
}

// DownstreamNeighbor is a chunk that mirrors some of this chunk's
// authoritative border cells.
type DownstreamNeighbor struct {
	Origin      ChunkOrigin
	SharedCells []PointPair
}

// NewChunk constructs a Chunk and immediately computes its neighbor lists
// and accessible-chunk set. cells must already be populated in (z, y, x)
// order covering the chunk's full inclusive x/y, exclusive z range.
func NewChunk(origin ChunkOrigin, cells []planet.Cell, rootResolution [2]grid.Coord, chunkResolution [3]grid.Coord) *Chunk {
	c := &Chunk{
		Origin:           origin,
		ChunkResolution:  chunkResolution,
		Cells:            cells,
		OwnedEdgeVersion: 1,
		IsViewDirty:      true,
		AccessibleChunks: listAccessibleChunks(origin, rootResolution, chunkResolution),
	}
	c.populateNeighboringChunks(rootResolution)
	return c
}

// populateNeighboringChunks finds, for every point on this chunk's shared
// edges, which chunk owns it and which chunks mirror it, building the
// upstream/downstream neighbor lists. Grounded in Chunk::populate_neighboring_chunks.
func (c *Chunk) populateNeighboringChunks(rootResolution [2]grid.Coord) {
	upstreamByOrigin := make(map[ChunkOrigin]*UpstreamNeighbor)
	downstreamByOrigin := make(map[ChunkOrigin]*DownstreamNeighbor)

	for _, ourPoint := range ChunkSharedPoints(c.Origin, c.ChunkResolution) {
		ourPointInOwningRoot := NewPosInOwningRoot(ourPoint, rootResolution)
		owningChunkOrigin := OriginOfChunkOwning(ourPointInOwningRoot, rootResolution, c.ChunkResolution)
		weOwnThisPoint := owningChunkOrigin == c.Origin

		for _, equivalentPoint := range grid.EquivalentPoints(ourPoint, rootResolution) {
			for _, chunkOrigin := range ChunksInSameRootContainingPoint(equivalentPoint, rootResolution, c.ChunkResolution) {
				if chunkOrigin == c.Origin {
					continue
				}

				if weOwnThisPoint {
					dn, ok := downstreamByOrigin[chunkOrigin]
					if !ok {
						dn = &DownstreamNeighbor{Origin: chunkOrigin}
						downstreamByOrigin[chunkOrigin] = dn
					}
					dn.SharedCells = append(dn.SharedCells, PointPair{
						Source: ourPointInOwningRoot.Pos(),
						Sink:   equivalentPoint,
					})
				} else if owningChunkOrigin == chunkOrigin {
					un, ok := upstreamByOrigin[chunkOrigin]
					if !ok {
						un = &UpstreamNeighbor{Origin: chunkOrigin}
						upstreamByOrigin[chunkOrigin] = un
					}
					equivalentPointInOwningRoot := NewPosInOwningRoot(equivalentPoint, rootResolution)
					un.SharedCells = append(un.SharedCells, PointPair{
						Source: equivalentPointInOwningRoot.Pos(),
						Sink:   ourPoint,
					})
				}
			}
		}
	}

	c.UpstreamNeighbors = make([]UpstreamNeighbor, 0, len(upstreamByOrigin))
	for _, un := range upstreamByOrigin {
		// Sorted by source position so that repeated copies touch cells in
		// the same order the backing array stores them in.
		sort.Slice(un.SharedCells, func(i, j int) bool {
			return grid.ComparePoints(un.SharedCells[i].Source, un.SharedCells[j].Source) < 0
		})
		c.UpstreamNeighbors = append(c.UpstreamNeighbors, *un)
	}
	c.DownstreamNeighbors = make([]DownstreamNeighbor, 0, len(downstreamByOrigin))
	for _, dn := range downstreamByOrigin {
		sort.Slice(dn.SharedCells, func(i, j int) bool {
			return grid.ComparePoints(dn.SharedCells[i].Sink, dn.SharedCells[j].Sink) < 0
		})
		c.DownstreamNeighbors = append(c.DownstreamNeighbors, *dn)
	}
}

// upstreamNeighborFor returns the UpstreamNeighbor entry for origin, if c
// has one, so its LastKnownVersion can be updated after a push.
func (c *Chunk) upstreamNeighborFor(origin ChunkOrigin) *UpstreamNeighbor {
	for i := range c.UpstreamNeighbors {
		if c.UpstreamNeighbors[i].Origin == origin {
			return &c.UpstreamNeighbors[i]
		}
	}
	return nil
}

func (c *Chunk) cellIndex(pos grid.Point3) int {
	localX := pos.X - c.Origin.Pos().X
	localY := pos.Y - c.Origin.Pos().Y
	localZ := pos.Z - c.Origin.Pos().Z
	r := c.ChunkResolution
	planeOffset := localZ * (r[0] + 1) * (r[1] + 1)
	rowOffset := localY * (r[0] + 1)
	return int(planeOffset + rowOffset + localX)
}

// ContainsPos reports whether pos lies within this chunk's bounds. This
// does not consider whether the chunk owns the cell at pos.
func (c *Chunk) ContainsPos(pos grid.Point3) bool {
	origin := c.Origin.Pos()
	endX := origin.X + c.ChunkResolution[0]
	endY := origin.Y + c.ChunkResolution[1]
	endZ := origin.Z + c.ChunkResolution[2] - 1
	return pos.X >= origin.X && pos.X <= endX &&
		pos.Y >= origin.Y && pos.Y <= endY &&
		pos.Z >= origin.Z && pos.Z <= endZ
}

// Cell returns the cell at pos. Panics if pos is outside this chunk.
func (c *Chunk) Cell(pos grid.Point3) *planet.Cell {
	return &c.Cells[c.cellIndex(pos)]
}

// CellMut returns a mutable pointer to the cell at pos. Panics if pos is
// outside this chunk.
func (c *Chunk) CellMut(pos grid.Point3) *planet.Cell {
	return &c.Cells[c.cellIndex(pos)]
}

// MarkViewAsDirty flags that this chunk's mesh needs to be rebuilt.
func (c *Chunk) MarkViewAsDirty() {
	c.IsViewDirty = true
}

// MarkViewAsClean flags that this chunk's mesh is up to date.
func (c *Chunk) MarkViewAsClean() {
	c.IsViewDirty = false
}

func listAccessibleChunks(origin ChunkOrigin, rootResolution [2]grid.Coord, chunkResolution [3]grid.Coord) []ChunkOrigin {
	seen := make(map[ChunkOrigin]struct{})
	pos := origin.Pos()

	xs := [2]grid.Coord{pos.X, pos.X + chunkResolution[0]}
	ys := [2]grid.Coord{pos.Y, pos.Y + chunkResolution[1]}
	zs := [2]grid.Coord{pos.Z, pos.Z + chunkResolution[2] - 1}

	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				cornerPos := grid.NewPoint3(pos.Root, x, y, z)
				for _, neighbor := range grid.Neighbors(cornerPos, rootResolution) {
					neighborOrigin := OriginOfChunkInSameRootContaining(neighbor, rootResolution, chunkResolution)
					seen[neighborOrigin] = struct{}{}
				}
			}
		}
	}

	out := make([]ChunkOrigin, 0, len(seen))
	for origin := range seen {
		out = append(out, origin)
	}
	return out
}

func (c *Chunk) String() string {
	p := c.Origin.Pos()
	return fmt.Sprintf("Chunk{root=%d x=%d y=%d z=%d}", p.Root, p.X, p.Y, p.Z)
}
