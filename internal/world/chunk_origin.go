// Package world implements the chunked storage layer: Chunk, Globe, cell
// ownership resolution, and cross-chunk synchronization. Grounded in
// planetkit's globe package (chunk.rs, globe.rs, chunk_origin/chunk_pair
// usage, chunk_shared_points.rs, iters.rs).
package world

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"planetkit/internal/grid"
)

// ChunkOrigin identifies a chunk by the grid position of its lowest
// (north-west, bottom) corner. It is always already aligned to a multiple
// of the chunk resolution along x, y, and z, making it suitable as a map
// key.
type ChunkOrigin struct {
	pos grid.Point3
}

// NewChunkOrigin wraps an already chunk-aligned position as a ChunkOrigin.
// The resolutions are accepted (matching the constructor shape used
// throughout the original globe package) but are not retained; callers are
// responsible for having computed pos via origin_of_chunk_owning or
// origin_of_chunk_in_same_root_containing, which do the alignment.
func NewChunkOrigin(pos grid.Point3, rootResolution [2]grid.Coord, chunkResolution [3]grid.Coord) ChunkOrigin {
	return ChunkOrigin{pos: pos}
}

// Pos returns the underlying grid position of this chunk's corner.
func (o ChunkOrigin) Pos() grid.Point3 {
	return o.pos
}

// CacheKey returns a fast, stable hash of this origin, for use as a map key
// on hot per-tick paths (dirty-chunk queues, distance-sort dedup) where
// allocating and formatting a string key per lookup would otherwise show up
// in a profile.
func (o ChunkOrigin) CacheKey() uint64 {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(o.pos.Root))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(o.pos.X))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(o.pos.Y))
	binary.LittleEndian.PutUint64(buf[24:32], uint64(o.pos.Z))
	return xxhash.Sum64(buf[:])
}

// PosInOwningRoot is a grid position that has been canonicalized onto
// whichever root owns the underlying cell. Only positions of this type may
// be used to address authoritative (writable) cell data.
type PosInOwningRoot struct {
	pos grid.Point3
}

// NewPosInOwningRoot canonicalizes pos onto its owning root.
func NewPosInOwningRoot(pos grid.Point3, rootResolution [2]grid.Coord) PosInOwningRoot {
	return PosInOwningRoot{pos: grid.ToOwningRoot(pos, rootResolution)}
}

// Pos returns the canonicalized grid position.
func (p PosInOwningRoot) Pos() grid.Point3 {
	return p.pos
}

// SetZ replaces the z-coordinate, keeping x, y, and root unchanged. Used by
// column searches that walk straight up from bedrock.
func (p *PosInOwningRoot) SetZ(z grid.Coord) {
	p.pos.Z = z
}

// PointPair records that two different grid representations (possibly on
// different roots) refer to the same physical cell: source is the chunk
// that owns the authoritative copy, sink is where it's being mirrored to.
type PointPair struct {
	Source grid.Point3
	Sink   grid.Point3
}

// OriginOfChunkOwning returns the origin of the chunk that owns the cell at
// pos. Chunks own cells on their low-x edge and their high-y edge; the
// poles are owned by the chunk at each end of the root's diagonal.
func OriginOfChunkOwning(pos PosInOwningRoot, rootResolution [2]grid.Coord, chunkResolution [3]grid.Coord) ChunkOrigin {
	p := pos.Pos()
	endX := rootResolution[0]
	endY := rootResolution[1]
	lastChunkX := (endX/chunkResolution[0] - 1) * chunkResolution[0]
	lastChunkY := (endY/chunkResolution[1] - 1) * chunkResolution[1]
	chunkOriginZ := p.Z / chunkResolution[2] * chunkResolution[2]

	switch {
	case p.X == 0 && p.Y == 0:
		return NewChunkOrigin(grid.NewPoint3(p.Root, 0, 0, chunkOriginZ), rootResolution, chunkResolution)
	case p.X == endX && p.Y == endY:
		return NewChunkOrigin(grid.NewPoint3(p.Root, lastChunkX, lastChunkY, chunkOriginZ), rootResolution, chunkResolution)
	default:
		chunkOriginX := p.X / chunkResolution[0] * chunkResolution[0]
		chunkOriginY := (p.Y - 1) / chunkResolution[1] * chunkResolution[1]
		return NewChunkOrigin(grid.NewPoint3(p.Root, chunkOriginX, chunkOriginY, chunkOriginZ), rootResolution, chunkResolution)
	}
}

// OriginOfChunkInSameRootContaining returns the origin of some chunk in
// pos's own root that contains pos, without regard to which chunk owns it.
func OriginOfChunkInSameRootContaining(pos grid.Point3, rootResolution [2]grid.Coord, chunkResolution [3]grid.Coord) ChunkOrigin {
	endX := rootResolution[0]
	var chunkOriginX grid.Coord
	if pos.X == endX {
		chunkOriginX = (endX/chunkResolution[0] - 1) * chunkResolution[0]
	} else {
		chunkOriginX = pos.X / chunkResolution[0] * chunkResolution[0]
	}

	endY := rootResolution[1]
	var chunkOriginY grid.Coord
	if pos.Y == endY {
		chunkOriginY = (endY/chunkResolution[1] - 1) * chunkResolution[1]
	} else {
		chunkOriginY = pos.Y / chunkResolution[1] * chunkResolution[1]
	}

	chunkOriginZ := pos.Z / chunkResolution[2] * chunkResolution[2]

	return NewChunkOrigin(grid.NewPoint3(pos.Root, chunkOriginX, chunkOriginY, chunkOriginZ), rootResolution, chunkResolution)
}

// IsPointShared reports whether point lies on a chunk boundary shared with
// a neighboring chunk in the x or y direction.
func IsPointShared(point grid.Point3, chunkResolution [3]grid.Coord) bool {
	return point.X%chunkResolution[0] == 0 || point.Y%chunkResolution[1] == 0
}
