package world

import "planetkit/internal/grid"

// ChunkSharedPoints returns every point in the chunk at origin that is also
// potentially owned or mirrored by another chunk: those on the x=min,
// x=max, y=min, or y=max planes, but never the top or bottom z-planes
// (chunks never share cells across z). Grounded in chunk_shared_points.rs.
func ChunkSharedPoints(origin ChunkOrigin, chunkResolution [3]grid.Coord) []grid.Point3 {
	pos := origin.Pos()
	xMin, xMax := pos.X, pos.X+chunkResolution[0]
	yMin, yMax := pos.Y, pos.Y+chunkResolution[1]
	zMax := pos.Z + chunkResolution[2]

	var out []grid.Point3
	for x := xMin; x <= xMax; x++ {
		isXLim := x == xMin || x == xMax
		for y := yMin; y <= yMax; y++ {
			isYLim := y == yMin || y == yMax
			if !isXLim && !isYLim {
				continue
			}
			for z := pos.Z; z < zMax; z++ {
				out = append(out, grid.NewPoint3(pos.Root, x, y, z))
			}
		}
	}
	return out
}

// ChunksInSameRootContainingPoint returns the origins of every chunk in
// point's own root that contains point, which may be up to four distinct
// chunks when point lies on both a chunk's x and y boundary at once.
// Grounded in iters.rs's ChunksInSameRootContainingPoint.
func ChunksInSameRootContainingPoint(point grid.Point3, rootResolution [2]grid.Coord, chunkResolution [3]grid.Coord) []ChunkOrigin {
	sameChunkX := point.X / chunkResolution[0] * chunkResolution[0]
	sameChunkY := point.Y / chunkResolution[1] * chunkResolution[1]
	prevChunkX := (point.X/chunkResolution[0] - 1) * chunkResolution[0]
	prevChunkY := (point.Y/chunkResolution[1] - 1) * chunkResolution[1]
	chunkOriginZ := point.Z / chunkResolution[2] * chunkResolution[2]

	hasSameXChunk := point.X < rootResolution[0]
	hasSameYChunk := point.Y < rootResolution[1]
	hasPrevXChunk := point.X > 0 && point.X == sameChunkX
	hasPrevYChunk := point.Y > 0 && point.Y == sameChunkY

	chunkOriginAt := func(x, y grid.Coord) ChunkOrigin {
		return NewChunkOrigin(grid.NewPoint3(point.Root, x, y, chunkOriginZ), rootResolution, chunkResolution)
	}

	var out []ChunkOrigin
	if hasSameXChunk && hasSameYChunk {
		out = append(out, chunkOriginAt(sameChunkX, sameChunkY))
	}
	if hasSameXChunk && hasPrevYChunk {
		out = append(out, chunkOriginAt(sameChunkX, prevChunkY))
	}
	if hasPrevXChunk && hasSameYChunk {
		out = append(out, chunkOriginAt(prevChunkX, sameChunkY))
	}
	if hasPrevXChunk && hasPrevYChunk {
		out = append(out, chunkOriginAt(prevChunkX, prevChunkY))
	}
	return out
}
