package meshing

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"planetkit/internal/grid"
	"planetkit/internal/planet"
	"planetkit/internal/world"
)

// Vertex is one renderer-agnostic mesh vertex: a position and a flat color.
// Building an actual GPU-ready vertex buffer (interleaving, uploading,
// texturing) is a rendering-backend concern and out of scope here.
type Vertex struct {
	Position mgl32.Vec3
	Color    [3]float32
}

// Builder turns loaded chunk data into triangle geometry. It holds no
// mutable state; all context comes from the Chunk and Globe passed to
// BuildChunkGeometry.
type Builder struct {
	spec planet.Spec
}

// NewBuilder constructs a Builder for globes using spec.
func NewBuilder(spec planet.Spec) *Builder {
	return &Builder{spec: spec}
}

// BuildChunkGeometry appends vertex and index data for every visible cell
// in the chunk at origin. Vertex positions are relative to the bottom
// center of the chunk's origin cell, so the caller can translate the whole
// mesh into place without re-deriving sphere geometry per chunk. Grounded
// in View::make_chunk_geometry.
func (b *Builder) BuildChunkGeometry(globe *world.Globe, origin world.ChunkOrigin, vertexData []Vertex, indexData []uint32) ([]Vertex, []uint32) {
	chunk, ok := globe.ChunkAt(origin)
	if !ok {
		return vertexData, indexData
	}

	chunkOriginPos := b.spec.CellBottomCenter(origin.Pos())

	pos := origin.Pos()
	endX := pos.X + chunk.ChunkResolution[0]
	endY := pos.Y + chunk.ChunkResolution[1]
	endZ := pos.Z + chunk.ChunkResolution[2] - 1

	for cellZ := pos.Z; cellZ <= endZ; cellZ++ {
		for cellY := pos.Y; cellY <= endY; cellY++ {
			for cellX := pos.X; cellX <= endX; cellX++ {
				gridPoint := grid.NewPoint3(pos.Root, cellX, cellY, cellZ)

				if b.cullCell(globe, gridPoint) {
					continue
				}

				cell := chunk.Cell(gridPoint)
				cellColor, shouldDraw := baseColorFor(cell.Material)
				if !shouldDraw {
					continue
				}
				for i := range cellColor {
					cellColor[i] *= 1.0 - 0.5*cell.Shade
				}

				shape := shapeFor(cellX-pos.X, cellY-pos.Y, chunk.ChunkResolution[0], chunk.ChunkResolution[1])
				offsets := shape.TopOutlineDirOffsets

				firstTopVertexIndex := uint32(len(vertexData))
				for _, offset := range offsets {
					vertexData = append(vertexData, Vertex{
						Position: toVec3f(b.spec.CellTopVertex(gridPoint, offset).Sub(chunkOriginPos)),
						Color:    cellColor,
					})
				}

				for i := uint32(1); i < uint32(len(offsets))-1; i++ {
					indexData = append(indexData,
						firstTopVertexIndex, firstTopVertexIndex+i, firstTopVertexIndex+i+1,
					)
				}

				topSideColor := cellColor
				for i := range topSideColor {
					topSideColor[i] *= 0.9
				}
				firstSideTopVertexIndex := firstTopVertexIndex + uint32(len(offsets))
				for _, offset := range offsets {
					vertexData = append(vertexData, Vertex{
						Position: toVec3f(b.spec.CellTopVertex(gridPoint, offset).Sub(chunkOriginPos)),
						Color:    topSideColor,
					})
				}

				bottomColor := cellColor
				for i := range bottomColor {
					bottomColor[i] *= 0.5
				}
				firstSideBottomVertexIndex := firstSideTopVertexIndex + uint32(len(offsets))
				for _, offset := range offsets {
					vertexData = append(vertexData, Vertex{
						Position: toVec3f(b.spec.CellBottomVertex(gridPoint, offset).Sub(chunkOriginPos)),
						Color:    bottomColor,
					})
				}

				n := uint32(len(offsets))
				for abI := uint32(0); abI < n; abI++ {
					cdI := (abI + 1) % n
					aI := firstSideTopVertexIndex + abI
					bI := firstSideBottomVertexIndex + abI
					cI := firstSideBottomVertexIndex + cdI
					dI := firstSideTopVertexIndex + cdI
					indexData = append(indexData, aI, bI, dI, dI, bI, cI)
				}
			}
		}
	}

	return vertexData, indexData
}

// cullCell reports whether the cell at pos can be skipped because no
// adjacent cell would reveal any of its faces. It checks the six in-plane
// hex-edge neighbors and the z-neighbors (directly above, and directly
// below unless pos is on the floor at z = 0), per
// view.rs's cull_cell. Unlike the original engine (which treats an unloaded
// neighbor as solid, and so never culls along unloaded chunk boundaries),
// this implementation treats a missing neighbor chunk as air: a cell at the
// edge of loaded terrain is always drawn, since we have no information that
// would let us safely hide it.
func (b *Builder) cullCell(globe *world.Globe, pos grid.Point3) bool {
	for _, neighborPos := range b.allNeighbors(pos) {
		origin := world.OriginOfChunkInSameRootContaining(neighborPos, b.spec.RootResolution, b.spec.ChunkResolution)
		chunk, ok := globe.ChunkAt(origin)
		if !ok {
			// Missing chunk: treat as visible air, per this engine's
			// culling rule (the opposite of the original's).
			return false
		}
		if chunk.Cell(neighborPos).Material == planet.MaterialAir {
			return false
		}
	}
	return true
}

// allNeighbors returns the in-plane hex-edge neighbors of pos plus the cell
// directly above it and, when pos is above the floor (z > 0), the cell
// directly below it.
func (b *Builder) allNeighbors(pos grid.Point3) []grid.Point3 {
	neighbors := grid.Neighbors(pos, b.spec.RootResolution)
	above := pos
	above.Z++
	neighbors = append(neighbors, above)
	if pos.Z > 0 {
		below := pos
		below.Z--
		neighbors = append(neighbors, below)
	}
	return neighbors
}

func baseColorFor(m planet.Material) (color [3]float32, shouldDraw bool) {
	switch m {
	case planet.MaterialDirt:
		return [3]float32{0.0, 0.4, 0.0}, true
	case planet.MaterialWater:
		return [3]float32{0.0, 0.1, 0.7}, true
	default:
		return [3]float32{}, false
	}
}

func toVec3f(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}
