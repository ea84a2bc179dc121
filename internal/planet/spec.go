// Package planet holds the per-globe configuration (Spec), the
// icosahedron-to-sphere projector, and the deterministic terrain generator.
package planet

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"planetkit/internal/grid"
)

// Spec is the immutable configuration needed to deterministically generate
// a globe: its seed, radii, block height, and resolutions. Per spec.md §6.
type Spec struct {
	Seed            uint32        `yaml:"seed"`
	FloorRadius     float64       `yaml:"floor_radius"`
	OceanRadius     float64       `yaml:"ocean_radius"`
	BlockHeight     float64       `yaml:"block_height"`
	RootResolution  [2]grid.Coord `yaml:"root_resolution"`
	ChunkResolution [3]grid.Coord `yaml:"chunk_resolution"`
}

// EarthScaleExample returns a Spec roughly matching Earth's dimensions,
// useful as a default/demo configuration.
func EarthScaleExample() Spec {
	oceanRadius := 6_371_000.0
	crustDepth := 60.0
	return Spec{
		Seed:            14,
		FloorRadius:     oceanRadius - crustDepth,
		OceanRadius:     oceanRadius,
		BlockHeight:     0.65,
		RootResolution:  [2]grid.Coord{8388608, 16777216},
		ChunkResolution: [3]grid.Coord{16, 16, 4},
	}
}

// Validate reports whether the spec satisfies the structural invariants
// required everywhere else in the core: chunk resolution must divide root
// resolution exactly, and Ry must be exactly 2*Rx.
func (s Spec) Validate() error {
	cprs := s.ChunksPerRootSide()
	calculatedRootRes := [2]grid.Coord{
		cprs[0] * s.ChunkResolution[0],
		cprs[1] * s.ChunkResolution[1],
	}
	if calculatedRootRes != s.RootResolution {
		return fmt.Errorf("planet: chunk_resolution %v does not divide root_resolution %v", s.ChunkResolution, s.RootResolution)
	}
	if s.RootResolution[1] != s.RootResolution[0]*2 {
		return fmt.Errorf("planet: root_resolution y (%d) must be exactly twice x (%d)", s.RootResolution[1], s.RootResolution[0])
	}
	return nil
}

// ChunksPerRootSide returns how many chunks tile a root quad along x and y.
// Assumes ChunkResolution divides RootResolution exactly.
func (s Spec) ChunksPerRootSide() [2]grid.Coord {
	return [2]grid.Coord{
		s.RootResolution[0] / s.ChunkResolution[0],
		s.RootResolution[1] / s.ChunkResolution[1],
	}
}

// CellCenterOnUnitSphere projects a cell's (x, y) position (ignoring z) onto
// the unit sphere. Useful for sampling noise by longitude/latitude alone.
func (s Spec) CellCenterOnUnitSphere(pos grid.Point3) mgl64.Vec3 {
	// Project takes u = x/Rx and v = y/Rx (not y/Ry): since Ry is always
	// 2*Rx, v ranges over [0, 2], spanning both the upper and lower
	// Rx-by-Rx triangle squares of the root quad's net.
	resX := float64(s.RootResolution[0])
	ptInRootQuad := mgl64.Vec2{float64(pos.X) / resX, float64(pos.Y) / resX}
	return Project(pos.Root, ptInRootQuad)
}

// CellCenterCenter returns the real-space center of a cell (mid-height).
func (s Spec) CellCenterCenter(pos grid.Point3) mgl64.Vec3 {
	radius := s.FloorRadius + s.BlockHeight*(float64(pos.Z)+0.5)
	return s.CellCenterOnUnitSphere(pos).Mul(radius)
}

// CellBottomCenter returns the real-space center of a cell's bottom face.
func (s Spec) CellBottomCenter(pos grid.Point3) mgl64.Vec3 {
	radius := s.FloorRadius + s.BlockHeight*float64(pos.Z)
	return s.CellCenterOnUnitSphere(pos).Mul(radius)
}

// CellVertexOnUnitSphere projects a cell vertex, given as a (dx, dy) offset
// in units of 1/6 of a cell (see the mesh builder's DirOffsets table), onto
// the unit sphere.
func (s Spec) CellVertexOnUnitSphere(pos grid.Point3, offset [2]grid.Coord) mgl64.Vec3 {
	resX := float64(s.RootResolution[0] * 6)
	ptInRootQuad := mgl64.Vec2{
		float64(pos.X*6+offset[0]) / resX,
		float64(pos.Y*6+offset[1]) / resX,
	}
	return Project(pos.Root, ptInRootQuad)
}

// CellBottomVertex returns the real-space position of a cell vertex at its
// bottom z-face.
func (s Spec) CellBottomVertex(pos grid.Point3, offset [2]grid.Coord) mgl64.Vec3 {
	radius := s.FloorRadius + s.BlockHeight*float64(pos.Z)
	return s.CellVertexOnUnitSphere(pos, offset).Mul(radius)
}

// CellTopVertex returns the real-space position of a cell vertex at its top
// z-face (the bottom face of the cell above).
func (s Spec) CellTopVertex(pos grid.Point3, offset [2]grid.Coord) mgl64.Vec3 {
	pos.Z++
	return s.CellBottomVertex(pos, offset)
}

// ApproxCellZFromRadius estimates the z-shell a real-space radius falls in.
func (s Spec) ApproxCellZFromRadius(radius float64) grid.Coord {
	return grid.Coord((radius - s.FloorRadius) / s.BlockHeight)
}
