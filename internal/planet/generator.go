package planet

import (
	"github.com/aquilax/go-perlin"

	"planetkit/internal/grid"
)

// terrainOctaves, terrainAlpha, and terrainBeta tune the fractal noise used
// to carve land out of the ocean: alpha is the per-octave amplitude decay,
// beta the per-octave frequency growth, mirroring the Fbm defaults the
// original generator used (6 octaves).
const (
	terrainOctaves = 6
	terrainAlpha   = 2.0
	terrainBeta    = 2.0
	// terrainWavelength scales world-space coordinates down before they
	// reach the noise field; without it every cell on a planet-sized
	// sphere samples from essentially the same point.
	terrainWavelength = 700.0
)

// Material identifies what a cell is made of.
type Material int

const (
	MaterialAir Material = iota
	MaterialWater
	MaterialDirt
)

// Cell is the generated content of a single grid position, before any
// player or world-event mutation is applied.
type Cell struct {
	Material Material
	// Shade is a small per-cell cosmetic variation used by the mesh
	// builder to break up large flat faces; it has no gameplay meaning.
	Shade float32
}

// Generator deterministically produces terrain from a Spec's seed. It holds
// no mutable state beyond the noise field itself, so a given (Spec, seed)
// pair always generates the same planet.
type Generator struct {
	spec         Spec
	terrainNoise *perlin.Perlin
}

// NewGenerator builds a Generator for spec. spec must already be valid;
// callers should call spec.Validate() beforehand.
func NewGenerator(spec Spec) *Generator {
	return &Generator{
		spec:         spec,
		terrainNoise: perlin.NewPerlin(terrainAlpha, terrainBeta, terrainOctaves, int64(spec.Seed)),
	}
}

// CellAt generates the cell content at the given grid position. To keep the
// same wavelength of noise useful regardless of planet radius, it samples
// on the sea-level sphere rather than in raw world space.
func (g *Generator) CellAt(pos grid.Point3) Cell {
	seaLevelPt := g.spec.CellCenterOnUnitSphere(pos).Mul(g.spec.OceanRadius)
	cellPt := g.spec.CellCenterCenter(pos)

	delta := g.terrainNoise.Noise3D(
		seaLevelPt.X()/terrainWavelength,
		seaLevelPt.Y()/terrainWavelength,
		seaLevelPt.Z()/terrainWavelength,
	) * (g.spec.OceanRadius - g.spec.FloorRadius) * 0.9

	landHeight := g.spec.OceanRadius + delta
	cellHeight := cellPt.Len()

	var material Material
	switch {
	case cellHeight < landHeight:
		material = MaterialDirt
	case cellHeight < g.spec.OceanRadius:
		material = MaterialWater
	default:
		material = MaterialAir
	}

	return Cell{Material: material, Shade: 1.0}
}
