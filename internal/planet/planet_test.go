package planet

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"planetkit/internal/grid"
)

func demoSpec() Spec {
	return Spec{
		Seed:            7,
		FloorRadius:     1000.0,
		OceanRadius:     1010.0,
		BlockHeight:     1.0,
		RootResolution:  [2]grid.Coord{64, 128},
		ChunkResolution: [3]grid.Coord{16, 16, 4},
	}
}

func TestSpecValidate(t *testing.T) {
	s := demoSpec()
	if err := s.Validate(); err != nil {
		t.Fatalf("expected valid spec, got %v", err)
	}

	bad := s
	bad.ChunkResolution[0] = 7
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for non-dividing chunk resolution")
	}

	bad2 := s
	bad2.RootResolution[1] = bad2.RootResolution[0]
	if err := bad2.Validate(); err == nil {
		t.Fatalf("expected error for RootResolution[1] != 2*RootResolution[0]")
	}
}

func TestEarthScaleExampleIsValid(t *testing.T) {
	if err := EarthScaleExample().Validate(); err != nil {
		t.Fatalf("built-in example spec is invalid: %v", err)
	}
}

func TestProjectReturnsUnitVectors(t *testing.T) {
	for root := grid.Root(0); root < grid.NumRoots; root++ {
		for _, pt := range []mgl64.Vec2{
			{0, 0}, {0.5, 0.25}, {0.75, 0.25}, {0.25, 0.75}, {0.5, 0.75},
		} {
			p := Project(root, pt)
			if math.Abs(p.Len()-1.0) > 1e-9 {
				t.Fatalf("Project(%d, %+v) returned non-unit vector, length=%v", root, pt, p.Len())
			}
		}
	}
}

func TestProjectPolesMatchAcrossRoots(t *testing.T) {
	var firstNorth, firstSouth mgl64.Vec3
	for root := grid.Root(0); root < grid.NumRoots; root++ {
		north := Project(root, mgl64.Vec2{0, 0})
		south := Project(root, mgl64.Vec2{1, 2})
		if root == 0 {
			firstNorth, firstSouth = north, south
			continue
		}
		if north.Sub(firstNorth).Len() > 1e-9 {
			t.Fatalf("root %d north pole projection diverges: %+v vs %+v", root, north, firstNorth)
		}
		if south.Sub(firstSouth).Len() > 1e-9 {
			t.Fatalf("root %d south pole projection diverges: %+v vs %+v", root, south, firstSouth)
		}
	}
}

func TestCellTopVertexIsOneZAboveBottomVertex(t *testing.T) {
	s := demoSpec()
	pos := grid.NewPoint3(0, 5, 5, 3)
	offset := [2]grid.Coord{3, 0}

	top := s.CellTopVertex(pos, offset)
	bottom := s.CellBottomVertex(pos.WithZ(4), offset)
	if top != bottom {
		t.Fatalf("CellTopVertex(z=3) = %+v, want equal to CellBottomVertex(z=4) = %+v", top, bottom)
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	s := demoSpec()
	g1 := NewGenerator(s)
	g2 := NewGenerator(s)

	pos := grid.NewPoint3(2, 10, 20, 1000)
	if g1.CellAt(pos) != g2.CellAt(pos) {
		t.Fatalf("same seed produced different cells at %+v", pos)
	}
}

func TestGeneratorDeepUndergroundIsDirt(t *testing.T) {
	s := demoSpec()
	g := NewGenerator(s)
	pos := grid.NewPoint3(0, 10, 10, 0)
	if cell := g.CellAt(pos); cell.Material != MaterialDirt {
		t.Fatalf("expected bedrock-level cell to be dirt, got %v", cell.Material)
	}
}

func TestGeneratorFarAboveSurfaceIsAirOrWater(t *testing.T) {
	s := demoSpec()
	g := NewGenerator(s)
	pos := grid.NewPoint3(0, 10, 10, 1_000_000)
	cell := g.CellAt(pos)
	if cell.Material == MaterialDirt {
		t.Fatalf("expected far above the surface to not be dirt, got %v", cell.Material)
	}
}
