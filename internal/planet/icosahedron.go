package planet

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"planetkit/internal/grid"
)

// icosahedronLatitude is the latitude of the icosahedron's upper and lower
// rings of five vertices, measured from the equator. A regular icosahedron
// inscribed in the unit sphere places these rings at +-atan(1/2).
var icosahedronLatitude = math.Atan(0.5)

// upperRing and lowerRing are the 3D unit-sphere positions of the ten
// non-pole icosahedron vertices. upperRing[i] and lowerRing[i] are shared
// between root i and its easterly/westerly neighbors; see faceCorners.
var upperRing [grid.NumRoots]mgl64.Vec3
var lowerRing [grid.NumRoots]mgl64.Vec3

func init() {
	for i := 0; i < grid.NumRoots; i++ {
		upperLon := float64(i) * (2 * math.Pi / grid.NumRoots)
		lowerLon := upperLon + math.Pi/grid.NumRoots

		upperRing[i] = sphericalToCartesian(icosahedronLatitude, upperLon)
		lowerRing[i] = sphericalToCartesian(-icosahedronLatitude, lowerLon)
	}
}

func sphericalToCartesian(lat, lon float64) mgl64.Vec3 {
	cosLat := math.Cos(lat)
	return mgl64.Vec3{
		cosLat * math.Cos(lon),
		cosLat * math.Sin(lon),
		math.Sin(lat),
	}
}

var northPole = mgl64.Vec3{0, 0, 1}
var southPole = mgl64.Vec3{0, 0, -1}

// faceCorners holds the six named corner vertices of a root quad's
// unfolded net, as laid out in globe::project: a is the shared north pole,
// b and c are the root's upper-ring corners, d and e its lower-ring
// corners, and f the shared south pole.
type faceCorners struct {
	a, b, c, d, e, f mgl64.Vec3
}

func cornersForRoot(root grid.Root) faceCorners {
	i := int(root)
	j := (i + 1) % grid.NumRoots
	return faceCorners{
		a: northPole,
		b: upperRing[i],
		c: upperRing[j],
		d: lowerRing[i],
		e: lowerRing[j],
		f: southPole,
	}
}

// Project maps a point within a root quad's [0, Rx] x [0, Ry] parameter
// space (ptInRootQuad given as fractions in [0,1] x [0,2], i.e. x/Rx and
// y/Rx) onto the unit sphere. The quad is the net of four icosahedron
// triangles glued along the pole-to-pole diagonal; see cornersForRoot for
// their corner vertices and faceCorners for naming.
func Project(root grid.Root, ptInRootQuad mgl64.Vec2) mgl64.Vec3 {
	u := ptInRootQuad.X() // x / Rx, in [0, 1]
	v := ptInRootQuad.Y() // y / Rx, in [0, 2]

	corners := cornersForRoot(root)

	var p mgl64.Vec3
	switch {
	case v <= 1 && u+v <= 1:
		// T0 = (a, b, c): contains the north pole corner.
		wa := 1 - (u + v)
		wb := u
		wc := v
		p = corners.a.Mul(wa).Add(corners.b.Mul(wb)).Add(corners.c.Mul(wc))
	case v <= 1:
		// T1 = (b, d, c): the band triangle opposite the north pole.
		wb := 1 - v
		wd := u + v - 1
		wc := 1 - u
		p = corners.b.Mul(wb).Add(corners.d.Mul(wd)).Add(corners.c.Mul(wc))
	default:
		y := v - 1 // local y within the lower Rx x Rx square, in [0, 1]
		if u+y <= 1 {
			// T2 = (c, d, e): the band triangle opposite the south pole.
			wc := 1 - (u + y)
			wd := u
			we := y
			p = corners.c.Mul(wc).Add(corners.d.Mul(wd)).Add(corners.e.Mul(we))
		} else {
			// T3 = (d, e, f): contains the south pole corner.
			wd := 1 - y
			we := 1 - u
			wf := u + y - 1
			p = corners.d.Mul(wd).Add(corners.e.Mul(we)).Add(corners.f.Mul(wf))
		}
	}

	return p.Normalize()
}
