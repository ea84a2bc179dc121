// Package grid implements the icosahedral geodesic coordinate system: the
// five root quads, their hexagonal cell grid, the triangle transform table,
// and the movement/turn kernel that lets code step and rotate across root
// boundaries and the twelve pentagons without special-casing every edge.
package grid

// Root identifies one of the five root quads (pole-to-pole strips of four
// triangular faces) that tile the icosahedron.
type Root int

// NumRoots is the fixed number of root quads on a planet.
const NumRoots = 5

// NextEast returns the neighboring root to the east (increasing index, mod 5).
func (r Root) NextEast() Root {
	return Root((int(r) + 1) % NumRoots)
}

// NextWest returns the neighboring root to the west (decreasing index, mod 5).
func (r Root) NextWest() Root {
	return Root((int(r) + NumRoots - 1) % NumRoots)
}
