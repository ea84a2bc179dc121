package grid

// Coord is the integer type used for all grid coordinates.
type Coord = int64

// Point2 is a position within a root quad's (x, y) plane.
type Point2 struct {
	Root Root
	X    Coord
	Y    Coord
}

// NewPoint2 builds a Point2.
func NewPoint2(root Root, x, y Coord) Point2 {
	return Point2{Root: root, X: x, Y: y}
}

// WithRoot returns a copy of p with a different root.
func (p Point2) WithRoot(root Root) Point2 {
	p.Root = root
	return p
}

// WithX returns a copy of p with a different x.
func (p Point2) WithX(x Coord) Point2 {
	p.X = x
	return p
}

// WithY returns a copy of p with a different y.
func (p Point2) WithY(y Coord) Point2 {
	p.Y = y
	return p
}

// Point3 is a Point2 plus an unbounded-above z (cell "shell" height).
type Point3 struct {
	Point2
	Z Coord
}

// NewPoint3 builds a Point3.
func NewPoint3(root Root, x, y, z Coord) Point3 {
	return Point3{Point2: NewPoint2(root, x, y), Z: z}
}

// WithRoot returns a copy of p with a different root.
func (p Point3) WithRoot(root Root) Point3 {
	p.Point2 = p.Point2.WithRoot(root)
	return p
}

// WithX returns a copy of p with a different x.
func (p Point3) WithX(x Coord) Point3 {
	p.Point2 = p.Point2.WithX(x)
	return p
}

// WithY returns a copy of p with a different y.
func (p Point3) WithY(y Coord) Point3 {
	p.Point2 = p.Point2.WithY(y)
	return p
}

// WithZ returns a copy of p with a different z.
func (p Point3) WithZ(z Coord) Point3 {
	p.Z = z
	return p
}

// ComparePoints orders two points by (root, z, y, x), matching the order
// chunk cell storage uses so that neighbor lists iterate cache-friendly.
// Returns a negative number, zero, or a positive number as a is less than,
// equal to, or greater than b.
func ComparePoints(a, b Point3) int {
	return semiArbitraryCompare(a, b)
}

// semiArbitraryCompare orders two points by (root, z, y, x), matching the
// order chunk cell storage uses so that neighbor lists iterate cache-friendly.
func semiArbitraryCompare(a, b Point3) int {
	if a.Root != b.Root {
		return int(a.Root) - int(b.Root)
	}
	if a.Z != b.Z {
		if a.Z < b.Z {
			return -1
		}
		return 1
	}
	if a.Y != b.Y {
		if a.Y < b.Y {
			return -1
		}
		return 1
	}
	if a.X < b.X {
		return -1
	}
	if a.X > b.X {
		return 1
	}
	return 0
}
