package grid

// transformIntoExitTriangle applies an Exit: rebases p's root by the exit's
// offset, then maps (p, d) from the exit triangle's local frame back to
// world space.
func transformIntoExitTriangle(p *Point2, d *Dir, rx Coord, exit Exit) {
	tri := Triangles[exit.TriangleIndex]
	p.Root = Root((int(p.Root) + exit.RootOffset) % NumRoots)
	newPos, newDir := localToWorld(*p, *d, rx, tri)
	*p = newPos
	*d = newDir
}

func abs64(v Coord) Coord {
	if v < 0 {
		return -v
	}
	return v
}

// closestTriangleToPoint picks the triangle with the closest apex oriented
// such that p lies between its x-axis and y-axis. Not appropriate for
// points on a pentagon; see triangleOnPosWithClosestMidAxis.
func closestTriangleToPoint(p Point2, res [2]Coord) (int, Triangle) {
	var lo, hi int
	switch {
	case p.X+p.Y < res[0]:
		lo, hi = 0, 3
	case p.Y < res[0]:
		lo, hi = 3, 6
	case p.X+p.Y < res[1]:
		lo, hi = 6, 9
	default:
		lo, hi = 9, 12
	}

	bestIdx := lo
	var bestDist Coord = -1
	for i := lo; i < hi; i++ {
		tri := Triangles[i]
		apexX := tri.Apex[0] * res[0]
		apexY := tri.Apex[1] * res[0]
		dist := abs64(p.X-apexX) + abs64(p.Y-apexY)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			bestIdx = i
		}
	}
	return bestIdx, Triangles[bestIdx]
}

// triangleOnPosWithClosestMidAxis finds, among the 1-3 triangles whose apex
// sits exactly on p (p must be a pentagon), the one whose "mid axis"
// (half-way between its x-axis and y-axis) is angularly closest to dir.
func triangleOnPosWithClosestMidAxis(p Point2, dir Dir, res [2]Coord) (int, Triangle) {
	bestIdx := -1
	bestAngle := Coord(1 << 30)
	for i, tri := range Triangles {
		apexX := tri.Apex[0] * res[0]
		apexY := tri.Apex[1] * res[0]
		if p.X != apexX || p.Y != apexY {
			continue
		}
		midAxis := (int(tri.XDir) + 1) % NumDirs
		a := Coord(midAxis) - Coord(dir)
		if a > 6 {
			a -= 12
		} else if a < -6 {
			a += 12
		}
		if a < 0 {
			a = -a
		}
		if bestIdx == -1 || a < bestAngle {
			bestAngle = a
			bestIdx = i
		}
	}
	return bestIdx, Triangles[bestIdx]
}

// IsPentagon reports whether p is one of the six pentagons in its root quad
// (there are twelve total across the planet: two per root at the poles are
// shared, the rest are tropic vertices shared between two or more roots).
func IsPentagon(p Point2, res [2]Coord) bool {
	isNorth := p.X == 0 && p.Y == 0
	isNorthEast := p.X == 0 && p.Y == res[0]
	isEast := p.X == 0 && p.Y == res[1]
	isWest := p.X == res[0] && p.Y == 0
	isSouthWest := p.X == res[0] && p.Y == res[0]
	isSouth := p.X == res[0] && p.Y == res[1]
	return isNorth || isNorthEast || isEast || isWest || isSouthWest || isSouth
}

// IsOnRootEdge reports whether p lies on the boundary of its root quad.
func IsOnRootEdge(p Point2, res [2]Coord) bool {
	return p.X == 0 || p.Y == 0 || p.X == res[0] || p.Y == res[1]
}
