package grid

// EquivalentPoints returns every representation of point across roots:
// itself, plus 0-4 equivalents on neighboring roots depending on which of
// the nine regions (poles, four edge types on either side, interior) it
// falls into. The returned slice always includes point itself. Order is
// arbitrary; callers that need a stable order should sort by a total order
// such as (root, z, y, x).
func EquivalentPoints(point Point3, rootRes [2]Coord) []Point3 {
	switch {
	case point.X == 0 && point.Y == 0:
		return northPolePoints(point)
	case point.X == rootRes[0] && point.Y == rootRes[1]:
		return southPolePoints(point, rootRes)
	case point.X == 0 && point.Y < rootRes[0]:
		return eastArcticPoints(point)
	case point.Y == 0:
		return westArcticPoints(point)
	case point.X == 0 && point.Y >= rootRes[0]:
		return eastTropicsPoints(point, rootRes)
	case point.X == rootRes[0] && point.Y < rootRes[0]:
		return westTropicsPoints(point, rootRes)
	case point.Y == rootRes[1]:
		return eastAntarcticPoints(point, rootRes)
	case point.X == rootRes[0] && point.Y >= rootRes[0]:
		return westAntarcticPoints(point, rootRes)
	default:
		return []Point3{point}
	}
}

func northPolePoints(point Point3) []Point3 {
	out := make([]Point3, 0, NumRoots)
	for r := Root(0); r < NumRoots; r++ {
		out = append(out, NewPoint3(r, 0, 0, point.Z))
	}
	return out
}

func southPolePoints(point Point3, rootRes [2]Coord) []Point3 {
	out := make([]Point3, 0, NumRoots)
	for r := Root(0); r < NumRoots; r++ {
		out = append(out, NewPoint3(r, rootRes[0], rootRes[1], point.Z))
	}
	return out
}

// eastArcticPoints: y-axis in arctic maps to x-axis in the next root east.
func eastArcticPoints(point Point3) []Point3 {
	return []Point3{
		point,
		NewPoint3(point.Root.NextEast(), point.Y, 0, point.Z),
	}
}

// westArcticPoints: x-axis in arctic maps to y-axis in the next root west.
func westArcticPoints(point Point3) []Point3 {
	return []Point3{
		point,
		NewPoint3(point.Root.NextWest(), 0, point.X, point.Z),
	}
}

// eastTropicsPoints: y-axis in tropics maps to y-axis in the next root
// east, offset and at max-x.
func eastTropicsPoints(point Point3, rootRes [2]Coord) []Point3 {
	return []Point3{
		point,
		NewPoint3(point.Root.NextEast(), rootRes[0], point.Y-rootRes[0], point.Z),
	}
}

// westTropicsPoints: y-axis at max-x in tropics maps to y-axis in the next
// root west, offset and at min-x.
func westTropicsPoints(point Point3, rootRes [2]Coord) []Point3 {
	return []Point3{
		point,
		NewPoint3(point.Root.NextWest(), 0, point.Y+rootRes[0], point.Z),
	}
}

// eastAntarcticPoints: x-axis at max-y in antarctic maps to y-axis in the
// next root east, offset and at max-x.
func eastAntarcticPoints(point Point3, rootRes [2]Coord) []Point3 {
	return []Point3{
		point,
		NewPoint3(point.Root.NextEast(), rootRes[0], point.X+rootRes[0], point.Z),
	}
}

// westAntarcticPoints: y-axis in antarctic maps to x-axis in the next root
// west, offset and at max-y.
func westAntarcticPoints(point Point3, rootRes [2]Coord) []Point3 {
	return []Point3{
		point,
		NewPoint3(point.Root.NextWest(), point.Y-rootRes[0], rootRes[1], point.Z),
	}
}

// ToOwningRoot returns the canonical representation of p: the equivalent
// point on whichever root owns the underlying cell data. This is the only
// representation that may be used for authoritative writes.
func ToOwningRoot(p Point3, rootRes [2]Coord) Point3 {
	endX := rootRes[0]
	endY := rootRes[1]
	halfY := rootRes[1] / 2

	switch {
	case p.X == 0 && p.Y == 0:
		// North pole, owned by root 0.
		return NewPoint3(0, 0, 0, p.Z)
	case p.X == endX && p.Y == endY:
		// South pole, owned by the last root.
		return NewPoint3(NumRoots-1, endX, endY, p.Z)
	case p.Y == 0:
		// North-west edge: owned by next root west's north-east edge.
		return NewPoint3(p.Root.NextWest(), 0, p.X, p.Z)
	case p.X == endX && p.Y < halfY:
		// Mid-west upper edge: owned by next root west's mid-east edge.
		return NewPoint3(p.Root.NextWest(), 0, halfY+p.Y, p.Z)
	case p.X == endX:
		// South-west edge: owned by next root west's south-east edge.
		return NewPoint3(p.Root.NextWest(), p.Y-halfY, endY, p.Z)
	default:
		return p
	}
}
