package grid

// basisOffsets returns the two neighbor-offset vectors that form the local
// (x, y) basis for a triangle with the given x-axis direction: the offsets
// at edges xDir/2 and (xDir+2 mod 12)/2. These six offsets are a unimodular
// (determinant 1) basis, so the inverse transform needs no division.
func basisOffsets(xDir Dir) (xv, yv [2]Coord) {
	xv = neighborOffsets[int(xDir)/2]
	yDir := Dir((int(xDir) + 2) % NumDirs)
	yv = neighborOffsets[int(yDir)/2]
	return
}

// worldToLocal translates p by -apex*Rx and rotates by -xDir, expressing p
// and d relative to tri's local basis.
func worldToLocal(p Point2, d Dir, rx Coord, tri Triangle) (Point2, Dir) {
	translated := Point2{
		Root: p.Root,
		X:    p.X - tri.Apex[0]*rx,
		Y:    p.Y - tri.Apex[1]*rx,
	}
	xv, yv := basisOffsets(tri.XDir)
	// Invert [xv yv] (columns) via cofactors, exploiting det([xv yv]) == 1.
	localX := yv[1]*translated.X - yv[0]*translated.Y
	localY := -xv[1]*translated.X + xv[0]*translated.Y
	localD := Dir((int(d) - int(tri.XDir) + 2*NumDirs) % NumDirs)
	return Point2{Root: p.Root, X: localX, Y: localY}, localD
}

// localToWorld is the inverse of worldToLocal: rotates by +xDir and
// translates by +apex*Rx.
func localToWorld(p Point2, d Dir, rx Coord, tri Triangle) (Point2, Dir) {
	xv, yv := basisOffsets(tri.XDir)
	worldX := xv[0]*p.X + yv[0]*p.Y
	worldY := xv[1]*p.X + yv[1]*p.Y
	world := Point2{
		Root: p.Root,
		X:    worldX + tri.Apex[0]*rx,
		Y:    worldY + tri.Apex[1]*rx,
	}
	worldD := Dir((int(d) + int(tri.XDir)) % NumDirs)
	return world, worldD
}
