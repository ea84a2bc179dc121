package grid

// TurnByOneHexEdge rotates dir by one hex edge (two units) in turnDir and
// rebases onto an adjacent root if pos is now on a root edge. Turning never
// changes pos's (x, y) within its own root's canonical frame except via
// that rebase. Returns ErrNotAHexEdge if dir does not point at a hex edge.
func TurnByOneHexEdge(pos *Point3, dir *Dir, res [2]Coord, turnDir TurnDir) error {
	if !dir.PointsAtHexEdge() {
		return ErrNotAHexEdge
	}

	*dir = turnDir.ApplyTwoUnits(*dir)
	maybeRebaseOnAdjacentRootFollowingRotation(pos, dir, res)
	return nil
}

func maybeRebaseOnAdjacentRootFollowingRotation(pos *Point3, dir *Dir, res [2]Coord) {
	if !IsOnRootEdge(pos.Point2, res) {
		return
	}

	var tri Triangle
	if IsPentagon(pos.Point2, res) {
		_, tri = triangleOnPosWithClosestMidAxis(pos.Point2, *dir, res)
	} else {
		_, tri = closestTriangleToPoint(pos.Point2, res)
	}

	localP2, localDir := worldToLocal(pos.Point2, *dir, res[0], tri)
	pos.Point2 = localP2
	*dir = localDir

	nextPos, err := AdjacentPosInDir(*pos, *dir)
	if err != nil {
		panic("grid: caller should have assured we're pointing at a hex edge")
	}

	stillInSameQuad := nextPos.X >= 0 && nextPos.Y >= 0
	if stillInSameQuad {
		transformPosIntoExitTriangle(pos, dir, res[0], tri.Exits[0])
		return
	}

	// Turning left (pointing more east) around the pole.
	if nextPos.X < 0 {
		pos.X = pos.Y
		pos.Y = 0
		*dir = dir.NextHexEdgeRight()
		transformPosIntoExitTriangle(pos, dir, res[0], tri.Exits[1])
		return
	}

	// Turning right (pointing more west) around the pole.
	if nextPos.Y < 0 {
		pos.Y = pos.X
		pos.X = 0
		*dir = dir.NextHexEdgeLeft()
		transformPosIntoExitTriangle(pos, dir, res[0], tri.Exits[4])
		return
	}

	panic("grid: forgot a rotation rebase case")
}

// turnAroundAndFaceNeighbor turns dir 180 degrees: two hex-edge turns on a
// pentagon (using lastTurnBias both times so the same route is retraced),
// or three hex-edge turns left otherwise (an even number of edges is
// impossible away from a pentagon, so the round trip goes left-left-left).
func turnAroundAndFaceNeighbor(pos *Point3, dir *Dir, res [2]Coord, lastTurnBias TurnDir) {
	if IsPentagon(pos.Point2, res) {
		_ = TurnByOneHexEdge(pos, dir, res, lastTurnBias)
		_ = TurnByOneHexEdge(pos, dir, res, lastTurnBias)
	} else {
		_ = TurnByOneHexEdge(pos, dir, res, TurnLeft)
		_ = TurnByOneHexEdge(pos, dir, res, TurnLeft)
		_ = TurnByOneHexEdge(pos, dir, res, TurnLeft)
	}
}
