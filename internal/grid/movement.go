package grid

// MoveForward advances pos by one cell in direction dir, rebasing onto an
// adjacent root if the step crosses a root boundary. pos and dir must
// already be canonical: pos inside its root, dir pointing into the root or
// along its edge, never out. Behaviour is undefined otherwise.
//
// Returns ErrNotAHexEdge if dir points at a vertex.
func MoveForward(pos *Point3, dir *Dir, res [2]Coord) error {
	if !dir.PointsAtHexEdge() {
		return ErrNotAHexEdge
	}

	next, err := AdjacentPosInDir(*pos, *dir)
	if err != nil {
		return err
	}
	*pos = next

	maybeRebaseOnAdjacentRootFollowingMovement(pos, dir, res)
	return nil
}

// maybeRebaseOnAdjacentRootFollowingMovement rebases (pos, dir) into the
// neighboring root's canonical frame if pos now sits on a root boundary.
func maybeRebaseOnAdjacentRootFollowingMovement(pos *Point3, dir *Dir, res [2]Coord) {
	if !IsOnRootEdge(pos.Point2, res) {
		return
	}

	var tri Triangle
	if IsPentagon(pos.Point2, res) {
		dirWeCameFrom := dir.Opposite()
		_, tri = triangleOnPosWithClosestMidAxis(pos.Point2, dirWeCameFrom, res)
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

	// Moving north-east through north pole.
	if pos.X == 0 && pos.Y == 0 && *dir == 6 {
		*dir = 1
		transformPosIntoExitTriangle(pos, dir, res[0], tri.Exits[2])
		return
	}

	// Moving north-west through north pole.
	if pos.X == 0 && pos.Y == 0 && *dir == 8 {
		*dir = 1
		transformPosIntoExitTriangle(pos, dir, res[0], tri.Exits[3])
		return
	}

	// Sliding east around the pole.
	if nextPos.X < 0 {
		pos.X = pos.Y
		pos.Y = 0
		*dir = dir.NextHexEdgeRight()
		transformPosIntoExitTriangle(pos, dir, res[0], tri.Exits[1])
		return
	}

	// Sliding west around the pole.
	if nextPos.Y < 0 {
		pos.Y = pos.X
		pos.X = 0
		*dir = dir.NextHexEdgeLeft()
		transformPosIntoExitTriangle(pos, dir, res[0], tri.Exits[4])
		return
	}

	panic("grid: forgot a movement rebase case")
}

func transformPosIntoExitTriangle(pos *Point3, dir *Dir, rx Coord, exit Exit) {
	transformIntoExitTriangle(&pos.Point2, dir, rx, exit)
}

// StepForwardAndFaceNeighbor moves forward by one cell and, if the
// destination is a pentagon, nudges dir to the next legal direction,
// alternating lastTurnBias each time so a long straight walk does not
// systematically skew to one side around a pentagon.
func StepForwardAndFaceNeighbor(pos *Point3, dir *Dir, res [2]Coord, lastTurnBias *TurnDir) error {
	if err := MoveForward(pos, dir, res); err != nil {
		return err
	}

	if IsPentagon(pos.Point2, res) {
		*lastTurnBias = lastTurnBias.Opposite()
		*dir = lastTurnBias.ApplyOneUnit(*dir)
	}
	return nil
}

// StepBackwardAndFaceNeighbor moves backward by one cell: turn around, step
// forward, turn back. By construction this always undoes exactly what
// StepForwardAndFaceNeighbor did, including around pentagons, provided the
// same lastTurnBias trajectory is threaded through both directions.
func StepBackwardAndFaceNeighbor(pos *Point3, dir *Dir, res [2]Coord, lastTurnBias *TurnDir) error {
	turnAroundAndFaceNeighbor(pos, dir, res, *lastTurnBias)
	if IsPentagon(pos.Point2, res) {
		*lastTurnBias = lastTurnBias.Opposite()
	}

	if err := StepForwardAndFaceNeighbor(pos, dir, res, lastTurnBias); err != nil {
		return err
	}

	turnAroundAndFaceNeighbor(pos, dir, res, *lastTurnBias)
	if IsPentagon(pos.Point2, res) {
		*lastTurnBias = lastTurnBias.Opposite()
	}
	return nil
}
