// Package meshing builds renderer-agnostic triangle geometry for chunks.
// Grounded in view.rs and the DIR_OFFSETS/cell_shape tables from the
// earlier (pre-chunk-view-system) version of the original engine's
// globe::cell_shape module.
package meshing

import "planetkit/internal/grid"

// DirOffsets gives, for each of the 12 Dir values, the (dx, dy) offset in
// units of 1/6 of a cell needed to reach the corresponding edge-midpoint or
// vertex of a hexagonal cell's top outline, starting from the +x edge and
// travelling counterclockwise.
var DirOffsets = [grid.NumDirs][2]grid.Coord{
	{3, 0},   // edge (+x)
	{2, 2},   // vertex
	{0, 3},   // edge (+y)
	{-2, 4},  // vertex
	{-3, 3},  // edge
	{-4, 2},  // vertex
	{-3, 0},  // edge (-x)
	{-2, -2}, // vertex
	{0, -3},  // edge (-y)
	{2, -4},  // vertex
	{3, -3},  // edge
	{4, -2},  // vertex
}

// CellShape names which of DirOffsets to draw as a cell's top outline.
// Full hexagons use all 6 vertices; cells on a chunk's corners or edges use
// only the part of the hexagon that lies inside the chunk (the corner
// portions include the cell center as one outline point), so that the
// portions drawn by neighboring chunks assemble into one hexagon.
type CellShape struct {
	TopOutlineDirOffsets [][2]grid.Coord
}

var (
	FullHex = CellShape{TopOutlineDirOffsets: [][2]grid.Coord{
		DirOffsets[1], DirOffsets[3], DirOffsets[5], DirOffsets[7], DirOffsets[9], DirOffsets[11],
	}}

	NorthPortion = CellShape{TopOutlineDirOffsets: [][2]grid.Coord{
		{0, 0}, DirOffsets[0], DirOffsets[1], DirOffsets[2],
	}}

	SouthPortion = CellShape{TopOutlineDirOffsets: [][2]grid.Coord{
		{0, 0}, DirOffsets[6], DirOffsets[7], DirOffsets[8],
	}}

	WestPortion = CellShape{TopOutlineDirOffsets: [][2]grid.Coord{
		{0, 0}, DirOffsets[2], DirOffsets[3], DirOffsets[5], DirOffsets[6],
	}}

	EastPortion = CellShape{TopOutlineDirOffsets: [][2]grid.Coord{
		{0, 0}, DirOffsets[8], DirOffsets[9], DirOffsets[11], DirOffsets[0],
	}}

	NorthWestPortion = CellShape{TopOutlineDirOffsets: [][2]grid.Coord{
		DirOffsets[0], DirOffsets[1], DirOffsets[3], DirOffsets[5], DirOffsets[6],
	}}

	NorthEastPortion = CellShape{TopOutlineDirOffsets: [][2]grid.Coord{
		DirOffsets[8], DirOffsets[9], DirOffsets[11], DirOffsets[1], DirOffsets[2],
	}}

	SouthWestPortion = CellShape{TopOutlineDirOffsets: [][2]grid.Coord{
		DirOffsets[2], DirOffsets[3], DirOffsets[5], DirOffsets[7], DirOffsets[8],
	}}

	SouthEastPortion = CellShape{TopOutlineDirOffsets: [][2]grid.Coord{
		DirOffsets[0], DirOffsets[6], DirOffsets[7], DirOffsets[9], DirOffsets[11],
	}}
)

// shapeFor picks which CellShape a cell at chunk-local (x, y) needs, in a
// chunk spanning [0, endX] x [0, endY], based on whether it sits on a
// corner or edge of the chunk.
func shapeFor(x, y, endX, endY grid.Coord) CellShape {
	switch {
	case x == 0 && y == 0:
		return NorthPortion
	case x == endX && y == endY:
		return SouthPortion
	case x == endX && y == 0:
		return WestPortion
	case x == 0 && y == endY:
		return EastPortion
	case y == 0:
		return NorthWestPortion
	case x == 0:
		return NorthEastPortion
	case x == endX:
		return SouthWestPortion
	case y == endY:
		return SouthEastPortion
	default:
		return FullHex
	}
}
