package grid

// Exit describes how to leave a canonical triangle: which triangle the
// movement re-emerges relative to, and the root offset (mod NumRoots) to
// apply to get back to world space.
type Exit struct {
	TriangleIndex int
	RootOffset    int
}

// Triangle is one of the twelve canonical reference frames used to reduce
// all cross-root movement arithmetic to a single local-space computation.
// Apex is expressed in units of Rx (root x-resolution); XDir is always a
// hex-edge direction (even index). Exits are listed travelling
// anti-clockwise around the apex, starting with this same triangle.
type Triangle struct {
	Apex  [2]Coord
	XDir  Dir
	Exits [5]Exit
}

// Triangles is the static, hand-authored table of twelve canonical
// triangles, grouped in threes: one group per triangular band of the root
// quad, in the order closestTriangleToPoint checks them (x+y < Rx, y < Rx,
// x+y < Ry, then the southern band), each group holding one triangle per
// corner of that band.
var Triangles = [12]Triangle{
	// 0
	{
		Apex: [2]Coord{0, 0},
		XDir: 0,
		Exits: [5]Exit{
			{TriangleIndex: 0, RootOffset: 0},
			{TriangleIndex: 0, RootOffset: 1},
			{TriangleIndex: 0, RootOffset: 2},
			{TriangleIndex: 0, RootOffset: 3},
			{TriangleIndex: 0, RootOffset: 4},
		},
	},
	// 1
	{
		Apex: [2]Coord{1, 0},
		XDir: 4,
		Exits: [5]Exit{
			{TriangleIndex: 1, RootOffset: 0},
			{TriangleIndex: 2, RootOffset: 4},
			{TriangleIndex: 4, RootOffset: 4},
			{TriangleIndex: 6, RootOffset: 4},
			{TriangleIndex: 5, RootOffset: 0},
		},
	},
	// 2
	{
		Apex: [2]Coord{0, 1},
		XDir: 8,
		Exits: [5]Exit{
			{TriangleIndex: 2, RootOffset: 0},
			{TriangleIndex: 4, RootOffset: 0},
			{TriangleIndex: 6, RootOffset: 0},
			{TriangleIndex: 5, RootOffset: 1},
			{TriangleIndex: 1, RootOffset: 1},
		},
	},
	// 3
	{
		Apex: [2]Coord{1, 1},
		XDir: 6,
		Exits: [5]Exit{
			{TriangleIndex: 3, RootOffset: 0},
			{TriangleIndex: 8, RootOffset: 4},
			{TriangleIndex: 10, RootOffset: 4},
			{TriangleIndex: 11, RootOffset: 0},
			{TriangleIndex: 7, RootOffset: 0},
		},
	},
	// 4
	{
		Apex: [2]Coord{0, 1},
		XDir: 10,
		Exits: [5]Exit{
			{TriangleIndex: 4, RootOffset: 0},
			{TriangleIndex: 6, RootOffset: 0},
			{TriangleIndex: 5, RootOffset: 1},
			{TriangleIndex: 1, RootOffset: 1},
			{TriangleIndex: 2, RootOffset: 0},
		},
	},
	// 5
	{
		Apex: [2]Coord{1, 0},
		XDir: 2,
		Exits: [5]Exit{
			{TriangleIndex: 5, RootOffset: 0},
			{TriangleIndex: 1, RootOffset: 0},
			{TriangleIndex: 2, RootOffset: 4},
			{TriangleIndex: 4, RootOffset: 4},
			{TriangleIndex: 6, RootOffset: 4},
		},
	},
	// 6
	{
		Apex: [2]Coord{0, 1},
		XDir: 0,
		Exits: [5]Exit{
			{TriangleIndex: 6, RootOffset: 0},
			{TriangleIndex: 5, RootOffset: 1},
			{TriangleIndex: 1, RootOffset: 1},
			{TriangleIndex: 2, RootOffset: 0},
			{TriangleIndex: 4, RootOffset: 0},
		},
	},
	// 7
	{
		Apex: [2]Coord{1, 1},
		XDir: 4,
		Exits: [5]Exit{
			{TriangleIndex: 7, RootOffset: 0},
			{TriangleIndex: 3, RootOffset: 0},
			{TriangleIndex: 8, RootOffset: 4},
			{TriangleIndex: 10, RootOffset: 4},
			{TriangleIndex: 11, RootOffset: 0},
		},
	},
	// 8
	{
		Apex: [2]Coord{0, 2},
		XDir: 8,
		Exits: [5]Exit{
			{TriangleIndex: 8, RootOffset: 0},
			{TriangleIndex: 10, RootOffset: 0},
			{TriangleIndex: 11, RootOffset: 1},
			{TriangleIndex: 7, RootOffset: 1},
			{TriangleIndex: 3, RootOffset: 1},
		},
	},
	// 9
	{
		Apex: [2]Coord{1, 2},
		XDir: 6,
		Exits: [5]Exit{
			{TriangleIndex: 9, RootOffset: 0},
			{TriangleIndex: 9, RootOffset: 4},
			{TriangleIndex: 9, RootOffset: 3},
			{TriangleIndex: 9, RootOffset: 2},
			{TriangleIndex: 9, RootOffset: 1},
		},
	},
	// 10
	{
		Apex: [2]Coord{0, 2},
		XDir: 10,
		Exits: [5]Exit{
			{TriangleIndex: 10, RootOffset: 0},
			{TriangleIndex: 11, RootOffset: 1},
			{TriangleIndex: 7, RootOffset: 1},
			{TriangleIndex: 3, RootOffset: 1},
			{TriangleIndex: 8, RootOffset: 0},
		},
	},
	// 11
	{
		Apex: [2]Coord{1, 1},
		XDir: 2,
		Exits: [5]Exit{
			{TriangleIndex: 11, RootOffset: 0},
			{TriangleIndex: 7, RootOffset: 0},
			{TriangleIndex: 3, RootOffset: 0},
			{TriangleIndex: 8, RootOffset: 4},
			{TriangleIndex: 10, RootOffset: 4},
		},
	},
}
