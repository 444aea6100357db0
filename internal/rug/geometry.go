package rug

import "math"

// Geometry holds the coordinate-derived values shared by every style rule.
// It is computed once per cell.
type Geometry struct {
	X, Y    int
	Depth   int     // distance to the nearest edge, in cells
	CenterX float64 // width / 2
	CenterY float64 // height / 2
	NormDx  float64 // roughly [-1, 1] about the centre
	NormDy  float64
	Diamond float64 // L1 norm of (NormDx, NormDy)
	Radial  float64 // L2 norm of (NormDx, NormDy)
}

// EdgeDepth is the Chebyshev-like distance from (x, y) to the nearest edge.
func EdgeDepth(x, y, width, height int) int {
	dx := min(x, width-1-x)
	dy := min(y, height-1-y)
	return min(dx, dy)
}

// ComputeGeometry evaluates the shared primitives for (x, y).
func ComputeGeometry(x, y, width, height int) Geometry {
	cx := float64(width) / 2
	cy := float64(height) / 2
	ndx := (float64(x) - cx) / cx
	ndy := (float64(y) - cy) / cy

	return Geometry{
		X:       x,
		Y:       y,
		Depth:   EdgeDepth(x, y, width, height),
		CenterX: cx,
		CenterY: cy,
		NormDx:  ndx,
		NormDy:  ndy,
		Diamond: math.Abs(ndx) + math.Abs(ndy),
		Radial:  math.Sqrt(ndx*ndx + ndy*ndy),
	}
}
