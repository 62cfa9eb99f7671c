package fibsphere

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

type cellKey [3]int

// MinSpacing returns the smallest distance between any two points and the
// indices of that pair. Points are bucketed into a uniform grid with the
// given cell size, so only pairs closer than cell are guaranteed to be found;
// if no pair is closer than cell, +Inf is returned with indices -1.
func MinSpacing(pts []r3.Vec, cell float64) (dist float64, a, b int) {
	dist, a, b = math.Inf(1), -1, -1
	if cell <= 0 || len(pts) < 2 {
		return dist, a, b
	}

	grid := make(map[cellKey][]int, len(pts))
	key := func(p r3.Vec) cellKey {
		return cellKey{
			int(math.Floor(p.X / cell)),
			int(math.Floor(p.Y / cell)),
			int(math.Floor(p.Z / cell)),
		}
	}

	for i, p := range pts {
		k := key(p)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					for _, j := range grid[cellKey{k[0] + dx, k[1] + dy, k[2] + dz}] {
						d := r3.Norm(r3.Sub(p, pts[j]))
						if d < dist && d < cell {
							dist, a, b = d, j, i
						}
					}
				}
			}
		}
		grid[k] = append(grid[k], i)
	}
	return dist, a, b
}

// MeanSpacing is the expected nearest-neighbour scale for n points spread
// over a sphere of the given radius: sqrt(4*pi*r^2 / n).
func MeanSpacing(n int, radius float64) float64 {
	if n <= 0 {
		return 0
	}
	return math.Sqrt(4 * math.Pi * radius * radius / float64(n))
}
