// Package fibsphere distributes points quasi-uniformly on the unit sphere
// using the Fibonacci (golden ratio) spiral.
//
// Point i of n has azimuth theta = 2*pi*i/phi and polar angle
// acos(1 - 2(i+eps)/(n-1+2eps)). All math is float64; narrowing to float32
// is left to the caller so the distribution stays free of visual artifacts.
package fibsphere

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// GoldenRatio is (1 + sqrt(5)) / 2.
const GoldenRatio = math.Phi

// Epsilon is the float64 machine epsilon. It keeps the polar mapping away
// from the exact poles.
const Epsilon = 0x1p-52

// MinPoints is the smallest count the distribution is defined for.
const MinPoints = 2

// ErrTooFewPoints is returned when fewer than MinPoints points are requested.
var ErrTooFewPoints = errors.New("fibsphere: at least 2 points required")

// Polar is a spherical coordinate pair in radians.
type Polar struct {
	Theta float64 // azimuth, unwrapped (not reduced mod 2*pi)
	Phi   float64 // polar angle from +Z, in [0, pi]
}

// Spherical returns the spherical coordinates of point i of n.
// Callers guarantee 0 <= i < n and n >= MinPoints.
func Spherical(i, n int) Polar {
	return Polar{
		Theta: 2 * math.Pi * (float64(i) / GoldenRatio),
		Phi:   math.Acos(PolarArg(i, n)),
	}
}

// PolarArg returns the cosine of the polar angle of point i of n,
// 1 - 2(i+eps)/(n-1+2eps).
func PolarArg(i, n int) float64 {
	c := 1 - 2*(float64(i)+Epsilon)/(float64(n)-1+2*Epsilon)
	// acos domain
	return math.Max(-1, math.Min(1, c))
}

// ToCartesian converts spherical coordinates to a unit vector.
func ToCartesian(p Polar) r3.Vec {
	sinTheta, cosTheta := math.Sincos(p.Theta)
	sinPhi, cosPhi := math.Sincos(p.Phi)
	return r3.Vec{
		X: cosTheta * sinPhi,
		Y: sinTheta * sinPhi,
		Z: cosPhi,
	}
}

// Point returns point i of n on the unit sphere.
func Point(i, n int) r3.Vec {
	return ToCartesian(Spherical(i, n))
}

// Points returns all n points on the unit sphere in index order.
func Points(n int) ([]r3.Vec, error) {
	return Scaled(n, 1)
}

// Scaled returns all n points on a sphere of the given radius.
func Scaled(n int, radius float64) ([]r3.Vec, error) {
	if n < MinPoints {
		return nil, ErrTooFewPoints
	}
	pts := make([]r3.Vec, n)
	for i := range pts {
		pts[i] = r3.Scale(radius, Point(i, n))
	}
	return pts, nil
}
