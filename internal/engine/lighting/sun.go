// Package lighting provides directional light parameters for shading.
package lighting

import "math"

// Sun is a directional light.
type Sun struct {
	Direction [3]float32 // normalized, pointing towards the light
	Ambient   float32    // minimum brightness of faces turned away
}

// DefaultSun lights from above and to the side so the three faces turned
// towards it all get different brightness.
func DefaultSun() Sun {
	return Sun{
		Direction: SunDirection(35, 50),
		Ambient:   0.25,
	}
}

// SunDirection converts longitude/latitude in degrees to a light direction.
// Longitude rotates around Y (0 points at +Z), latitude is elevation above
// the XZ plane.
func SunDirection(longitude, latitude float64) [3]float32 {
	lonRad := longitude * math.Pi / 180.0
	latRad := latitude * math.Pi / 180.0

	x := float32(math.Cos(latRad) * math.Sin(lonRad))
	y := float32(math.Sin(latRad))
	z := float32(math.Cos(latRad) * math.Cos(lonRad))

	return [3]float32{x, y, z}
}

// Lambert returns the brightness of a surface with the given unit normal.
// It matches the fragment shader so shading can be checked on the CPU.
func (s Sun) Lambert(normal [3]float32) float32 {
	d := normal[0]*s.Direction[0] + normal[1]*s.Direction[1] + normal[2]*s.Direction[2]
	if d < 0 {
		d = 0
	}
	return s.Ambient + d*(1-s.Ambient)
}
