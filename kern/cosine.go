package kern

import (
	"math"
)

var (
	cosine Cosine
	_      Kernel = cosine // Check that Cosine respects the Kernel interface.
)

// Cosine is the raised-cosine kernel on [loc-scale, loc+scale], coded
// directly like Epanechnikov.
type Cosine struct{}

func (Cosine) Density(x, loc, scale float64) float64 {
	u := (x - loc) / scale
	if u <= -1 || u >= 1 {
		return 0.0
	}
	// f(u) = pi/4 * cos(pi*u/2), rescaled by the bandwidth.
	return math.Pi / 4 * math.Cos(math.Pi*u/2) / scale
}
