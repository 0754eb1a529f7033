package kern

import (
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	gaussian Gaussian
	_        Kernel = gaussian // Check that Gaussian respects the Kernel interface.
)

// Gaussian is the normal density kernel; scale is the standard
// deviation.
type Gaussian struct{}

func (Gaussian) Density(x, loc, scale float64) float64 {
	return distuv.Normal{Mu: loc, Sigma: scale}.Prob(x)
}
