package kern

import (
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	laplace Laplace
	_       Kernel = laplace // Check that Laplace respects the Kernel interface.
)

// Laplace is the double-exponential density kernel.
type Laplace struct{}

func (Laplace) Density(x, loc, scale float64) float64 {
	return distuv.Laplace{Mu: loc, Scale: scale}.Prob(x)
}
