package kern

import (
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	uniform Uniform
	_       Kernel = uniform // Check that Uniform respects the Kernel interface.
)

// Uniform is the box kernel: constant density on [loc-scale, loc+scale]
// and zero outside.
type Uniform struct{}

func (Uniform) Density(x, loc, scale float64) float64 {
	return distuv.Uniform{Min: loc - scale, Max: loc + scale}.Prob(x)
}
