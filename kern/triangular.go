package kern

import (
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	triangular Triangular
	_          Kernel = triangular // Check that Triangular respects the Kernel interface.
)

// Triangular is the triangle kernel on [loc-scale, loc+scale], peaking
// at loc.
type Triangular struct{}

func (Triangular) Density(x, loc, scale float64) float64 {
	return distuv.NewTriangle(loc-scale, loc+scale, loc, nil).Prob(x)
}
