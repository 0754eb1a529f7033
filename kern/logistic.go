package kern

import (
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	logistic Logistic
	_        Kernel = logistic // Check that Logistic respects the Kernel interface.
)

// Logistic is the logistic density kernel.
type Logistic struct{}

func (Logistic) Density(x, loc, scale float64) float64 {
	return distuv.Logistic{Mu: loc, S: scale}.Prob(x)
}
