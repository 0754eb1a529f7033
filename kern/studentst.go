package kern

import (
	"gonum.org/v1/gonum/stat/distuv"
)

var _ Kernel = StudentsT{} // Check that StudentsT respects the Kernel interface.

// StudentsT is the location-scale Student's t density kernel. The
// degrees of freedom are fixed per kernel, not per component; with
// nu = 1 it is the Cauchy kernel.
type StudentsT struct {
	nu float64
}

func NewStudentsT(nu float64) StudentsT {
	return StudentsT{nu: nu}
}

func (k StudentsT) Density(x, loc, scale float64) float64 {
	return distuv.StudentsT{Mu: loc, Sigma: scale, Nu: k.nu}.Prob(x)
}
