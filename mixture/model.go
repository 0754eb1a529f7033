package mixture

import (
	"errors"
	"fmt"
	"math"

	"github.com/the-sushi/mixfit/kern"
	"gonum.org/v1/gonum/floats"
)

var (
	ErrDimensionMismatch  = errors.New("weights, locations and scales must have equal non-zero length")
	ErrEmptySample        = errors.New("sample contains no observations")
	ErrNonPositiveDensity = errors.New("mixture density is not positive")
)

// Model is a finite univariate mixture: a weighted sum of K kernel
// densities, each with its own location and scale parameter. A Model
// is immutable once constructed and safe for concurrent use.
type Model struct {
	weights   []float64
	locations []float64
	scales    []float64
	kernel    kern.Kernel
}

// New builds a mixture model from externally fitted parameters. The
// three slices must have equal length K >= 1; anything else fails with
// ErrDimensionMismatch. The weights conventionally are non-negative
// and sum to one, and every scale must be positive. Neither is checked
// here: the caller owns those contracts, and the metrics compute
// whatever the supplied values imply.
func New(weights, locations, scales []float64, k kern.Kernel) (*Model, error) {
	if len(weights) == 0 || len(weights) != len(locations) || len(weights) != len(scales) {
		return nil, fmt.Errorf("%w: %d weights, %d locations, %d scales",
			ErrDimensionMismatch, len(weights), len(locations), len(scales))
	}
	if k == nil {
		return nil, errors.New("nil kernel")
	}
	return &Model{
		weights:   append([]float64(nil), weights...),
		locations: append([]float64(nil), locations...),
		scales:    append([]float64(nil), scales...),
		kernel:    k,
	}, nil
}

func (m *Model) NumComponents() int {
	return len(m.locations)
}

// NumParams returns the number of free parameters, 3K - 1: K-1 free
// weights (they sum to one), K locations and K scales.
func (m *Model) NumParams() int {
	return 3*m.NumComponents() - 1
}

func (m *Model) Weights() []float64 {
	return append([]float64(nil), m.weights...)
}

func (m *Model) Locations() []float64 {
	return append([]float64(nil), m.locations...)
}

func (m *Model) Scales() []float64 {
	return append([]float64(nil), m.scales...)
}

// Density evaluates the mixture density at x:
//
//	f(x) = sum_i w_i * k(x, loc_i, scale_i)
func (m *Model) Density(x float64) float64 {
	total := 0.0
	for i, w := range m.weights {
		total += w * m.kernel.Density(x, m.locations[i], m.scales[i])
	}
	return total
}

// LogDensity returns log f(x). A mixture density that is zero,
// negative or NaN at x has no logarithm; that fails with
// ErrNonPositiveDensity rather than returning -Inf or NaN, and the
// same policy holds for every metric built on top.
func (m *Model) LogDensity(x float64) (float64, error) {
	d := m.Density(x)
	if d <= 0 || math.IsNaN(d) {
		return 0, fmt.Errorf("%w: density %g at observation %g", ErrNonPositiveDensity, d, x)
	}
	return math.Log(d), nil
}

// LogLikelihood returns the sum over the sample of the log mixture
// density at each observation. Empty samples fail with ErrEmptySample.
func (m *Model) LogLikelihood(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, ErrEmptySample
	}
	total := 0.0
	for _, x := range sample {
		ld, err := m.LogDensity(x)
		if err != nil {
			return 0, err
		}
		total += ld
	}
	return total, nil
}

// Moments returns the mean and variance of the mixture, treating each
// component's scale as its standard deviation:
//
//	mean = sum_i w_i * loc_i
//	var  = sum_i w_i * (scale_i^2 + loc_i^2) - mean^2
func (m *Model) Moments() (mean, variance float64) {
	mean = floats.Dot(m.weights, m.locations)
	for i, w := range m.weights {
		mu := m.locations[i]
		sigma := m.scales[i]
		variance += w * (sigma*sigma + mu*mu)
	}
	variance -= mean * mean
	return mean, variance
}
