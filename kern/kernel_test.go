package kern

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeakDensities(t *testing.T) {
	// Every kernel peaks at the component location; the peak heights
	// are standard closed forms.
	tests := []struct {
		name   string
		kernel Kernel
		scale  float64
		peak   float64
	}{
		{"gaussian", Gaussian{}, 1.0, 1 / math.Sqrt(2*math.Pi)},
		{"gaussian wide", Gaussian{}, 2.0, 1 / (2 * math.Sqrt(2*math.Pi))},
		{"laplace", Laplace{}, 1.0, 0.5},
		{"logistic", Logistic{}, 1.0, 0.25},
		{"cauchy", NewStudentsT(1), 1.0, 1 / math.Pi},
		{"uniform", Uniform{}, 2.0, 0.25},
		{"triangular", Triangular{}, 1.0, 1.0},
		{"epanechnikov", Epanechnikov{}, 1.0, 0.75},
		{"cosine", Cosine{}, 1.0, math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.peak, tt.kernel.Density(3.0, 3.0, tt.scale), 1e-12)
		})
	}
}

func TestSymmetry(t *testing.T) {
	kernels := []Kernel{
		Gaussian{}, Laplace{}, Logistic{}, NewStudentsT(4),
		Uniform{}, Triangular{}, Epanechnikov{}, Cosine{},
	}
	for _, k := range kernels {
		for _, d := range []float64{0.1, 0.5, 0.9, 1.7} {
			require.InDelta(t, k.Density(2+d, 2, 1.5), k.Density(2-d, 2, 1.5), 1e-12)
		}
	}
}

func TestBoundedSupport(t *testing.T) {
	// The compact kernels vanish outside loc +/- scale.
	for _, k := range []Kernel{Uniform{}, Triangular{}, Epanechnikov{}, Cosine{}} {
		assert.Zero(t, k.Density(2.01, 0, 2))
		assert.Zero(t, k.Density(-2.5, 0, 2))
		assert.Positive(t, k.Density(1.9, 0, 2))
	}
}

func TestNonNegative(t *testing.T) {
	kernels := []Kernel{
		Gaussian{}, Laplace{}, Logistic{}, NewStudentsT(2),
		Uniform{}, Triangular{}, Epanechnikov{}, Cosine{},
	}
	for _, k := range kernels {
		for x := -5.0; x <= 5.0; x += 0.25 {
			v := k.Density(x, 0.5, 1.25)
			require.False(t, math.IsNaN(v))
			require.GreaterOrEqual(t, v, 0.0)
		}
	}
}

func TestFuncAdapter(t *testing.T) {
	var k Kernel = Func(func(x, loc, scale float64) float64 {
		return scale * (x - loc)
	})
	assert.Equal(t, 6.0, k.Density(5, 2, 2))
}
