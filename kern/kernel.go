package kern

// A Kernel evaluates a per-component probability density at an
// observation, given the component's location and scale parameters.
// Implementations must be pure: no state, no side effects, and a
// non-negative result for every positive scale.
type Kernel interface {
	Density(x, loc, scale float64) float64
}

// Func adapts an ordinary function to the Kernel interface, so a
// caller-supplied closure can be used directly as a mixture kernel.
type Func func(x, loc, scale float64) float64

func (f Func) Density(x, loc, scale float64) float64 {
	return f(x, loc, scale)
}
