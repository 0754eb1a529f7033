package kern

var (
	epanechnikov Epanechnikov
	_            Kernel = epanechnikov // Check that Epanechnikov respects the Kernel interface.
)

// Epanechnikov is the parabolic kernel on [loc-scale, loc+scale]. It is
// not in gonum's distuv, so the closed form is coded directly.
type Epanechnikov struct{}

func (Epanechnikov) Density(x, loc, scale float64) float64 {
	u := (x - loc) / scale
	if u <= -1 || u >= 1 {
		return 0.0
	}
	// f(u) = 3/4 * (1 - u^2), rescaled by the bandwidth.
	return 0.75 * (1 - u*u) / scale
}
