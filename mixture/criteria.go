package mixture

import (
	"math"
)

// AIC returns Akaike's information criterion,
// 2*NumParams - 2*LogLikelihood. Lower is better.
func (m *Model) AIC(sample []float64) (float64, error) {
	ll, err := m.LogLikelihood(sample)
	if err != nil {
		return 0, err
	}
	return 2*float64(m.NumParams()) - 2*ll, nil
}

// AIC3 returns the AIC variant with penalty coefficient 3 instead of
// 2, a correction for mixtures where plain AIC tends to pick too many
// components.
func (m *Model) AIC3(sample []float64) (float64, error) {
	ll, err := m.LogLikelihood(sample)
	if err != nil {
		return 0, err
	}
	return 3*float64(m.NumParams()) - 2*ll, nil
}

// BIC returns the Bayesian information criterion,
// log(n)*NumParams - 2*LogLikelihood. The empty-sample case, where
// log(n) is undefined, fails with ErrEmptySample.
func (m *Model) BIC(sample []float64) (float64, error) {
	ll, err := m.LogLikelihood(sample)
	if err != nil {
		return 0, err
	}
	return math.Log(float64(len(sample)))*float64(m.NumParams()) - 2*ll, nil
}
