package mixture

import (
	"fmt"
	"io"
	"strings"

	"github.com/montanaflynn/stats"
)

const ruleWidth = 42

// Describe writes a human-readable report of the model to w. With a
// sample it leads with the fit metrics (log-likelihood, AIC, AIC3,
// BIC) and a summary of the sample, framed by rules sized to the
// longest line; with a nil sample only a fixed-width rule and the
// component parameters are written. A metric failure aborts the report
// and is returned as-is.
func (m *Model) Describe(w io.Writer, sample []float64) error {
	if sample == nil {
		fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	} else if err := m.describeFit(w, sample); err != nil {
		return err
	}
	for i := range m.locations {
		fmt.Fprintf(w, "Component %d: weight=%-10.6g location=%-10.6g scale=%.6g\n",
			i+1, m.weights[i], m.locations[i], m.scales[i])
	}
	return nil
}

func (m *Model) describeFit(w io.Writer, sample []float64) error {
	ll, err := m.LogLikelihood(sample)
	if err != nil {
		return err
	}
	aic, err := m.AIC(sample)
	if err != nil {
		return err
	}
	aic3, err := m.AIC3(sample)
	if err != nil {
		return err
	}
	bic, err := m.BIC(sample)
	if err != nil {
		return err
	}
	mean, err := stats.Mean(sample)
	if err != nil {
		return err
	}
	sd, err := stats.StandardDeviation(sample)
	if err != nil {
		return err
	}
	median, err := stats.Median(sample)
	if err != nil {
		return err
	}
	fitMean, fitVar := m.Moments()

	lines := []string{
		fmt.Sprintf("Log-likelihood: %14.6f", ll),
		fmt.Sprintf("AIC:            %14.6f", aic),
		fmt.Sprintf("AIC3:           %14.6f", aic3),
		fmt.Sprintf("BIC:            %14.6f", bic),
		fmt.Sprintf("Sample:  n=%d  mean=%.6g  sd=%.6g  median=%.6g",
			len(sample), mean, sd, median),
		fmt.Sprintf("Mixture: mean=%.6g  variance=%.6g", fitMean, fitVar),
	}
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	rule := strings.Repeat("-", width)
	fmt.Fprintln(w, rule)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, rule)
	return nil
}
