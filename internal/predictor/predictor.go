// Package predictor exposes the pump failure risk scorer consumed by the
// prediction endpoint.  The scorer is a fixed logistic model over four
// telemetry features; the service treats it as a black box and never
// retrains or persists it.
package predictor

import "math"

// Scorer maps pump telemetry to a binary failure risk and a probability.
type Scorer struct {
	weights [4]float64 // usage_hours, temperature, vibration, breakdown_count
	bias    float64
}

// NewScorer returns the default scorer with coefficients fitted offline
// against historical breakdown data.
func NewScorer() *Scorer {
	return &Scorer{
		weights: [4]float64{0.01, 0.1, 1.0, 0.8},
		bias:    -15.45,
	}
}

// Result carries the scorer output: Risk is 1 when the failure
// probability crosses 0.5, and Probability is the raw model output
// rounded to two decimals.
type Result struct {
	Risk        int
	Probability float64
}

// Score evaluates the model on one telemetry sample.
func (s *Scorer) Score(usageHours, temperature, vibration float64, breakdownCount int) Result {
	z := s.bias +
		s.weights[0]*usageHours +
		s.weights[1]*temperature +
		s.weights[2]*vibration +
		s.weights[3]*float64(breakdownCount)
	p := 1.0 / (1.0 + math.Exp(-z))

	risk := 0
	if p >= 0.5 {
		risk = 1
	}
	return Result{Risk: risk, Probability: math.Round(p*100) / 100}
}
