package curve

import (
	"fmt"
	"math"
	"sort"
)

// Pillars interpolates factors log-linearly between node times.
//
// An implicit node (0, 1) anchors the curve at the valuation date. Beyond the last
// node the last segment's forward rate is extrapolated.
type Pillars struct {
	times   []float64
	factors []float64
}

// NewPillars builds a curve from strictly increasing positive times and positive factors.
func NewPillars(times, factors []float64) (*Pillars, error) {
	if len(times) == 0 || len(times) != len(factors) {
		return nil, fmt.Errorf("NewPillars: need matching non-empty times and factors (got %d, %d)", len(times), len(factors))
	}
	p := &Pillars{
		times:   make([]float64, 0, len(times)+1),
		factors: make([]float64, 0, len(times)+1),
	}
	p.times = append(p.times, 0)
	p.factors = append(p.factors, 1)
	for i, t := range times {
		if t <= p.times[len(p.times)-1] {
			return nil, fmt.Errorf("NewPillars: times must be strictly increasing and positive (index %d: %v)", i, t)
		}
		if factors[i] <= 0 {
			return nil, fmt.Errorf("NewPillars: factor at index %d must be positive", i)
		}
		p.times = append(p.times, t)
		p.factors = append(p.factors, factors[i])
	}
	return p, nil
}

// Sample returns the log-linearly interpolated factor at t.
func (p *Pillars) Sample(t float64) (float64, error) {
	if t < 0 {
		return 0, ErrNegativeTime
	}
	i := sort.SearchFloat64s(p.times, t)
	if i < len(p.times) && p.times[i] == t {
		return p.factors[i], nil
	}
	// bracket [i-1, i], or the last segment when extrapolating
	if i >= len(p.times) {
		i = len(p.times) - 1
	}
	t1, t2 := p.times[i-1], p.times[i]
	f1, f2 := p.factors[i-1], p.factors[i]
	forwardRate := math.Log(f1/f2) / (t2 - t1)
	return f1 * math.Exp(-forwardRate*(t-t1)), nil
}
