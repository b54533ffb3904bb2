package cds

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/meenmo/cdslib/curve"
)

// ContingentLegInput holds everything the protection leg depends on.
type ContingentLegInput struct {
	Notional     float64
	RecoveryRate float64
	// TStart and TMaturity bound the integration horizon in years from valuation.
	TStart    float64
	TMaturity float64
	// StepsPerYear sets the partition density; partitions = round(StepsPerYear * horizon).
	StepsPerYear int
	Discount     curve.DiscountCurve
	Survival     curve.SurvivalCurve
}

// DefaultMaxPartitions caps the integration grid when a valuer has no explicit limit.
const DefaultMaxPartitions = 1_000_000

// ContingentLegValuer values the protection leg by summing, over a uniform grid,
// the discounted probability of default inside each partition. The discount
// factor is taken at the right endpoint of each partition.
type ContingentLegValuer struct {
	// MaxPartitions bounds the grid size; zero means DefaultMaxPartitions.
	MaxPartitions int
}

// Partitions returns the number of integration partitions for in.
func (v ContingentLegValuer) Partitions(in ContingentLegInput) (int, error) {
	if in.StepsPerYear <= 0 {
		return 0, fmt.Errorf("%w: integration steps per year must be positive (got %d)", ErrInvalidTerms, in.StepsPerYear)
	}
	if math.IsNaN(in.TStart) || math.IsInf(in.TStart, 0) || math.IsNaN(in.TMaturity) || math.IsInf(in.TMaturity, 0) {
		return 0, fmt.Errorf("%w: horizon [%v, %v] is not finite", ErrInvalidTerms, in.TStart, in.TMaturity)
	}
	n := math.Round(float64(in.StepsPerYear) * (in.TMaturity - in.TStart))
	if !(n >= 1) {
		return 0, fmt.Errorf("%w: horizon [%v, %v] with %d steps/year", ErrNoPartitions, in.TStart, in.TMaturity, in.StepsPerYear)
	}
	limit := v.MaxPartitions
	if limit <= 0 {
		limit = DefaultMaxPartitions
	}
	if n > float64(limit) {
		return 0, fmt.Errorf("%w: %v partitions exceed the limit of %d", ErrInvalidTerms, n, limit)
	}
	return int(n), nil
}

// Value returns N * (1-R) * sum_k df(t_k) * (Q(t_{k-1}) - Q(t_k)) for k = 1..partitions.
func (v ContingentLegValuer) Value(in ContingentLegInput) (float64, error) {
	n, err := v.Partitions(in)
	if err != nil {
		return 0, err
	}

	grid := make([]float64, n+1)
	floats.Span(grid, in.TStart, in.TMaturity)

	qPrev, err := in.Survival.Sample(grid[0])
	if err != nil {
		return 0, err
	}
	var sum float64
	for k := 1; k <= n; k++ {
		df, err := in.Discount.Sample(grid[k])
		if err != nil {
			return 0, err
		}
		q, err := in.Survival.Sample(grid[k])
		if err != nil {
			return 0, err
		}
		sum += df * (qPrev - q)
		qPrev = q
	}
	return in.Notional * (1 - in.RecoveryRate) * sum, nil
}
