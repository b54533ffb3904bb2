package cds_test

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meenmo/cdslib/calendar"
	"github.com/meenmo/cdslib/cds"
	"github.com/meenmo/cdslib/curve"
	"github.com/meenmo/cdslib/schedule"
)

const (
	rate     = 0.02
	hazard   = 0.05
	notional = 10_000_000.0
	recovery = 0.4
	steps    = 12
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func flatCurves() (curve.DiscountCurve, curve.SurvivalCurve) {
	return curve.NewDiscountCurve("flat", curve.FlatRate{Rate: rate}),
		curve.NewSurvivalCurve("flat", curve.FlatHazard{Hazard: hazard})
}

// quarterly returns n+1 points 0, 0.25, ..., 0.25n with dcf 0.25.
func quarterly(n int) schedule.AccrualSchedule {
	s := make(schedule.AccrualSchedule, n+1)
	for i := 1; i <= n; i++ {
		s[i] = schedule.AccrualPoint{Time: 0.25 * float64(i), DayCountFraction: 0.25}
	}
	return s
}

// fiveYearTerms has an ACT/365F horizon of exactly 5 years.
func fiveYearTerms() cds.ContractTerms {
	valuation := date(2021, time.January, 1)
	return cds.ContractTerms{
		TradeID:                 "T-1",
		Notional:                notional,
		ParSpreadBP:             decimal.NewFromInt(100),
		Direction:               cds.BuyProtection,
		StartDate:               valuation,
		MaturityDate:            valuation.AddDate(0, 0, 1825),
		ValuationDate:           valuation,
		RecoveryRate:            recovery,
		IncludeAccruedPremium:   true,
		IntegrationStepsPerYear: steps,
		Calendar:                calendar.WeekendsOnly,
		DayCount:                "ACT/360",
	}
}

// geometric returns sum_{k=1..n} x^k.
func geometric(x float64, n int) float64 {
	return x * (1 - math.Pow(x, float64(n))) / (1 - x)
}

// counting wraps a curve and counts samples.
type counting struct {
	inner curve.Curve
	calls atomic.Int64
}

func (c *counting) Sample(t float64) (float64, error) {
	c.calls.Add(1)
	return c.inner.Sample(t)
}
