package cds

import (
	"github.com/meenmo/cdslib/curve"
	"github.com/meenmo/cdslib/schedule"
)

// PremiumLegPV splits the premium leg into its survival-weighted coupons and the
// accrued premium paid on default.
type PremiumLegPV struct {
	Principal float64
	Accrued   float64
	Total     float64
	// Annuity is the leg value per unit spread and unit notional (RPV01).
	Annuity float64
}

// PremiumLegValuer values the fee leg from a pre-built accrual schedule.
type PremiumLegValuer struct{}

// Annuity returns the risky annuity per unit notional and unit spread: the
// survival-weighted, discounted day-count fractions, plus the midpoint accrued
// term when includeAccrued is set.
//
// Entry 0 of the schedule carries no cashflow. A schedule with fewer than two
// entries has no coupons and yields zero without sampling either curve.
func (PremiumLegValuer) Annuity(sched schedule.AccrualSchedule, disc curve.DiscountCurve, surv curve.SurvivalCurve, includeAccrued bool) (principal, accrued float64, err error) {
	if len(sched) < 2 {
		return 0, 0, nil
	}

	var qPrev float64
	if includeAccrued {
		if qPrev, err = surv.Sample(sched[0].Time); err != nil {
			return 0, 0, err
		}
	}

	for i := 1; i < len(sched); i++ {
		t := sched[i].Time
		dcf := sched[i].DayCountFraction

		df, err := disc.Sample(t)
		if err != nil {
			return 0, 0, err
		}
		q, err := surv.Sample(t)
		if err != nil {
			return 0, 0, err
		}

		principal += dcf * df * q
		if includeAccrued {
			accrued += 0.5 * dcf * df * (qPrev - q)
			qPrev = q
		}
	}
	return principal, accrued, nil
}

// Value returns the premium leg PV: spread * notional * (principal + accrued).
func (v PremiumLegValuer) Value(sched schedule.AccrualSchedule, notional, spread float64, disc curve.DiscountCurve, surv curve.SurvivalCurve, includeAccrued bool) (PremiumLegPV, error) {
	principal, accrued, err := v.Annuity(sched, disc, surv, includeAccrued)
	if err != nil {
		return PremiumLegPV{}, err
	}
	scale := spread * notional
	return PremiumLegPV{
		Principal: scale * principal,
		Accrued:   scale * accrued,
		Total:     scale * (principal + accrued),
		Annuity:   principal + accrued,
	}, nil
}
