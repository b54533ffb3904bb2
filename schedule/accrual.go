package schedule

import (
	"fmt"
	"time"

	"github.com/meenmo/cdslib/utils"
)

// TimeBasis is the day count used to place schedule dates on the curve time axis.
const TimeBasis = utils.Act365F

// AccrualPoint is one schedule entry: a time in years from the valuation date and
// the day-count fraction of the accrual period ending at that time.
type AccrualPoint struct {
	Time             float64
	DayCountFraction float64
}

// AccrualSchedule is ordered by strictly increasing time. Entry 0 is the
// effective-date anchor; it carries no cashflow and its fraction is ignored.
type AccrualSchedule []AccrualPoint

// Validate checks ordering and fractions.
func (s AccrualSchedule) Validate() error {
	for i, p := range s {
		if p.Time < 0 {
			return fmt.Errorf("AccrualSchedule: entry %d has negative time %v", i, p.Time)
		}
		if i == 0 {
			continue
		}
		if p.Time <= s[i-1].Time {
			return fmt.Errorf("AccrualSchedule: entry %d time %v not after %v", i, p.Time, s[i-1].Time)
		}
		if p.DayCountFraction < 0 {
			return fmt.Errorf("AccrualSchedule: entry %d has negative day count fraction", i)
		}
	}
	return nil
}

// BuildAccrualSchedule converts boundary dates into an AccrualSchedule.
//
// Times are TimeBasis year fractions from valuationDate; each fraction is the
// dayCount year fraction between consecutive dates. Dates before valuationDate are
// rejected: seasoned trades are not supported.
func BuildAccrualSchedule(dates []time.Time, valuationDate time.Time, dayCount string) (AccrualSchedule, error) {
	if err := utils.CheckDayCount(dayCount); err != nil {
		return nil, fmt.Errorf("BuildAccrualSchedule: %w", err)
	}
	out := make(AccrualSchedule, 0, len(dates))
	for i, d := range dates {
		if d.Before(valuationDate) {
			return nil, fmt.Errorf("BuildAccrualSchedule: date %s precedes valuation date %s",
				utils.FormatDate(d), utils.FormatDate(valuationDate))
		}
		p := AccrualPoint{Time: utils.YearFraction(valuationDate, d, TimeBasis)}
		if i > 0 {
			p.DayCountFraction = utils.YearFraction(dates[i-1], d, dayCount)
		}
		out = append(out, p)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("BuildAccrualSchedule: %w", err)
	}
	return out, nil
}
