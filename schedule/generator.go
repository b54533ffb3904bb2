// Package schedule derives CDS premium-leg dates and accrual schedules.
package schedule

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/meenmo/cdslib/utils"
)

// CouponMonths is the premium payment spacing.
const CouponMonths = 3

// ErrNilCalendar is returned when a Generator has no calendar.
var ErrNilCalendar = errors.New("nil calendar")

// Calendar marks working days. *calendar.Calendar satisfies it.
type Calendar interface {
	IsWorkingDay(t time.Time) bool
}

// Generator turns contract dates into calendar-adjusted premium boundary dates.
type Generator struct {
	cal Calendar
	log zerolog.Logger
}

// NewGenerator creates a generator; diagnostics go to log at debug level.
func NewGenerator(cal Calendar, log zerolog.Logger) *Generator {
	return &Generator{
		cal: cal,
		log: log.With().Str("component", "schedule_generator").Logger(),
	}
}

// Boundaries is the generator output: the adjusted effective and maturity dates,
// the cashflow count and the lazily produced boundary dates.
type Boundaries struct {
	Effective time.Time
	Maturity  time.Time
	Count     int

	seq *DateSequence
}

// Dates returns the boundary date sequence. The sequence is shared: dates
// consumed through one call are not replayed by the next.
func (b *Boundaries) Dates() *DateSequence {
	return b.seq
}

// Generate computes the premium boundaries.
//
// The effective date is start+1 rolled forward to a working day. Maturity is rolled
// the same way only when adjustMaturity is set. From maturity the generator steps
// back CouponMonths at a time, counting cashflows until the stepped date is no longer
// strictly after the effective date. If maturity is not after the effective date the
// schedule collapses to a single cashflow.
func (g *Generator) Generate(start, maturity time.Time, adjustMaturity bool) (*Boundaries, error) {
	if g.cal == nil {
		return nil, ErrNilCalendar
	}

	effective := g.rollForward(start.AddDate(0, 0, 1))
	g.log.Debug().
		Str("start", utils.FormatDate(start)).
		Str("effective", utils.FormatDate(effective)).
		Msg("effective date adjusted")

	if adjustMaturity {
		adjusted := g.rollForward(maturity)
		g.log.Debug().
			Str("unadjusted", utils.FormatDate(maturity)).
			Str("adjusted", utils.FormatDate(adjusted)).
			Msg("maturity date adjusted")
		maturity = adjusted
	}

	count := 1
	for step := 0; ; step++ {
		d := utils.AddMonth(maturity, -CouponMonths*step)
		if !d.After(effective) {
			break
		}
		count++
		g.log.Debug().
			Str("date", utils.FormatDate(d)).
			Int("cashflows", count).
			Msg("premium cashflow")
	}

	return &Boundaries{
		Effective: effective,
		Maturity:  maturity,
		Count:     count,
		seq: &DateSequence{
			cal:       g.cal,
			effective: effective,
			maturity:  maturity,
			count:     count,
		},
	}, nil
}

func (g *Generator) rollForward(d time.Time) time.Time {
	for !g.cal.IsWorkingDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// DateSequence yields the boundary dates in ascending order: the effective date,
// the coupon dates rolled forward to working days, and the maturity date last.
//
// Dates are computed on demand. Once exhausted the sequence stays exhausted.
// A DateSequence is not safe for concurrent use.
type DateSequence struct {
	cal       Calendar
	effective time.Time
	maturity  time.Time
	count     int
	next      int
}

// Len returns the total number of dates the sequence produces.
func (s *DateSequence) Len() int {
	return s.count
}

// Next returns the next date, or false once the sequence is exhausted.
func (s *DateSequence) Next() (time.Time, bool) {
	if s.next >= s.count {
		return time.Time{}, false
	}
	i := s.next
	s.next++

	if i == 0 {
		return s.effective, true
	}
	stepsBack := s.count - 1 - i
	if stepsBack == 0 {
		return s.maturity, true
	}
	d := utils.AddMonth(s.maturity, -CouponMonths*stepsBack)
	for !s.cal.IsWorkingDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d, true
}

// Collect drains the remaining dates.
func (s *DateSequence) Collect() []time.Time {
	out := make([]time.Time, 0, s.count-s.next)
	for {
		d, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, d)
	}
}
