package calendar

import (
	"errors"
	"fmt"
	"time"
)

// CalendarID identifies a holiday calendar.
type CalendarID string

const (
	TARGET CalendarID = "TARGET"
	// JPN has no holiday rule yet: only Saturdays and Sundays are closed.
	JPN CalendarID = "JPN"
	USD CalendarID = "USD"
	// KRW has no holiday rule yet: only Saturdays and Sundays are closed.
	KRW CalendarID = "KRW"
	// WeekendsOnly treats every Monday-Friday as a working day.
	WeekendsOnly CalendarID = "WEEKENDS"
)

var (
	// ErrUnknownCalendar is returned by Lookup for an unregistered CalendarID.
	ErrUnknownCalendar = errors.New("unknown calendar")
	// ErrNoWorkingDays is returned when a calendar would mark every weekday as non-working.
	ErrNoWorkingDays = errors.New("calendar has no working days")
)

// Calendar is an immutable working-day calendar: a weekend set plus explicit holidays
// and an optional rule for recurring holidays.
type Calendar struct {
	id       CalendarID
	weekend  map[time.Weekday]struct{}
	holidays map[string]struct{}
	rule     func(time.Time) bool
}

// New builds a calendar from a weekend definition and a list of holiday dates.
//
// A nil weekend defaults to Saturday/Sunday. Calendars that leave no weekday open
// are rejected so that business-day rolling always terminates.
func New(id CalendarID, weekend []time.Weekday, holidays []time.Time) (*Calendar, error) {
	return newCalendar(id, weekend, holidays, nil)
}

func newCalendar(id CalendarID, weekend []time.Weekday, holidays []time.Time, rule func(time.Time) bool) (*Calendar, error) {
	if weekend == nil {
		weekend = []time.Weekday{time.Saturday, time.Sunday}
	}
	c := &Calendar{
		id:       id,
		weekend:  make(map[time.Weekday]struct{}, len(weekend)),
		holidays: make(map[string]struct{}, len(holidays)),
		rule:     rule,
	}
	for _, d := range weekend {
		c.weekend[d] = struct{}{}
	}
	if len(c.weekend) >= 7 {
		return nil, fmt.Errorf("calendar.New(%s): %w", id, ErrNoWorkingDays)
	}
	for _, h := range holidays {
		c.holidays[h.Format("2006-01-02")] = struct{}{}
	}
	return c, nil
}

// ID returns the calendar identifier.
func (c *Calendar) ID() CalendarID {
	return c.id
}

func (c *Calendar) isHoliday(t time.Time) bool {
	if _, ok := c.holidays[t.Format("2006-01-02")]; ok {
		return true
	}
	return c.rule != nil && c.rule(t)
}

// IsWorkingDay checks the weekend set and holidays.
func (c *Calendar) IsWorkingDay(t time.Time) bool {
	if _, ok := c.weekend[t.Weekday()]; ok {
		return false
	}
	return !c.isHoliday(t)
}

var registry = map[CalendarID]*Calendar{}

func init() {
	register(TARGET, isTargetHoliday)
	register(JPN, nil)
	register(USD, isUSDHoliday)
	register(KRW, nil)
	register(WeekendsOnly, nil)
}

func register(id CalendarID, rule func(time.Time) bool) {
	c, err := newCalendar(id, nil, nil, rule)
	if err != nil {
		panic(err)
	}
	registry[id] = c
}

// Lookup returns a built-in calendar.
func Lookup(id CalendarID) (*Calendar, error) {
	c, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("calendar.Lookup(%q): %w", id, ErrUnknownCalendar)
	}
	return c, nil
}
