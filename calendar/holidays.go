package calendar

import "time"

// isTargetHoliday covers the TARGET2 closing days: New Year, Good Friday,
// Easter Monday, Labour Day, Christmas and Boxing Day.
func isTargetHoliday(t time.Time) bool {
	m, d := t.Month(), t.Day()
	switch {
	case m == time.January && d == 1,
		m == time.May && d == 1,
		m == time.December && (d == 25 || d == 26):
		return true
	}
	easter := easterSunday(t.Year())
	yd := t.YearDay()
	return yd == easter.AddDate(0, 0, -2).YearDay() || yd == easter.AddDate(0, 0, 1).YearDay()
}

// isUSDHoliday covers the fixed-date federal holidays with weekend observance.
func isUSDHoliday(t time.Time) bool {
	for _, fixed := range []struct {
		m time.Month
		d int
	}{
		{time.January, 1},
		{time.June, 19},
		{time.July, 4},
		{time.November, 11},
		{time.December, 25},
	} {
		if observed(time.Date(t.Year(), fixed.m, fixed.d, 0, 0, 0, 0, time.UTC)).Equal(dateOnly(t)) {
			return true
		}
	}
	// New Year's Day on a Saturday is observed on Dec 31 of the prior year.
	return t.Month() == time.December &&
		observed(time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)).Equal(dateOnly(t))
}

func observed(h time.Time) time.Time {
	switch h.Weekday() {
	case time.Saturday:
		return h.AddDate(0, 0, -1)
	case time.Sunday:
		return h.AddDate(0, 0, 1)
	}
	return h
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// easterSunday uses the anonymous Gregorian algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
