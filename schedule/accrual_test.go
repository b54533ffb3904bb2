package schedule_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/cdslib/schedule"
)

func TestBuildAccrualSchedule(t *testing.T) {
	t.Parallel()

	dates := []time.Time{
		date(2021, time.March, 22),
		date(2021, time.June, 21),
		date(2021, time.September, 20),
	}
	sched, err := schedule.BuildAccrualSchedule(dates, date(2021, time.March, 19), "ACT/360")
	require.NoError(t, err)
	require.Len(t, sched, 3)

	assert.InDelta(t, 3.0/365.0, sched[0].Time, 1e-15)
	assert.Equal(t, 0.0, sched[0].DayCountFraction)
	assert.InDelta(t, 94.0/365.0, sched[1].Time, 1e-15)
	assert.InDelta(t, 91.0/360.0, sched[1].DayCountFraction, 1e-15)
	assert.InDelta(t, 185.0/365.0, sched[2].Time, 1e-15)
	assert.InDelta(t, 91.0/360.0, sched[2].DayCountFraction, 1e-15)
}

func TestBuildAccrualScheduleFromGenerator(t *testing.T) {
	t.Parallel()

	g := schedule.NewGenerator(weekends(t), zerolog.Nop())
	b, err := g.Generate(date(2021, time.March, 19), date(2026, time.March, 20), false)
	require.NoError(t, err)

	sched, err := schedule.BuildAccrualSchedule(b.Dates().Collect(), date(2021, time.March, 19), "ACT/360")
	require.NoError(t, err)
	assert.Len(t, sched, b.Count)
	assert.NoError(t, sched.Validate())
}

func TestBuildAccrualScheduleRejects(t *testing.T) {
	t.Parallel()

	dates := []time.Time{date(2021, time.March, 22), date(2021, time.June, 21)}

	_, err := schedule.BuildAccrualSchedule(dates, date(2021, time.April, 1), "ACT/360")
	assert.Error(t, err, "seasoned schedule")

	_, err = schedule.BuildAccrualSchedule(dates, date(2021, time.March, 19), "BUS/252")
	assert.Error(t, err, "unknown day count")

	unordered := []time.Time{date(2021, time.June, 21), date(2021, time.March, 22)}
	_, err = schedule.BuildAccrualSchedule(unordered, date(2021, time.March, 19), "ACT/360")
	assert.Error(t, err)
}

func TestAccrualScheduleValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, schedule.AccrualSchedule{}.Validate())
	assert.NoError(t, schedule.AccrualSchedule{{Time: 0}}.Validate())
	assert.Error(t, schedule.AccrualSchedule{{Time: 0}, {Time: 0, DayCountFraction: 0.25}}.Validate())
	assert.Error(t, schedule.AccrualSchedule{{Time: -1}}.Validate())
	assert.Error(t, schedule.AccrualSchedule{{Time: 0}, {Time: 0.25, DayCountFraction: -0.25}}.Validate())
}
