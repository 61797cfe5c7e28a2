package timekeeping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCalculateHours(t *testing.T) {
	tests := []struct {
		name    string
		timeIn  string
		timeOut string
		want    string
	}{
		{"standard day", "08:00", "16:00", "8"},
		{"overnight wrap", "22:00", "06:00", "8"},
		{"partial hour rounds to one decimal", "08:00", "16:20", "8.3"},
		{"missing time_out", "08:00", "", "0"},
		{"missing time_in", "", "16:00", "0"},
		{"malformed input", "8am", "16:00", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHours(tt.timeIn, tt.timeOut)
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestCalculateMetrics_OnTimeFullDay(t *testing.T) {
	m := CalculateMetrics("08:00", "16:00", DefaultSchedule())

	assert.True(t, m.HoursWorked.Equal(dec("8")))
	assert.True(t, m.LateHours.IsZero())
	assert.True(t, m.OvertimeHours.IsZero())
	assert.True(t, m.UndertimeHours.IsZero())
	assert.Equal(t, StatusPresent, m.Status)
}

func TestCalculateMetrics_LateBeyondGrace(t *testing.T) {
	m := CalculateMetrics("08:20", "16:00", DefaultSchedule())

	assert.True(t, m.LateHours.Equal(dec("0.3")), "late hours %s", m.LateHours)
	assert.Equal(t, StatusLate, m.Status)
	assert.True(t, m.UndertimeHours.Equal(dec("0.3")))
	assert.True(t, m.OvertimeHours.IsZero())
}

func TestCalculateMetrics_LateWithinGrace(t *testing.T) {
	m := CalculateMetrics("08:15", "16:15", DefaultSchedule())

	// 15 minutes is inside the grace window: lateness is recorded but the
	// status stays Present.
	assert.True(t, m.LateHours.Equal(dec("0.3")))
	assert.Equal(t, StatusPresent, m.Status)
}

func TestCalculateMetrics_HalfDayOverridesUndertime(t *testing.T) {
	m := CalculateMetrics("08:00", "12:00", DefaultSchedule())

	assert.True(t, m.HoursWorked.Equal(dec("4")))
	assert.True(t, m.UndertimeHours.Equal(dec("4")))
	assert.Equal(t, StatusHalfDay, m.Status)
}

func TestCalculateMetrics_LatenessNeverOverridesHalfDay(t *testing.T) {
	m := CalculateMetrics("09:00", "12:00", DefaultSchedule())

	assert.Equal(t, StatusHalfDay, m.Status)
	assert.True(t, m.LateHours.Equal(dec("1")))
}

func TestCalculateMetrics_Overtime(t *testing.T) {
	m := CalculateMetrics("08:00", "18:30", DefaultSchedule())

	assert.True(t, m.HoursWorked.Equal(dec("10.5")))
	assert.True(t, m.OvertimeHours.Equal(dec("2.5")))
	assert.True(t, m.UndertimeHours.IsZero())
	assert.Equal(t, StatusPresent, m.Status)
}

func TestCalculateMetrics_OvertimeAndUndertimeExclusive(t *testing.T) {
	pairs := [][2]string{
		{"08:00", "15:00"},
		{"08:00", "16:00"},
		{"08:00", "19:00"},
		{"22:00", "04:00"},
	}
	for _, p := range pairs {
		m := CalculateMetrics(p[0], p[1], DefaultSchedule())
		assert.False(t, m.OvertimeHours.IsPositive() && m.UndertimeHours.IsPositive(),
			"both overtime and undertime set for %s-%s", p[0], p[1])
	}
}

func TestCalculateMetrics_PendingCheckout(t *testing.T) {
	m := CalculateMetrics("08:00", "", DefaultSchedule())

	// No checkout yet: zero worked hours classify as a half day until a
	// correction fills in the time-out and the record is recalculated.
	assert.True(t, m.HoursWorked.IsZero())
	assert.Equal(t, StatusHalfDay, m.Status)
}

func TestPendingMetrics(t *testing.T) {
	t.Run("on time", func(t *testing.T) {
		m := PendingMetrics("08:10", DefaultSchedule())

		assert.Equal(t, StatusPresent, m.Status)
		assert.True(t, m.LateHours.Equal(decimal.RequireFromString("0.2")))
		assert.True(t, m.HoursWorked.IsZero())
		assert.True(t, m.UndertimeHours.IsZero())
	})

	t.Run("past grace", func(t *testing.T) {
		m := PendingMetrics("08:30", DefaultSchedule())

		assert.Equal(t, StatusLate, m.Status)
		assert.True(t, m.LateHours.Equal(decimal.RequireFromString("0.5")))
	})
}

func TestAbsentMetrics(t *testing.T) {
	m := AbsentMetrics()

	assert.True(t, m.HoursWorked.IsZero())
	assert.True(t, m.LateHours.IsZero())
	assert.True(t, m.OvertimeHours.IsZero())
	assert.True(t, m.UndertimeHours.IsZero())
	assert.Equal(t, StatusAbsent, m.Status)
}

func TestCalculateMetrics_CustomSchedule(t *testing.T) {
	sched := Schedule{TimeIn: "09:00", HoursPerDay: 6, GraceMinutes: 5, HalfDayMaxHours: 3}
	m := CalculateMetrics("09:10", "15:10", sched)

	assert.True(t, m.HoursWorked.Equal(dec("6")))
	assert.Equal(t, StatusLate, m.Status)
	assert.True(t, m.OvertimeHours.IsZero())
}
