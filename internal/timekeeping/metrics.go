// Package timekeeping turns a raw time-in/time-out pair into the derived
// attendance figures (worked hours, lateness, overtime, undertime) and a
// status classification. Every function here is pure: no clock reads, no I/O.
package timekeeping

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	StatusPresent = "Present"
	StatusLate    = "Late"
	StatusHalfDay = "Half Day"
	StatusAbsent  = "Absent"
)

const minutesPerDay = 24 * 60

// Schedule is the work-day policy the metrics are measured against.
type Schedule struct {
	TimeIn          string // expected clock-in, "HH:MM"
	HoursPerDay     int
	GraceMinutes    int // lateness beyond this flips status to Late
	HalfDayMaxHours int // worked hours at or below this flips status to Half Day
}

// DefaultSchedule is the standard 08:00 eight-hour day with a 15-minute grace.
func DefaultSchedule() Schedule {
	return Schedule{
		TimeIn:          "08:00",
		HoursPerDay:     8,
		GraceMinutes:    15,
		HalfDayMaxHours: 4,
	}
}

// Metrics is the per-day attendance breakdown. Overtime and undertime are
// mutually exclusive: at most one of them is non-zero.
type Metrics struct {
	HoursWorked    decimal.Decimal
	LateHours      decimal.Decimal
	OvertimeHours  decimal.Decimal
	UndertimeHours decimal.Decimal
	Status         string
}

// parseMinutes converts an "HH:MM" wall-clock string to minutes since
// midnight. Blank or malformed input degrades to (0, false); callers treat
// such records as incomplete rather than erroring.
func parseMinutes(clock string) (int, bool) {
	h, m, found := strings.Cut(clock, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return hour*60 + minute, true
}

// CalculateHours returns the hours between timeIn and timeOut, rounded to one
// decimal. A negative span wraps past midnight (overnight shift). Missing
// input yields zero.
func CalculateHours(timeIn, timeOut string) decimal.Decimal {
	in, okIn := parseMinutes(timeIn)
	out, okOut := parseMinutes(timeOut)
	if !okIn || !okOut {
		return decimal.Zero
	}

	diff := out - in
	if diff < 0 {
		diff += minutesPerDay
	}
	return decimal.NewFromInt(int64(diff)).Div(decimal.NewFromInt(60)).Round(1)
}

func lateMinutes(timeIn string, sched Schedule) int {
	in, okIn := parseMinutes(timeIn)
	expected, okExp := parseMinutes(sched.TimeIn)
	if !okIn || !okExp || in <= expected {
		return 0
	}
	return in - expected
}

// PendingMetrics is the partial breakdown for a clock-in still awaiting its
// checkout: lateness is known, worked hours are not.
func PendingMetrics(timeIn string, sched Schedule) Metrics {
	lm := lateMinutes(timeIn, sched)

	status := StatusPresent
	if lm > sched.GraceMinutes {
		status = StatusLate
	}

	return Metrics{
		HoursWorked:    decimal.Zero,
		LateHours:      decimal.NewFromInt(int64(lm)).Div(decimal.NewFromInt(60)).Round(1),
		OvertimeHours:  decimal.Zero,
		UndertimeHours: decimal.Zero,
		Status:         status,
	}
}

// CalculateMetrics derives the full per-day breakdown for one punch pair.
//
// The half-day check runs before the lateness check and is never reverted by
// it: a ≤4h day stays Half Day even when the clock-in was late.
func CalculateMetrics(timeIn, timeOut string, sched Schedule) Metrics {
	hoursWorked := CalculateHours(timeIn, timeOut)

	lm := lateMinutes(timeIn, sched)
	late := decimal.NewFromInt(int64(lm)).Div(decimal.NewFromInt(60)).Round(1)

	standard := decimal.NewFromInt(int64(sched.HoursPerDay))
	overtime := decimal.Zero
	undertime := decimal.Zero
	switch {
	case hoursWorked.GreaterThan(standard):
		overtime = hoursWorked.Sub(standard)
	case hoursWorked.LessThan(standard):
		undertime = standard.Sub(hoursWorked)
	}

	status := StatusPresent
	if hoursWorked.LessThanOrEqual(decimal.NewFromInt(int64(sched.HalfDayMaxHours))) {
		status = StatusHalfDay
	}
	if lm > sched.GraceMinutes && status == StatusPresent {
		status = StatusLate
	}

	return Metrics{
		HoursWorked:    hoursWorked,
		LateHours:      late,
		OvertimeHours:  overtime,
		UndertimeHours: undertime,
		Status:         status,
	}
}

// AbsentMetrics is the forced breakdown for an explicitly-flagged absence.
// It bypasses the time-based computation entirely.
func AbsentMetrics() Metrics {
	return Metrics{
		HoursWorked:    decimal.Zero,
		LateHours:      decimal.Zero,
		OvertimeHours:  decimal.Zero,
		UndertimeHours: decimal.Zero,
		Status:         StatusAbsent,
	}
}
