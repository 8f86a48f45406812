package datefilter

import "time"

// Mode selects the active date-range predicate. The zero value means no
// date restriction.
type Mode string

const (
	ModeNone      Mode = ""
	ModeToday     Mode = "today"
	ModeThisWeek  Mode = "thisWeek"
	ModeThisMonth Mode = "thisMonth"
)

// Modes lists the concrete filter modes in display order.
var Modes = []Mode{ModeToday, ModeThisWeek, ModeThisMonth}

var modeLabels = map[Mode]string{
	ModeToday:     "hoy",
	ModeThisWeek:  "esta semana",
	ModeThisMonth: "este mes",
}

// Label returns the Spanish display label for a mode. Unknown modes pass
// through raw.
func Label(mode Mode) string {
	if label, ok := modeLabels[mode]; ok {
		return label
	}
	return string(mode)
}

// Matches reports whether an epoch-milliseconds timestamp falls inside the
// date window selected by mode, evaluated against the current local time.
func Matches(createdAt int64, mode Mode) bool {
	return MatchesAt(createdAt, mode, time.Now())
}

// MatchesAt is Matches with an explicit clock.
//
// The evaluation order is part of the contract: the no-filter case is
// checked before timestamp validity, so an invalid timestamp still matches
// when no concrete mode is requested. An unknown mode fails open.
func MatchesAt(createdAt int64, mode Mode, now time.Time) bool {
	if mode == ModeNone {
		return true
	}

	if createdAt == 0 {
		return false
	}

	t := time.UnixMilli(createdAt).In(now.Location())

	switch mode {
	case ModeToday:
		return sameDay(t, now)
	case ModeThisWeek:
		start, end := WeekDates(now)
		return within(t, start, end)
	case ModeThisMonth:
		start, end := MonthDates(now)
		return within(t, start, end)
	default:
		return true
	}
}

// WeekDates returns the bounds of the week containing now: Monday 00:00:00
// through the last instant of Sunday, local time.
func WeekDates(now time.Time) (time.Time, time.Time) {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the week
	}

	monday := now.AddDate(0, 0, -(weekday - 1))
	start := time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 7).Add(time.Nanosecond * -1)

	return start, end
}

// MonthDates returns the bounds of the calendar month containing now: first
// day 00:00:00 through the last instant of the last day, local time.
func MonthDates(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(time.Nanosecond * -1)

	return start, end
}

func sameDay(a, b time.Time) bool {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()

	return aYear == bYear && aMonth == bMonth && aDay == bDay
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
