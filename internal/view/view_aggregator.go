package view

import (
	"sort"
	"time"

	"github.com/kotani6053/nakatu.yasumi/internal/record"
)

// Mode selects how a display surface is filtered against the reference date.
type Mode string

const (
	ModeToday Mode = "today"
	ModeMonth Mode = "month"
	ModeAll   Mode = "all"
)

// ParseMode validates a mode string, defaulting empty to "today".
func ParseMode(v string) (Mode, bool) {
	switch Mode(v) {
	case ModeToday, ModeMonth, ModeAll:
		return Mode(v), true
	case "":
		return ModeToday, true
	default:
		return "", false
	}
}

// DateScoped projects the single-day surface: point records filtered by mode,
// plus "normal"-group periods whose range intersects the reference day or
// month. Periods are excluded in "all" mode, where they belong to the period
// surface alone. Output is ordered by effective day, then name. The function
// is pure: it never mutates its input and computes from the snapshot alone.
func DateScoped(records []record.LeaveRecord, ref time.Time, mode Mode) []record.LeaveRecord {
	out := make([]record.LeaveRecord, 0, len(records))

	for i := range records {
		r := records[i]
		switch r.Class() {
		case record.ClassPoint, record.ClassPointTimed:
			if r.Date == nil {
				continue
			}
			if pointMatches(*r.Date, ref, mode) {
				out = append(out, r)
			}
		case record.ClassPeriodAsPoint:
			if mode == ModeAll {
				continue
			}
			if intervalMatches(*r.StartDate, *r.EndDate, ref, mode) {
				out = append(out, r)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].EffectiveDate(), out[j].EffectiveDate()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Periods projects the period surface: "long"-group ranges intersecting the
// reference day or month, ordered by start day with stable insertion order.
func Periods(records []record.LeaveRecord, ref time.Time, mode Mode) []record.LeaveRecord {
	out := make([]record.LeaveRecord, 0, len(records))

	for i := range records {
		r := records[i]
		if r.Class() != record.ClassPeriodLong {
			continue
		}
		if mode == ModeAll || intervalMatches(*r.StartDate, *r.EndDate, ref, mode) {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.Before(*out[j].StartDate)
	})
	return out
}

func pointMatches(day, ref time.Time, mode Mode) bool {
	switch mode {
	case ModeToday:
		return record.SameDay(day, ref)
	case ModeMonth:
		return record.SameMonth(day, ref)
	default:
		return true
	}
}

func intervalMatches(start, end, ref time.Time, mode Mode) bool {
	if mode == ModeToday {
		return !ref.Before(start) && !ref.After(end)
	}
	// Month: the range starts or ends in the reference month, or spans
	// across it entirely.
	if record.SameMonth(start, ref) || record.SameMonth(end, ref) {
		return true
	}
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return start.Before(first) && end.After(last)
}
