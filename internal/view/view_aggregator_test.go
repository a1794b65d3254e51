package view_test

import (
	"testing"
	"time"

	"github.com/kotani6053/nakatu.yasumi/internal/record"
	"github.com/kotani6053/nakatu.yasumi/internal/view"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, v string) time.Time {
	t.Helper()
	d, err := record.ParseDay(v)
	assert.NoError(t, err)
	return d
}

func point(t *testing.T, name, date string) record.LeaveRecord {
	t.Helper()
	d := day(t, date)
	return record.LeaveRecord{
		ID:       uuid.New(),
		Name:     name,
		Category: record.CategoryPaidLeave,
		Date:     &d,
	}
}

func timedPoint(t *testing.T, name, date, start, end string) record.LeaveRecord {
	t.Helper()
	r := point(t, name, date)
	r.Category = record.CategoryHourlyPaidLeave
	r.StartTime = &start
	r.EndTime = &end
	return r
}

func period(t *testing.T, name, start, end, group string) record.LeaveRecord {
	t.Helper()
	s, e := day(t, start), day(t, end)
	return record.LeaveRecord{
		ID:           uuid.New(),
		Name:         name,
		Category:     record.CategoryConsecutiveHoliday,
		StartDate:    &s,
		EndDate:      &e,
		DisplayGroup: group,
	}
}

func names(records []record.LeaveRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestParseMode(t *testing.T) {
	for _, v := range []string{"today", "month", "all"} {
		m, ok := view.ParseMode(v)
		assert.True(t, ok)
		assert.Equal(t, view.Mode(v), m)
	}

	m, ok := view.ParseMode("")
	assert.True(t, ok)
	assert.Equal(t, view.ModeToday, m)

	_, ok = view.ParseMode("weekly")
	assert.False(t, ok)
}

func TestDateScoped(t *testing.T) {
	snapshot := []record.LeaveRecord{
		point(t, "Sato", "2025-04-10"),
		timedPoint(t, "Abe", "2025-04-10", "09:00", "12:00"),
		point(t, "Mori", "2025-04-22"),
		point(t, "Kato", "2025-05-10"),
		period(t, "Tanaka", "2025-04-08", "2025-04-12", record.DisplayGroupNormal),
		period(t, "Yamada", "2025-04-01", "2025-04-30", record.DisplayGroupLong),
	}
	ref := day(t, "2025-04-10")

	t.Run("today keeps same-day points and covering normal periods", func(t *testing.T) {
		got := view.DateScoped(snapshot, ref, view.ModeToday)
		assert.Equal(t, []string{"Tanaka", "Abe", "Sato"}, names(got))
	})

	t.Run("long periods never reach the day surface", func(t *testing.T) {
		got := view.DateScoped(snapshot, ref, view.ModeMonth)
		for _, r := range got {
			assert.NotEqual(t, "Yamada", r.Name)
		}
	})

	t.Run("month keeps the whole month, year aware", func(t *testing.T) {
		got := view.DateScoped(snapshot, ref, view.ModeMonth)
		assert.Equal(t, []string{"Tanaka", "Abe", "Sato", "Mori"}, names(got))

		aprilLastYear := point(t, "Old", "2024-04-10")
		got = view.DateScoped(append(snapshot, aprilLastYear), ref, view.ModeMonth)
		assert.NotContains(t, names(got), "Old")
	})

	t.Run("all keeps every point and drops periods entirely", func(t *testing.T) {
		got := view.DateScoped(snapshot, ref, view.ModeAll)
		assert.Equal(t, []string{"Abe", "Sato", "Mori", "Kato"}, names(got))
	})

	t.Run("ordering ties break by name", func(t *testing.T) {
		got := view.DateScoped(snapshot, ref, view.ModeToday)
		assert.Equal(t, "Abe", got[1].Name)
		assert.Equal(t, "Sato", got[2].Name)
	})

	t.Run("input is never mutated", func(t *testing.T) {
		before := names(snapshot)
		view.DateScoped(snapshot, ref, view.ModeToday)
		view.DateScoped(snapshot, ref, view.ModeAll)
		assert.Equal(t, before, names(snapshot))
	})
}

func TestDateScoped_MonthBoundary(t *testing.T) {
	spanning := period(t, "Tanaka", "2025-04-28", "2025-05-02", record.DisplayGroupNormal)
	snapshot := []record.LeaveRecord{spanning}

	t.Run("visible on both edge days", func(t *testing.T) {
		got := view.DateScoped(snapshot, day(t, "2025-04-30"), view.ModeToday)
		assert.Len(t, got, 1)
		got = view.DateScoped(snapshot, day(t, "2025-05-01"), view.ModeToday)
		assert.Len(t, got, 1)
	})

	t.Run("visible in both months", func(t *testing.T) {
		got := view.DateScoped(snapshot, day(t, "2025-04-15"), view.ModeMonth)
		assert.Len(t, got, 1)
		got = view.DateScoped(snapshot, day(t, "2025-05-15"), view.ModeMonth)
		assert.Len(t, got, 1)
	})

	t.Run("invisible outside the range", func(t *testing.T) {
		got := view.DateScoped(snapshot, day(t, "2025-05-03"), view.ModeToday)
		assert.Empty(t, got)
		got = view.DateScoped(snapshot, day(t, "2025-06-15"), view.ModeMonth)
		assert.Empty(t, got)
	})
}

func TestPeriods(t *testing.T) {
	long := period(t, "Yamada", "2025-04-01", "2025-04-30", record.DisplayGroupLong)
	spanning := period(t, "Suzuki", "2025-03-20", "2025-05-10", record.DisplayGroupLong)
	normal := period(t, "Tanaka", "2025-04-08", "2025-04-12", record.DisplayGroupNormal)
	snapshot := []record.LeaveRecord{long, spanning, normal, point(t, "Sato", "2025-04-10")}

	t.Run("today keeps covering long periods only", func(t *testing.T) {
		got := view.Periods(snapshot, day(t, "2025-04-10"), view.ModeToday)
		assert.Equal(t, []string{"Suzuki", "Yamada"}, names(got))
	})

	t.Run("month keeps ranges that span across the month", func(t *testing.T) {
		got := view.Periods(snapshot, day(t, "2025-04-15"), view.ModeMonth)
		assert.Equal(t, []string{"Suzuki", "Yamada"}, names(got))
	})

	t.Run("all keeps every long period regardless of the reference", func(t *testing.T) {
		got := view.Periods(snapshot, day(t, "2030-01-01"), view.ModeAll)
		assert.Len(t, got, 2)
	})

	t.Run("normal periods and points never appear", func(t *testing.T) {
		got := view.Periods(snapshot, day(t, "2025-04-10"), view.ModeAll)
		assert.NotContains(t, names(got), "Tanaka")
		assert.NotContains(t, names(got), "Sato")
	})

	t.Run("ordered by start day", func(t *testing.T) {
		got := view.Periods(snapshot, day(t, "2025-04-10"), view.ModeToday)
		assert.True(t, got[0].StartDate.Before(*got[1].StartDate))
	})
}
