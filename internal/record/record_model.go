package record

import (
	"strings"
	"time"

	recorderrors "github.com/kotani6053/nakatu.yasumi/internal/record/errors"
)

const (
	dayLayout   = "2006-01-02"
	clockLayout = "15:04"
)

// NormalizeDraft turns a submitted draft into a record ready for persistence.
// The unused date-shape group is nulled and clock times are kept only for
// time-bounded categories. The repository owns ID and CreatedAt.
func NormalizeDraft(req SaveRecordRequest) (*LeaveRecord, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, recorderrors.ErrNameRequired
	}
	if req.Category == "" {
		return nil, recorderrors.ErrCategoryRequired
	}

	category := Category(req.Category)
	shape, ok := ShapeOf(category)
	if !ok {
		return nil, recorderrors.ErrUnknownCategory
	}

	rec := &LeaveRecord{
		Name:     name,
		Category: category,
		Reason:   strings.TrimSpace(req.Reason),
	}

	if shape == ShapePeriod {
		if req.StartDate == "" || req.EndDate == "" {
			return nil, recorderrors.ErrPeriodBoundsRequired
		}
		start, err := ParseDay(req.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := ParseDay(req.EndDate)
		if err != nil {
			return nil, err
		}
		if start.After(end) {
			return nil, recorderrors.ErrInvalidDateRange
		}

		rec.StartDate = &start
		rec.EndDate = &end
		rec.DisplayGroup = DisplayGroupLong
		if req.DisplayGroup == DisplayGroupNormal {
			rec.DisplayGroup = DisplayGroupNormal
		}
		return rec, nil
	}

	if req.Date == "" {
		return nil, recorderrors.ErrDateRequired
	}
	day, err := ParseDay(req.Date)
	if err != nil {
		return nil, err
	}
	rec.Date = &day

	if shape == ShapePointTimed {
		if req.StartTime == "" || req.EndTime == "" {
			return nil, recorderrors.ErrTimeBoundsRequired
		}
		startTime, err := parseClock(req.StartTime)
		if err != nil {
			return nil, err
		}
		endTime, err := parseClock(req.EndTime)
		if err != nil {
			return nil, err
		}
		// Zero-padded HH:MM compares correctly as a string.
		if startTime >= endTime {
			return nil, recorderrors.ErrInvalidTimeRange
		}
		rec.StartTime = &startTime
		rec.EndTime = &endTime
	}

	return rec, nil
}

// ParseDay parses a YYYY-MM-DD calendar day.
func ParseDay(v string) (time.Time, error) {
	t, err := time.Parse(dayLayout, v)
	if err != nil {
		return time.Time{}, recorderrors.ErrInvalidDateFormat
	}
	return t, nil
}

// FormatDay renders a calendar day as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SameMonth reports whether a and b fall in the same calendar month of the
// same year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func parseClock(v string) (string, error) {
	t, err := time.Parse(clockLayout, v)
	if err != nil {
		return "", recorderrors.ErrInvalidTimeFormat
	}
	return t.Format(clockLayout), nil
}

func ToResponse(r LeaveRecord) RecordResponse {
	shape, _ := ShapeOf(r.Category)
	resp := RecordResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		Category:  string(r.Category),
		Shape:     shape.String(),
		Reason:    r.Reason,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.Date != nil {
		v := FormatDay(*r.Date)
		resp.Date = &v
	}
	if r.StartDate != nil {
		v := FormatDay(*r.StartDate)
		resp.StartDate = &v
	}
	if r.EndDate != nil {
		v := FormatDay(*r.EndDate)
		resp.EndDate = &v
	}
	if r.StartDate != nil && r.EndDate != nil {
		resp.DisplayGroup = r.DisplayGroup
	}
	return resp
}

func ToResponses(records []LeaveRecord) []RecordResponse {
	resp := make([]RecordResponse, len(records))
	for i, r := range records {
		resp[i] = ToResponse(r)
	}
	return resp
}
