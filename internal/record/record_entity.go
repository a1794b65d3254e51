package record

import (
	"time"

	"github.com/google/uuid"
)

const (
	DisplayGroupLong   = "long"
	DisplayGroupNormal = "normal"
)

// LeaveRecord is one absence/attendance entry. Exactly one date-shape group is
// populated: Date (plus optional clock times) for single-day records, or
// StartDate/EndDate for period records. Deletes are hard deletes; the unique
// index on (name, date) backs the duplicate rule for single-day records when
// two submissions race past the snapshot check.
type LeaveRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_records_name_date"`
	Category Category  `gorm:"type:varchar(30);not null"`
	Reason   string    `gorm:"type:text"`

	Date      *time.Time `gorm:"type:date;index:idx_records_date;uniqueIndex:uq_records_name_date"`
	StartTime *string    `gorm:"type:varchar(5)"`
	EndTime   *string    `gorm:"type:varchar(5)"`

	StartDate    *time.Time `gorm:"type:date;index:idx_records_period"`
	EndDate      *time.Time `gorm:"type:date;index:idx_records_period"`
	DisplayGroup string     `gorm:"type:varchar(10);not null;default:'long'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayClass is the derived classification the views and the duplicate check
// switch on.
type DisplayClass int

const (
	// ClassPoint covers one calendar day.
	ClassPoint DisplayClass = iota
	// ClassPointTimed covers part of one day, with clock times.
	ClassPointTimed
	// ClassPeriodLong is a date range shown only on the period surface.
	ClassPeriodLong
	// ClassPeriodAsPoint is a date range that also counts day-by-day: it
	// appears in date-scoped views and blocks same-day point entries.
	ClassPeriodAsPoint
)

// Class derives the display class from the populated fields, not from the
// category label.
func (r *LeaveRecord) Class() DisplayClass {
	if r.StartDate != nil && r.EndDate != nil {
		if r.DisplayGroup == DisplayGroupNormal {
			return ClassPeriodAsPoint
		}
		return ClassPeriodLong
	}
	if r.StartTime != nil && r.EndTime != nil {
		return ClassPointTimed
	}
	return ClassPoint
}

// EffectiveDate is the sort key shared by both shapes: the day itself for
// point records, the first day for periods.
func (r *LeaveRecord) EffectiveDate() time.Time {
	if r.Date != nil {
		return *r.Date
	}
	if r.StartDate != nil {
		return *r.StartDate
	}
	return time.Time{}
}
