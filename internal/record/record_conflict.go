package record

import "time"

// IsDuplicate reports whether a candidate (name, day) collides with an
// existing record. The record being edited is skipped via excludeID. Periods
// in the "normal" display group block every day they cover; "long" periods
// never block point entries unless explicitly opted into "normal".
func IsDuplicate(records []LeaveRecord, name string, day time.Time, excludeID string) bool {
	for i := range records {
		r := &records[i]
		if excludeID != "" && r.ID.String() == excludeID {
			continue
		}
		if r.Name != name {
			continue
		}

		switch r.Class() {
		case ClassPeriodAsPoint:
			if !day.Before(*r.StartDate) && !day.After(*r.EndDate) {
				return true
			}
		case ClassPoint, ClassPointTimed:
			if r.Date != nil && SameDay(*r.Date, day) {
				return true
			}
		}
	}
	return false
}

// HasConflict checks a normalized candidate against the snapshot. Point
// candidates check their single day; "normal" period candidates check every
// day of their range; "long" periods do not participate in duplicate checks.
func HasConflict(records []LeaveRecord, candidate *LeaveRecord, excludeID string) bool {
	switch candidate.Class() {
	case ClassPoint, ClassPointTimed:
		return IsDuplicate(records, candidate.Name, *candidate.Date, excludeID)
	case ClassPeriodAsPoint:
		for d := *candidate.StartDate; !d.After(*candidate.EndDate); d = d.AddDate(0, 0, 1) {
			if IsDuplicate(records, candidate.Name, d, excludeID) {
				return true
			}
		}
	}
	return false
}
