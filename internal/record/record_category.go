package record

// Category labels a leave record. Every category carries a Shape that decides
// which date fields the record uses, so downstream code switches on structure
// instead of matching label strings.
type Category string

const (
	CategoryPaidLeave          Category = "paid-leave"
	CategoryHourlyPaidLeave    Category = "hourly-paid-leave"
	CategoryTardy              Category = "tardy"
	CategoryEarlyLeave         Category = "early-leave"
	CategoryOuting             Category = "outing"
	CategoryAbsence            Category = "absence"
	CategoryAbsenceNoContact   Category = "absence-no-contact"
	CategoryBusinessTrip       Category = "business-trip"
	CategoryFieldWork          Category = "field-work"
	CategoryConsecutiveHoliday Category = "consecutive-holiday"
	CategoryExtendedLeave      Category = "extended-leave"
	CategoryBereavementLeave   Category = "bereavement-leave"
)

// Shape selects the date fields a category requires.
type Shape int

const (
	// ShapePoint records cover one calendar day.
	ShapePoint Shape = iota
	// ShapePointTimed records cover part of one day and require clock times.
	ShapePointTimed
	// ShapePeriod records cover an inclusive date range.
	ShapePeriod
)

func (s Shape) String() string {
	switch s {
	case ShapePointTimed:
		return "point-timed"
	case ShapePeriod:
		return "period"
	default:
		return "point"
	}
}

var categoryShapes = map[Category]Shape{
	CategoryPaidLeave:          ShapePoint,
	CategoryAbsence:            ShapePoint,
	CategoryAbsenceNoContact:   ShapePoint,
	CategoryBusinessTrip:       ShapePoint,
	CategoryFieldWork:          ShapePoint,
	CategoryHourlyPaidLeave:    ShapePointTimed,
	CategoryTardy:              ShapePointTimed,
	CategoryEarlyLeave:         ShapePointTimed,
	CategoryOuting:             ShapePointTimed,
	CategoryConsecutiveHoliday: ShapePeriod,
	CategoryExtendedLeave:      ShapePeriod,
	CategoryBereavementLeave:   ShapePeriod,
}

// ShapeOf returns the shape for a category, with ok=false for unknown labels.
func ShapeOf(c Category) (Shape, bool) {
	s, ok := categoryShapes[c]
	return s, ok
}

// Categories returns every known category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryPaidLeave,
		CategoryHourlyPaidLeave,
		CategoryTardy,
		CategoryEarlyLeave,
		CategoryOuting,
		CategoryAbsence,
		CategoryAbsenceNoContact,
		CategoryBusinessTrip,
		CategoryFieldWork,
		CategoryConsecutiveHoliday,
		CategoryExtendedLeave,
		CategoryBereavementLeave,
	}
}
