package record

type SaveRecordRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Reason   string `json:"reason"`

	// Point shape: the selected calendar day, plus clock times for
	// time-bounded categories.
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	// Period shape.
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	DisplayGroup string `json:"display_group" binding:"omitempty,oneof=long normal"`
}

type RecordResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Shape        string  `json:"shape"`
	Reason       string  `json:"reason,omitempty"`
	Date         *string `json:"date,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	DisplayGroup string  `json:"display_group,omitempty"`
	CreatedAt    string  `json:"created_at"`
}
