package view

import "github.com/kotani6053/nakatu.yasumi/internal/record"

type ViewsResponse struct {
	Date    string                  `json:"date"`
	Day     []record.RecordResponse `json:"day"`
	Periods []record.RecordResponse `json:"periods"`
}

type DayCountsResponse struct {
	Year   int            `json:"year"`
	Month  int            `json:"month"`
	Counts map[string]int `json:"counts"`
}

type CategoryOption struct {
	Value string `json:"value"`
	Shape string `json:"shape"`
}

type FormOptionsResponse struct {
	Categories []CategoryOption `json:"categories"`
	Reasons    []string         `json:"reasons"`
	TimeSlots  []string         `json:"time_slots"`
}
