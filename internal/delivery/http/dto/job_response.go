package dto

import (
	"time"

	"job-tracker/internal/domain/job"
)

// JobResponse is the wire shape of a record: id as an ObjectID hex string,
// date_saved as ISO-8601 or null, every optional field null when absent.
type JobResponse struct {
	ID          string  `json:"id"`
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	URL         *string `json:"url"`
	Platform    *string `json:"platform"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
	DateSaved   *string `json:"date_saved"`
}

type SummaryResponse struct {
	TotalJobs       int64            `json:"total_jobs"`
	StatusBreakdown map[string]int64 `json:"status_breakdown"`
	Platforms       map[string]int64 `json:"platforms"`
}

func FromRecord(rec *job.Record) JobResponse {
	var saved *string
	if rec.DateSaved != nil {
		s := rec.DateSaved.UTC().Format(time.RFC3339)
		saved = &s
	}

	return JobResponse{
		ID:          rec.ID.Hex(),
		Title:       rec.Title,
		Company:     rec.Company,
		Location:    rec.Location,
		URL:         rec.URL,
		Platform:    rec.Platform,
		Description: rec.Description,
		Status:      rec.Status,
		Notes:       rec.Notes,
		DateSaved:   saved,
	}
}

func FromRecords(recs []job.Record) []JobResponse {
	out := make([]JobResponse, 0, len(recs))
	for i := range recs {
		out = append(out, FromRecord(&recs[i]))
	}
	return out
}
