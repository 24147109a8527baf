package structs

import (
	"time"
)

const (
	listLimitDefault = 150
	listLimitMax     = 1000
)

// ListQuery filters the scheduler's job listing endpoint.
type ListQuery struct {
	// User whose jobs to list. Required by the scheduler.
	User string `json:"user"`

	// States to include. Defaults to every state.
	States []Status `json:"states,omitempty"`

	// Start / End bound the submission time of listed jobs.
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`

	// Limit caps the number of jobs returned.
	Limit int `json:"limit,omitempty"`
}

// Sanitize fills defaults and clamps limits in place.
func (q *ListQuery) Sanitize() {
	if q.Limit <= 0 {
		q.Limit = listLimitDefault
	}
	if q.Limit > listLimitMax {
		q.Limit = listLimitMax
	}
	if len(q.States) == 0 {
		q.States = []Status{WAITING, RUNNING, COMPLETED, SUCCESS, FAILED}
	}
}
