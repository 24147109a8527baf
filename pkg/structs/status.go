package structs

import (
	"strings"
)

type Status string

const (
	// job states
	WAITING   Status = "waiting"
	RUNNING   Status = "running"
	COMPLETED Status = "completed"

	// instance states
	UNKNOWN Status = "unknown"
	SUCCESS Status = "success"
	FAILED  Status = "failed"
)

// IsFinalStatus reports whether a job in the given state will never
// transition again. The scheduler moves jobs waiting -> running -> completed;
// success or failure is recorded per instance, not on the job itself.
func IsFinalStatus(status Status) bool {
	return status == COMPLETED
}

// IsFinalInstanceStatus reports whether an instance in the given state
// has finished executing, one way or the other.
func IsFinalInstanceStatus(status Status) bool {
	switch status {
	case SUCCESS, FAILED:
		return true
	default:
		return false
	}
}

func ToStatus(s string) Status {
	switch strings.ToLower(s) {
	case "waiting":
		return WAITING
	case "running":
		return RUNNING
	case "completed":
		return COMPLETED
	case "unknown":
		return UNKNOWN
	case "success":
		return SUCCESS
	case "failed":
		return FAILED
	default:
		return ""
	}
}
