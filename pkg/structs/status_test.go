package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFinalStatus(t *testing.T) {
	cases := []struct {
		Name   string
		Given  Status
		Expect bool
	}{
		{"StatusUndefined", "x", false},
		{"StatusWaiting", WAITING, false},
		{"StatusRunning", RUNNING, false},
		{"StatusCompleted", COMPLETED, true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, IsFinalStatus(c.Given), c.Expect)
		})
	}
}

func TestIsFinalInstanceStatus(t *testing.T) {
	cases := []struct {
		Name   string
		Given  Status
		Expect bool
	}{
		{"StatusUndefined", "x", false},
		{"StatusUnknown", UNKNOWN, false},
		{"StatusRunning", RUNNING, false},
		{"StatusSuccess", SUCCESS, true},
		{"StatusFailed", FAILED, true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, IsFinalInstanceStatus(c.Given), c.Expect)
		})
	}
}

func TestToStatus(t *testing.T) {
	cases := []struct {
		Name   string
		Given  string
		Expect Status
	}{
		{"StatusUndefined", "x", ""},
		{"StatusWaiting", "waiting", WAITING},
		{"StatusRunning", "running", RUNNING},
		{"StatusCompleted", "completed", COMPLETED},
		{"StatusUnknown", "unknown", UNKNOWN},
		{"StatusSuccess", "success", SUCCESS},
		{"StatusFailed", "failed", FAILED},
		{"StatusUppercase", "COMPLETED", COMPLETED},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, ToStatus(c.Given), c.Expect)
		})
	}
}
