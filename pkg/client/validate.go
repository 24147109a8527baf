package client

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cookscheduler/jobclient/pkg/errors"
	"github.com/cookscheduler/jobclient/pkg/structs"
)

// validateUUIDs checks every id parses as a UUID. The client never invents
// identifiers outside of submission, so anything malformed here is a
// caller bug, not something to send to the scheduler.
func validateUUIDs(uuids []string) error {
	if len(uuids) == 0 {
		return errors.ErrNoJobs
	}
	for _, id := range uuids {
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("%w %s", errors.ErrInvalidUUID, id)
		}
	}
	return nil
}

func validateJobSpec(s *structs.JobSpec) error {
	if s.UUID != "" {
		if _, err := uuid.Parse(s.UUID); err != nil {
			return fmt.Errorf("%w %s", errors.ErrInvalidUUID, s.UUID)
		}
	}
	if s.MaxRetries <= 0 {
		return fmt.Errorf("%w max_retries must be > 0", errors.ErrInvalidSpec)
	}
	if s.Priority < 0 || s.Priority > 100 {
		return fmt.Errorf("%w priority %d outside 0..100", errors.ErrInvalidSpec, s.Priority)
	}
	switch s.Executor {
	case "", "cook", "mesos":
	default:
		return fmt.Errorf("%w executor %s unknown", errors.ErrInvalidSpec, s.Executor)
	}
	if s.CPUs < 0 || s.Mem < 0 || s.GPUs < 0 || s.Ports < 0 {
		return fmt.Errorf("%w resource requirements must be >= 0", errors.ErrInvalidSpec)
	}
	if s.MaxRuntime < 0 || s.ExpectedRuntime < 0 {
		return fmt.Errorf("%w runtimes must be >= 0", errors.ErrInvalidSpec)
	}
	return nil
}

// applyDefaults fills zero fields of spec from the client's default job
// settings. Spec is a copy by this point - callers' structs are never touched.
func applyDefaults(spec, defaults *structs.JobSpec) {
	if defaults == nil {
		return
	}
	if spec.MaxRetries == 0 {
		spec.MaxRetries = defaults.MaxRetries
	}
	if spec.MaxRuntime == 0 {
		spec.MaxRuntime = defaults.MaxRuntime
	}
	if spec.CPUs == 0 {
		spec.CPUs = defaults.CPUs
	}
	if spec.Mem == 0 {
		spec.Mem = defaults.Mem
	}
	if spec.Executor == "" {
		spec.Executor = defaults.Executor
	}
	if spec.Priority == 0 {
		spec.Priority = defaults.Priority
	}
}
