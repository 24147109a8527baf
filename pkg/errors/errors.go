package errors

import (
	"fmt"
)

var (
	ErrMissingURL         = fmt.Errorf("scheduler url is required")
	ErrUnsupportedAuth    = fmt.Errorf("authentication type not supported")
	ErrMissingCredentials = fmt.Errorf("http user and password are required when authentication is http_basic")
	ErrNoJobs             = fmt.Errorf("one or more jobs required")
	ErrInvalidUUID        = fmt.Errorf("invalid job uuid")
	ErrInvalidSpec        = fmt.Errorf("invalid job spec")
	ErrInvalidArg         = fmt.Errorf("invalid arg")
)
