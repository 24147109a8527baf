package structs

// ResultStatus tags a per-job api reply.
type ResultStatus string

const (
	// OK means the scheduler accepted / answered the request.
	OK ResultStatus = "OK"

	// ERROR means the scheduler rejected the request (bad input, auth,
	// unknown job) or the request never reached it at all.
	ERROR ResultStatus = "ERROR"

	// UNKNOWNREPLY means the scheduler answered with a status code we
	// don't recognise; the job may or may not have been acted on.
	UNKNOWNREPLY ResultStatus = "UNKNOWN"
)

// Result is the outcome of a query / delete / retry for a single job UUID.
//
// Exactly one of Job or Reason is meaningful: Job on OK, Reason otherwise.
type Result struct {
	// UUID is the job this result is for, matching the request order.
	UUID string `json:"uuid"`

	// Status tags the result.
	Status ResultStatus `json:"status"`

	// HTTPCode is the status code of the underlying request, 0 if the
	// request could not be sent.
	HTTPCode int `json:"http_code,omitempty"`

	// Job holds the scheduler's record of the job, set on OK query results.
	Job *Job `json:"data,omitempty"`

	// Reason is a human readable failure message, drawn from the response
	// body or the transport error.
	Reason string `json:"reason,omitempty"`
}

// NewOkResult builds an OK result for the given UUID.
func NewOkResult(uuid string, code int, job *Job) *Result {
	return &Result{UUID: uuid, Status: OK, HTTPCode: code, Job: job}
}

// NewErrResult builds an ERROR result for the given UUID.
func NewErrResult(uuid string, code int, reason string) *Result {
	return &Result{UUID: uuid, Status: ERROR, HTTPCode: code, Reason: reason}
}

// NewUnknownResult builds an UNKNOWN result for the given UUID.
func NewUnknownResult(uuid string, code int, reason string) *Result {
	return &Result{UUID: uuid, Status: UNKNOWNREPLY, HTTPCode: code, Reason: reason}
}

// Ok reports whether the result is a success.
func (r *Result) Ok() bool {
	return r.Status == OK
}

// Errored reports whether the result is a definite failure.
func (r *Result) Errored() bool {
	return r.Status == ERROR
}

// SubmitResult is the outcome of a batched job submission.
//
// The scheduler accepts or rejects the batch as one request; UUIDs pairs
// each submitted spec (in order) with its resolved identifier so callers
// can recover identifiers the client generated.
type SubmitResult struct {
	// Status tags the result.
	Status ResultStatus `json:"status"`

	// HTTPCode is the status code of the underlying request, 0 if the
	// request could not be sent.
	HTTPCode int `json:"http_code,omitempty"`

	// UUIDs are the job identifiers submitted, one per input spec, in
	// input order. Set regardless of outcome; on failure they name the
	// jobs that were NOT scheduled.
	UUIDs []string `json:"data,omitempty"`

	// Reason is a human readable failure message.
	Reason string `json:"reason,omitempty"`
}

// Ok reports whether the batch was accepted.
func (r *SubmitResult) Ok() bool {
	return r.Status == OK
}
