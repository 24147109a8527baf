package structs

// JobSpec are fields a caller may set when submitting a job.
type JobSpec struct {
	// UUID uniquely identifies the job. Optional; the client resolves a
	// random v4 UUID for any spec submitted without one.
	UUID string `json:"uuid,omitempty"`

	// Name is an optional human readable name for the job.
	Name string `json:"name,omitempty"`

	// Command is the shell command the scheduler runs for each instance.
	Command string `json:"command,omitempty"`

	// Executor selects which executor runs the command ("cook" or "mesos").
	Executor string `json:"executor,omitempty"`

	// Priority orders jobs within a user's queue, 0 to 100.
	Priority int `json:"priority,omitempty"`

	// MaxRetries is the number of instances the scheduler may launch before
	// giving the job up as failed.
	//
	// Required, must be > 0.
	MaxRetries int `json:"max_retries,omitempty"`

	// MaxRuntime caps a single instance's runtime, in milliseconds.
	MaxRuntime int64 `json:"max_runtime,omitempty"`

	// ExpectedRuntime hints how long an instance is expected to run,
	// in milliseconds.
	ExpectedRuntime int64 `json:"expected_runtime,omitempty"`

	// CPUs is the number of cpus to reserve. Fractional values are allowed.
	CPUs float64 `json:"cpus,omitempty"`

	// Mem is the amount of memory to reserve, in MB.
	Mem float64 `json:"mem,omitempty"`

	// GPUs is the number of gpus to reserve.
	GPUs int `json:"gpus,omitempty"`

	// Ports is the number of ports to reserve.
	Ports int `json:"ports,omitempty"`

	// URIs are fetched into the instance sandbox before the command runs.
	URIs []URI `json:"uris,omitempty"`

	// Env is set in the instance environment.
	Env map[string]string `json:"env,omitempty"`

	// Constraints restrict which hosts instances may be placed on.
	// Each constraint is an (attribute, operator, pattern) triple.
	Constraints [][]string `json:"constraints,omitempty"`

	// Container optionally describes a container to run the command in.
	Container map[string]interface{} `json:"container,omitempty"`

	// DisableMeaCulpaRetries stops scheduler-fault retries from being
	// forgiven (ie. counted against MaxRetries like any other failure).
	DisableMeaCulpaRetries bool `json:"disable_mea_culpa_retries,omitempty"`
}

// URI describes a resource fetched into an instance sandbox.
type URI struct {
	Value      string `json:"value"`
	Executable bool   `json:"executable,omitempty"`
	Extract    bool   `json:"extract,omitempty"`
	Cache      bool   `json:"cache,omitempty"`
}

// Job is a job as the scheduler reports it.
type Job struct {
	JobSpec `json:",inline"`

	// Status is the job's place in its lifecycle (waiting / running / completed).
	Status Status `json:"status"`

	// State summarises how the job ended (success / failed) or "running".
	State Status `json:"state,omitempty"`

	// User is the user the job was submitted as.
	User string `json:"user,omitempty"`

	// FrameworkID is the mesos framework the job ran under.
	FrameworkID string `json:"framework_id,omitempty"`

	// RetriesRemaining counts launches the scheduler may still attempt.
	RetriesRemaining int `json:"retries_remaining,omitempty"`

	// SubmitTime is when the scheduler accepted the job, unix millis.
	SubmitTime int64 `json:"submit_time,omitempty"`

	// Instances are this job's execution attempts, if any.
	Instances []*Instance `json:"instances,omitempty"`
}

// Instance is one execution attempt of a job.
type Instance struct {
	// TaskID uniquely identifies the attempt.
	TaskID string `json:"task_id"`

	// Status is the attempt's state (unknown / running / success / failed).
	Status Status `json:"status"`

	// Hostname is the host the attempt ran on.
	Hostname string `json:"hostname,omitempty"`

	// SlaveID identifies the agent within the mesos cluster.
	SlaveID string `json:"slave_id,omitempty"`

	// ExecutorID identifies the executor that ran the attempt.
	ExecutorID string `json:"executor_id,omitempty"`

	// StartTime / EndTime bound the attempt's run, unix millis.
	StartTime int64 `json:"start_time,omitempty"`
	EndTime   int64 `json:"end_time,omitempty"`

	// Preempted is set when the scheduler evicted the attempt to make room.
	Preempted bool `json:"preempted,omitempty"`

	// ReasonCode / ReasonString say why the attempt ended, when it failed.
	ReasonCode   int    `json:"reason_code,omitempty"`
	ReasonString string `json:"reason_string,omitempty"`

	// ExitCode is the command's exit code, when it ran to completion.
	ExitCode int `json:"exit_code,omitempty"`

	// OutputURL points at the attempt's sandbox.
	OutputURL string `json:"output_url,omitempty"`
}
