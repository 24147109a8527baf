// Package schedulertest is an in-memory stand-in for the scheduler's REST
// API, intended for testing code built on the job client. It implements
// the wire contract (submission, query, delete, retry, list) over a job
// table whose lifecycle the test scripts by hand - there is no placement,
// no resource accounting and nothing actually runs.
package schedulertest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/cookscheduler/jobclient/pkg/structs"
)

// Scheduler is a fake scheduler serving the wire contract over an
// in-memory job table. It implements http.Handler; wrap it in an
// httptest.Server to point a client at it.
type Scheduler struct {
	mu     sync.Mutex
	jobs   map[string]*structs.Job
	order  []string
	router *mux.Router

	user     string
	password string
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithBasicAuth makes the scheduler reject requests that don't carry the
// given HTTP basic credentials.
func WithBasicAuth(user, password string) Option {
	return func(s *Scheduler) {
		s.user = user
		s.password = password
	}
}

// New builds an empty fake scheduler.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{jobs: map[string]*structs.Job{}}
	for _, o := range opts {
		o(s)
	}

	router := mux.NewRouter()
	router.HandleFunc("/rawscheduler", s.submit).Methods(http.MethodPost)
	router.HandleFunc("/rawscheduler", s.query).Methods(http.MethodGet)
	router.HandleFunc("/rawscheduler", s.delete).Methods(http.MethodDelete)
	router.HandleFunc("/retry", s.retry).Methods(http.MethodPost)
	router.HandleFunc("/list", s.list).Methods(http.MethodGet)
	s.router = router
	return s
}

func (s *Scheduler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.user != "" {
		u, p, ok := r.BasicAuth()
		if !ok || u != s.user || p != s.password {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
	}
	s.router.ServeHTTP(w, r)
}

func (s *Scheduler) submit(w http.ResponseWriter, r *http.Request) {
	in := struct {
		Jobs []structs.JobSpec `json:"jobs"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(in.Jobs) == 0 {
		http.Error(w, "no jobs given", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// reject the whole batch before accepting any of it
	for _, spec := range in.Jobs {
		if _, err := uuid.Parse(spec.UUID); err != nil {
			http.Error(w, fmt.Sprintf("malformed uuid %q", spec.UUID), http.StatusBadRequest)
			return
		}
		if spec.MaxRetries <= 0 {
			http.Error(w, "max_retries must be > 0", http.StatusUnprocessableEntity)
			return
		}
		if _, exists := s.jobs[spec.UUID]; exists {
			http.Error(w, fmt.Sprintf("job %s already exists", spec.UUID), http.StatusUnprocessableEntity)
			return
		}
	}

	for _, spec := range in.Jobs {
		job := &structs.Job{
			JobSpec:          spec,
			Status:           structs.WAITING,
			RetriesRemaining: spec.MaxRetries,
			SubmitTime:       time.Now().UnixMilli(),
			User:             s.requestUser(r),
		}
		s.jobs[spec.UUID] = job
		s.order = append(s.order, spec.UUID)
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Scheduler) query(w http.ResponseWriter, r *http.Request) {
	ids := r.URL.Query()["job"]
	if len(ids) == 0 {
		http.Error(w, "no jobs given", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// any unknown uuid fails the whole request, matching the scheduler
	found := []*structs.Job{}
	for _, id := range ids {
		job, ok := s.jobs[id]
		if !ok {
			http.Error(w, fmt.Sprintf("unknown job %s", id), http.StatusNotFound)
			return
		}
		found = append(found, job)
	}

	writeJSON(w, found)
}

func (s *Scheduler) delete(w http.ResponseWriter, r *http.Request) {
	ids := r.URL.Query()["job"]
	if len(ids) == 0 {
		http.Error(w, "no jobs given", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if _, ok := s.jobs[id]; !ok {
			http.Error(w, fmt.Sprintf("unknown job %s", id), http.StatusNotFound)
			return
		}
	}
	for _, id := range ids {
		job := s.jobs[id]
		job.Status = structs.COMPLETED
		job.State = structs.FAILED
		for _, inst := range job.Instances {
			if !structs.IsFinalInstanceStatus(inst.Status) {
				inst.Status = structs.FAILED
				inst.ReasonString = "killed by user"
			}
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Scheduler) retry(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("job")
	retries := r.URL.Query().Get("retries")

	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown job %s", id), http.StatusNotFound)
		return
	}
	n := 0
	if _, err := fmt.Sscanf(retries, "%d", &n); err != nil || n <= 0 {
		http.Error(w, "retries must be > 0", http.StatusBadRequest)
		return
	}

	job.RetriesRemaining = n
	if job.Status == structs.COMPLETED {
		job.Status = structs.WAITING
		job.State = ""
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Scheduler) list(w http.ResponseWriter, r *http.Request) {
	who := r.URL.Query().Get("user")
	if who == "" {
		http.Error(w, "user is required", http.StatusBadRequest)
		return
	}
	states := map[structs.Status]bool{}
	for _, st := range r.URL.Query()["state"] {
		states[structs.ToStatus(st)] = true
	}
	limit := 0
	fmt.Sscanf(r.URL.Query().Get("limit"), "%d", &limit)

	s.mu.Lock()
	defer s.mu.Unlock()

	found := []*structs.Job{}
	for _, id := range s.order {
		job := s.jobs[id]
		if job.User != who {
			continue
		}
		if len(states) > 0 && !states[job.Status] && !states[job.State] {
			continue
		}
		found = append(found, job)
		if limit > 0 && len(found) >= limit {
			break
		}
	}
	writeJSON(w, found)
}

// Run moves a job to running with a fresh running instance, as if the
// scheduler had placed it. Unknown UUIDs are ignored.
func (s *Scheduler) Run(jobUUID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobUUID]
	if !ok {
		return
	}
	job.Status = structs.RUNNING
	job.State = structs.RUNNING
	job.RetriesRemaining--
	job.Instances = append(job.Instances, &structs.Instance{
		TaskID:    uuid.New().String(),
		Status:    structs.RUNNING,
		Hostname:  "fake-host",
		StartTime: time.Now().UnixMilli(),
	})
}

// Complete finishes a job's latest instance successfully and marks the
// job terminal. Jobs with no instance get one.
func (s *Scheduler) Complete(jobUUID string, exitCode int) {
	s.finish(jobUUID, structs.SUCCESS, exitCode, "")
}

// Fail finishes a job's latest instance as failed. The job only goes
// terminal once its retries are spent.
func (s *Scheduler) Fail(jobUUID string, reason string) {
	s.finish(jobUUID, structs.FAILED, 1, reason)
}

func (s *Scheduler) finish(jobUUID string, st structs.Status, exitCode int, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobUUID]
	if !ok {
		return
	}
	if len(job.Instances) == 0 {
		job.RetriesRemaining--
		job.Instances = append(job.Instances, &structs.Instance{
			TaskID:    uuid.New().String(),
			Hostname:  "fake-host",
			StartTime: time.Now().UnixMilli(),
		})
	}

	inst := job.Instances[len(job.Instances)-1]
	inst.Status = st
	inst.EndTime = time.Now().UnixMilli()
	inst.ExitCode = exitCode
	inst.ReasonString = reason

	if st == structs.SUCCESS || job.RetriesRemaining <= 0 {
		job.Status = structs.COMPLETED
		job.State = st
	} else {
		job.Status = structs.WAITING
		job.State = structs.RUNNING
	}
}

// Job returns a copy of the scheduler's record of the given job, or nil.
func (s *Scheduler) Job(jobUUID string) *structs.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobUUID]
	if !ok {
		return nil
	}
	cp := *job
	return &cp
}

func (s *Scheduler) requestUser(r *http.Request) string {
	if u, _, ok := r.BasicAuth(); ok {
		return u
	}
	return "anonymous"
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
