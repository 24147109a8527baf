// Package client is a thin typed client for a Cook-style job scheduler's
// REST API: submit jobs, query / delete / retry them by UUID and wait for
// completion. All of the actual scheduling lives on the server; this
// package only speaks its wire contract.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os/user"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cookscheduler/jobclient/pkg/errors"
	"github.com/cookscheduler/jobclient/pkg/structs"
)

// API endpoints, fixed by the scheduler.
const (
	endpointScheduler = "/rawscheduler"
	endpointRetry     = "/retry"
	endpointList      = "/list"
)

// Client talks to a single scheduler endpoint. It holds no state beyond
// its connection configuration and is safe for concurrent use.
type Client struct {
	base *url.URL
	opts *Options
	http doer
	log  zerolog.Logger
}

// New builds a Client from the given options. Construction fails on
// configuration problems (missing url, unsupported auth mode, missing
// credentials); it performs no network calls.
func New(opts *Options) (*Client, error) {
	if opts == nil {
		opts = OptionsDefault()
	}
	if opts.URL == "" {
		return nil, errors.ErrMissingURL
	}
	base, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduler url %q: %w", opts.URL, err)
	}

	opts.sanitize()

	hc, err := newAuthClient(opts)
	if err != nil {
		return nil, err
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return &Client{base: base, opts: opts, http: hc, log: log}, nil
}

// URL returns the scheduler base endpoint this client talks to.
func (c *Client) URL() string {
	return c.opts.URL
}

// Submit sends the given job specs to the scheduler as one batched request.
//
// Specs without a UUID are resolved to a fresh random one; the result's
// UUIDs slice pairs each input spec, in order, with its identifier. Input
// specs are never modified.
//
// Invalid specs fail with an error before anything is sent. Transport and
// scheduler failures are reported in the result, not as an error: the
// scheduler accepts or rejects the batch as a whole and the result
// carries whatever the single request reported.
func (c *Client) Submit(ctx context.Context, specs []*structs.JobSpec) (*structs.SubmitResult, error) {
	if len(specs) == 0 {
		return nil, errors.ErrNoJobs
	}

	uuids := make([]string, len(specs))
	payload := make([]structs.JobSpec, len(specs))
	for i, s := range specs {
		if s == nil {
			return nil, fmt.Errorf("%w spec %d is nil", errors.ErrInvalidSpec, i)
		}
		resolved := *s
		applyDefaults(&resolved, c.opts.DefaultJobSettings)
		if resolved.UUID == "" {
			resolved.UUID = uuid.New().String()
		}
		if err := validateJobSpec(&resolved); err != nil {
			return nil, err
		}
		uuids[i] = resolved.UUID
		payload[i] = resolved
	}

	resp, err := c.do(ctx, http.MethodPost, c.addr(endpointScheduler, nil), map[string]interface{}{"jobs": payload})
	if err != nil {
		c.log.Debug().Err(err).Msg("submit request failed")
		return &structs.SubmitResult{Status: structs.ERROR, UUIDs: uuids, Reason: err.Error()}, nil
	}

	result := &structs.SubmitResult{HTTPCode: resp.Code, UUIDs: uuids}
	switch {
	case resp.ok():
		result.Status = structs.OK
	case resp.Code == http.StatusBadRequest,
		resp.Code == http.StatusUnauthorized,
		resp.Code == http.StatusForbidden,
		resp.Code == http.StatusUnprocessableEntity:
		result.Status = structs.ERROR
		result.Reason = resp.reason()
	default:
		result.Status = structs.UNKNOWNREPLY
		result.Reason = resp.reason()
	}
	return result, nil
}

// Query fetches the scheduler's record of each given job.
//
// UUIDs are packed into batched requests of at most BatchRequestSize.
// The returned slice has exactly one Result per requested UUID, in
// request order; a failure for one UUID never aborts the rest.
func (c *Client) Query(ctx context.Context, uuids []string) ([]*structs.Result, error) {
	if err := validateUUIDs(uuids); err != nil {
		return nil, err
	}

	results := []*structs.Result{}
	for _, batch := range chunkUUIDs(uuids, c.opts.BatchRequestSize) {
		results = append(results, c.queryBatch(ctx, batch, true)...)
	}
	return results, nil
}

// queryBatch queries one batch of UUIDs. A batch-level failure is split
// into per-UUID requests so one unknown job cannot poison its batchmates.
func (c *Client) queryBatch(ctx context.Context, batch []string, splitOnError bool) []*structs.Result {
	resp, err := c.do(ctx, http.MethodGet, c.addr(endpointScheduler, jobValues(batch)), nil)
	if err != nil {
		c.log.Debug().Err(err).Int("jobs", len(batch)).Msg("query request failed")
		return errResults(batch, 0, err.Error())
	}

	if !resp.ok() {
		if splitOnError && len(batch) > 1 {
			out := []*structs.Result{}
			for _, id := range batch {
				out = append(out, c.queryBatch(ctx, []string{id}, false)...)
			}
			return out
		}
		return batchFailure(batch, resp)
	}

	jobs := []*structs.Job{}
	if err := json.Unmarshal(resp.Body, &jobs); err != nil {
		return errResults(batch, resp.Code, fmt.Sprintf("malformed scheduler response: %v", err))
	}

	byUUID := map[string]*structs.Job{}
	for _, j := range jobs {
		byUUID[j.UUID] = j
	}

	out := make([]*structs.Result, len(batch))
	for i, id := range batch {
		if j, found := byUUID[id]; found {
			out[i] = structs.NewOkResult(id, resp.Code, j)
		} else {
			out[i] = structs.NewErrResult(id, resp.Code, fmt.Sprintf("job %s not returned by scheduler", id))
		}
	}
	return out
}

// Delete asks the scheduler to kill each given job. An OK result means
// "marked for deletion", not that the job's instances have terminated.
//
// Batching and the per-UUID result contract match Query.
func (c *Client) Delete(ctx context.Context, uuids []string) ([]*structs.Result, error) {
	if err := validateUUIDs(uuids); err != nil {
		return nil, err
	}

	results := []*structs.Result{}
	for _, batch := range chunkUUIDs(uuids, c.opts.BatchRequestSize) {
		results = append(results, c.deleteBatch(ctx, batch, true)...)
	}
	return results, nil
}

func (c *Client) deleteBatch(ctx context.Context, batch []string, splitOnError bool) []*structs.Result {
	resp, err := c.do(ctx, http.MethodDelete, c.addr(endpointScheduler, jobValues(batch)), nil)
	if err != nil {
		c.log.Debug().Err(err).Int("jobs", len(batch)).Msg("delete request failed")
		return errResults(batch, 0, err.Error())
	}

	if !resp.ok() {
		if splitOnError && len(batch) > 1 {
			out := []*structs.Result{}
			for _, id := range batch {
				out = append(out, c.deleteBatch(ctx, []string{id}, false)...)
			}
			return out
		}
		return batchFailure(batch, resp)
	}

	out := make([]*structs.Result, len(batch))
	for i, id := range batch {
		out[i] = structs.NewOkResult(id, resp.Code, nil)
	}
	return out
}

// Retry raises each given job's retry count to the given value, allowing
// failed jobs to be launched again. One request per UUID; the scheduler
// has no batched retry endpoint.
func (c *Client) Retry(ctx context.Context, uuids []string, retries int) ([]*structs.Result, error) {
	if err := validateUUIDs(uuids); err != nil {
		return nil, err
	}
	if retries <= 0 {
		return nil, fmt.Errorf("%w retries must be > 0", errors.ErrInvalidArg)
	}

	results := make([]*structs.Result, len(uuids))
	for i, id := range uuids {
		values := url.Values{}
		values.Set("job", id)
		values.Set("retries", strconv.Itoa(retries))

		resp, err := c.do(ctx, http.MethodPost, c.addr(endpointRetry, values), map[string]interface{}{})
		if err != nil {
			c.log.Debug().Err(err).Str("job", id).Msg("retry request failed")
			results[i] = structs.NewErrResult(id, 0, err.Error())
			continue
		}
		if resp.ok() {
			results[i] = structs.NewOkResult(id, resp.Code, nil)
		} else {
			results[i] = batchFailure([]string{id}, resp)[0]
		}
	}
	return results, nil
}

// List fetches jobs submitted by a user over a time range. The query's
// user defaults to the current process owner when unset.
func (c *Client) List(ctx context.Context, q *structs.ListQuery) ([]*structs.Job, error) {
	if q == nil {
		q = &structs.ListQuery{}
	}
	q.Sanitize()

	who := q.User
	if who == "" {
		u, err := user.Current()
		if err != nil {
			return nil, fmt.Errorf("%w list user unset and lookup failed: %v", errors.ErrInvalidArg, err)
		}
		who = u.Username
	}

	values := url.Values{}
	values.Set("user", who)
	for _, s := range q.States {
		values.Add("state", string(s))
	}
	if !q.Start.IsZero() {
		values.Set("start_ms", strconv.FormatInt(q.Start.UnixMilli(), 10))
	}
	if !q.End.IsZero() {
		values.Set("stop_ms", strconv.FormatInt(q.End.UnixMilli(), 10))
	}
	values.Set("limit", strconv.Itoa(q.Limit))

	resp, err := c.do(ctx, http.MethodGet, c.addr(endpointList, values), nil)
	if err != nil {
		return nil, err
	}
	if !resp.ok() {
		return nil, fmt.Errorf("bad status code %d, returned %s", resp.Code, resp.reason())
	}

	jobs := []*structs.Job{}
	return jobs, json.Unmarshal(resp.Body, &jobs)
}

// batchFailure maps a non-2xx reply onto every UUID of a batch.
// Codes the scheduler is known to answer with are definite errors;
// anything else we can't interpret.
func batchFailure(batch []string, resp *apiResponse) []*structs.Result {
	out := make([]*structs.Result, len(batch))
	for i, id := range batch {
		switch resp.Code {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			out[i] = structs.NewErrResult(id, resp.Code, resp.reason())
		default:
			out[i] = structs.NewUnknownResult(id, resp.Code, resp.reason())
		}
	}
	return out
}

func errResults(batch []string, code int, reason string) []*structs.Result {
	out := make([]*structs.Result, len(batch))
	for i, id := range batch {
		out[i] = structs.NewErrResult(id, code, reason)
	}
	return out
}
