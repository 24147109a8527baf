package client

import (
	"context"
	"time"

	"github.com/cookscheduler/jobclient/pkg/structs"
)

// Wait polls the scheduler until every given job reaches a terminal state,
// sending each job's final record on the returned channel as soon as it
// gets there. Results arrive in completion order, not request order.
//
// The channel is closed once every job is terminal or ctx is done;
// cancelling ctx is the only way to bound an otherwise endless wait, and
// releases the polling goroutine promptly. Jobs that are already terminal
// are sent on the first poll with no interval delay.
//
// Transient query failures do not abort the wait; the affected jobs are
// simply polled again on the next interval.
func (c *Client) Wait(ctx context.Context, uuids []string) (<-chan *structs.Job, error) {
	if err := validateUUIDs(uuids); err != nil {
		return nil, err
	}

	pending := make([]string, len(uuids))
	copy(pending, uuids)

	out := make(chan *structs.Job)
	go func() {
		defer close(out)

		for len(pending) > 0 {
			remaining := pending[:0]
			results, err := c.Query(ctx, pending)
			if err != nil {
				// can't happen - uuids were validated above
				return
			}

			for _, r := range results {
				if r.Ok() && structs.IsFinalStatus(r.Job.Status) {
					select {
					case out <- r.Job:
					case <-ctx.Done():
						return
					}
					continue
				}
				if !r.Ok() {
					c.log.Debug().Str("job", r.UUID).Str("reason", r.Reason).Msg("poll failed, will retry")
				}
				remaining = append(remaining, r.UUID)
			}
			pending = remaining

			if len(pending) == 0 {
				return
			}
			select {
			case <-time.After(c.opts.StatusUpdateInterval):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// WaitAll blocks until every given job is terminal, returning the final
// records in completion order. It fails with ctx.Err() if ctx is done
// before every job completes.
func (c *Client) WaitAll(ctx context.Context, uuids []string) ([]*structs.Job, error) {
	ch, err := c.Wait(ctx, uuids)
	if err != nil {
		return nil, err
	}

	jobs := []*structs.Job{}
	for j := range ch {
		jobs = append(jobs, j)
	}
	if len(jobs) < len(uuids) {
		return jobs, ctx.Err()
	}
	return jobs, nil
}
