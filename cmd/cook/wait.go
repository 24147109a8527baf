package main

import (
	"context"
	"time"
)

const docWait = `Block until the given jobs complete, printing each as it finishes`

type optsWait struct {
	optsGeneral

	Timeout time.Duration `long:"timeout" description:"Give up after this long (eg. 10m). Unbounded when unset"`

	Args struct {
		UUIDs []string `positional-arg-name:"uuid" required:"1"`
	} `positional-args:"true"`
}

func (c *optsWait) Execute(args []string) error {
	ctx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cl, err := c.newClient()
	if err != nil {
		return err
	}

	jobs, err := cl.Wait(ctx, c.Args.UUIDs)
	if err != nil {
		return err
	}

	seen := 0
	for job := range jobs {
		if err := output(job); err != nil {
			return err
		}
		seen++
	}
	if seen < len(c.Args.UUIDs) {
		return ctx.Err()
	}
	return nil
}
