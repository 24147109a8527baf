package main

import (
	"context"
	"time"

	"github.com/cookscheduler/jobclient/pkg/structs"
)

const docList = `List a user's jobs over a time range`

type optsList struct {
	optsGeneral

	User   string   `long:"user" description:"User whose jobs to list (defaults to the current user)"`
	States []string `long:"state" description:"States to include (waiting, running, completed, success, failed)"`
	Since  string   `long:"since" description:"Only jobs submitted after this RFC3339 time"`
	Until  string   `long:"until" description:"Only jobs submitted before this RFC3339 time"`
	Limit  int      `long:"limit" description:"Maximum number of jobs to return"`
}

func (c *optsList) Execute(args []string) error {
	q := &structs.ListQuery{User: c.User, Limit: c.Limit}
	for _, s := range c.States {
		q.States = append(q.States, structs.ToStatus(s))
	}
	if c.Since != "" {
		t, err := time.Parse(time.RFC3339, c.Since)
		if err != nil {
			return err
		}
		q.Start = t
	}
	if c.Until != "" {
		t, err := time.Parse(time.RFC3339, c.Until)
		if err != nil {
			return err
		}
		q.End = t
	}

	cl, err := c.newClient()
	if err != nil {
		return err
	}

	jobs, err := cl.List(context.Background(), q)
	if err != nil {
		return err
	}
	return output(jobs)
}
