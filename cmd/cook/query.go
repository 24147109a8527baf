package main

import (
	"context"
)

const docQuery = `Query the scheduler's record of one or more jobs by UUID`

type optsQuery struct {
	optsGeneral

	Args struct {
		UUIDs []string `positional-arg-name:"uuid" required:"1"`
	} `positional-args:"true"`
}

func (c *optsQuery) Execute(args []string) error {
	cl, err := c.newClient()
	if err != nil {
		return err
	}

	results, err := cl.Query(context.Background(), c.Args.UUIDs)
	if err != nil {
		return err
	}
	return output(results)
}
