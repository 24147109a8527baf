package main

import (
	"context"
)

const docDelete = `Mark one or more jobs for deletion by UUID`

type optsDelete struct {
	optsGeneral

	Args struct {
		UUIDs []string `positional-arg-name:"uuid" required:"1"`
	} `positional-args:"true"`
}

func (c *optsDelete) Execute(args []string) error {
	cl, err := c.newClient()
	if err != nil {
		return err
	}

	results, err := cl.Delete(context.Background(), c.Args.UUIDs)
	if err != nil {
		return err
	}
	return output(results)
}
