package main

import (
	"context"
)

const docRetry = `Raise the retry count of one or more jobs by UUID`

type optsRetry struct {
	optsGeneral

	Retries int `long:"retries" short:"r" default:"1" description:"New retry count"`

	Args struct {
		UUIDs []string `positional-arg-name:"uuid" required:"1"`
	} `positional-args:"true"`
}

func (c *optsRetry) Execute(args []string) error {
	cl, err := c.newClient()
	if err != nil {
		return err
	}

	results, err := cl.Retry(context.Background(), c.Args.UUIDs, c.Retries)
	if err != nil {
		return err
	}
	return output(results)
}
