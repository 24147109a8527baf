package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/cookscheduler/jobclient/pkg/structs"
)

const docSubmit = `Submit one or more jobs to the scheduler`

type optsSubmit struct {
	optsGeneral

	File string `long:"file" short:"f" description:"Read a JSON array of job specs from this file ('-' for stdin)"`

	Command    string  `long:"command" short:"c" description:"Command for a single inline job"`
	Name       string  `long:"name" description:"Name for the inline job"`
	CPUs       float64 `long:"cpus" description:"CPUs for the inline job"`
	Mem        float64 `long:"mem" description:"Memory (MB) for the inline job"`
	MaxRetries int     `long:"max-retries" default:"1" description:"Retries for the inline job"`
}

func (c *optsSubmit) Execute(args []string) error {
	specs, err := c.specs()
	if err != nil {
		return err
	}

	cl, err := c.newClient()
	if err != nil {
		return err
	}

	result, err := cl.Submit(context.Background(), specs)
	if err != nil {
		return err
	}
	return output(result)
}

func (c *optsSubmit) specs() ([]*structs.JobSpec, error) {
	if c.File != "" {
		var data []byte
		var err error
		if c.File == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(c.File)
		}
		if err != nil {
			return nil, err
		}
		specs := []*structs.JobSpec{}
		return specs, json.Unmarshal(data, &specs)
	}

	if c.Command == "" {
		return nil, fmt.Errorf("either --file or --command is required")
	}
	return []*structs.JobSpec{{
		Name:       c.Name,
		Command:    c.Command,
		CPUs:       c.CPUs,
		Mem:        c.Mem,
		MaxRetries: c.MaxRetries,
	}}, nil
}
