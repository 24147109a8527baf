package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cookscheduler/jobclient/pkg/structs"
)

func TestChunkUUIDs(t *testing.T) {
	cases := []struct {
		Name   string
		Given  []string
		Size   int
		Expect [][]string
	}{
		{
			Name:   "Empty",
			Given:  []string{},
			Size:   2,
			Expect: [][]string{},
		},
		{
			Name:   "SingleBatch",
			Given:  []string{"a", "b"},
			Size:   3,
			Expect: [][]string{{"a", "b"}},
		},
		{
			Name:   "ExactBatches",
			Given:  []string{"a", "b", "c", "d"},
			Size:   2,
			Expect: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			Name:   "Remainder",
			Given:  []string{"a", "b", "c"},
			Size:   2,
			Expect: [][]string{{"a", "b"}, {"c"}},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, chunkUUIDs(c.Given, c.Size), c.Expect)
		})
	}
}

func TestJobValues(t *testing.T) {
	values := jobValues([]string{"a", "b", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, values["job"])
}

func TestApplyDefaults(t *testing.T) {
	cases := []struct {
		Name     string
		Given    *structs.JobSpec
		Defaults *structs.JobSpec
		Expect   *structs.JobSpec
	}{
		{
			Name:     "NilDefaults",
			Given:    &structs.JobSpec{Command: "id"},
			Defaults: nil,
			Expect:   &structs.JobSpec{Command: "id"},
		},
		{
			Name:     "FillsZeroFields",
			Given:    &structs.JobSpec{Command: "id"},
			Defaults: &structs.JobSpec{MaxRetries: 1, CPUs: 0.5, Mem: 128},
			Expect:   &structs.JobSpec{Command: "id", MaxRetries: 1, CPUs: 0.5, Mem: 128},
		},
		{
			Name:     "KeepsSetFields",
			Given:    &structs.JobSpec{Command: "id", MaxRetries: 5, CPUs: 2},
			Defaults: &structs.JobSpec{MaxRetries: 1, CPUs: 0.5, Mem: 128},
			Expect:   &structs.JobSpec{Command: "id", MaxRetries: 5, CPUs: 2, Mem: 128},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			applyDefaults(c.Given, c.Defaults)
			assert.Equal(t, c.Given, c.Expect)
		})
	}
}
