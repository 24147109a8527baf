package schedulertest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookscheduler/jobclient/pkg/structs"
)

func submitBody(specs ...structs.JobSpec) *bytes.Buffer {
	data, _ := json.Marshal(map[string]interface{}{"jobs": specs})
	return bytes.NewBuffer(data)
}

func TestSubmitValidation(t *testing.T) {
	ts := httptest.NewServer(New())
	defer ts.Close()

	cases := []struct {
		Name       string
		Given      structs.JobSpec
		ExpectCode int
	}{
		{
			Name:       "Accepted",
			Given:      structs.JobSpec{UUID: uuid.New().String(), Command: "id", MaxRetries: 1},
			ExpectCode: http.StatusCreated,
		},
		{
			Name:       "MalformedUUID",
			Given:      structs.JobSpec{UUID: "nope", Command: "id", MaxRetries: 1},
			ExpectCode: http.StatusBadRequest,
		},
		{
			Name:       "MissingRetries",
			Given:      structs.JobSpec{UUID: uuid.New().String(), Command: "id"},
			ExpectCode: http.StatusUnprocessableEntity,
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/rawscheduler", "application/json", submitBody(c.Given))
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, c.ExpectCode, resp.StatusCode)
		})
	}
}

func TestQueryUnknownJobFailsWholeRequest(t *testing.T) {
	fake := New()
	ts := httptest.NewServer(fake)
	defer ts.Close()

	known := uuid.New().String()
	resp, err := http.Post(ts.URL+"/rawscheduler", "application/json",
		submitBody(structs.JobSpec{UUID: known, Command: "id", MaxRetries: 1}))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(fmt.Sprintf("%s/rawscheduler?job=%s&job=%s", ts.URL, known, uuid.New().String()))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLifecycle(t *testing.T) {
	fake := New()
	ts := httptest.NewServer(fake)
	defer ts.Close()

	id := uuid.New().String()
	resp, err := http.Post(ts.URL+"/rawscheduler", "application/json",
		submitBody(structs.JobSpec{UUID: id, Command: "false", MaxRetries: 2}))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	job := fake.Job(id)
	require.NotNil(t, job)
	assert.Equal(t, structs.WAITING, job.Status)
	assert.Equal(t, 2, job.RetriesRemaining)

	// first attempt fails but a retry remains: job goes back to waiting
	fake.Run(id)
	fake.Fail(id, "exit 1")
	job = fake.Job(id)
	assert.Equal(t, structs.WAITING, job.Status)
	assert.Len(t, job.Instances, 1)

	// second attempt succeeds: job is terminal
	fake.Run(id)
	fake.Complete(id, 0)
	job = fake.Job(id)
	assert.Equal(t, structs.COMPLETED, job.Status)
	assert.Equal(t, structs.SUCCESS, job.State)
	assert.Len(t, job.Instances, 2)
	assert.Equal(t, structs.SUCCESS, job.Instances[1].Status)
}

func TestBasicAuth(t *testing.T) {
	ts := httptest.NewServer(New(WithBasicAuth("user", "pass")))
	defer ts.Close()

	// no credentials
	resp, err := http.Get(ts.URL + "/rawscheduler?job=" + uuid.New().String())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// wrong credentials
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/rawscheduler?job="+uuid.New().String(), nil)
	require.NoError(t, err)
	req.SetBasicAuth("user", "wrong")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
