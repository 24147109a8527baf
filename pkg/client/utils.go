package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
)

// apiResponse is a fully-read HTTP response; Body doubles as the failure
// reason on non-2xx codes.
type apiResponse struct {
	Code int
	Body []byte
}

func (r *apiResponse) ok() bool {
	return r.Code >= 200 && r.Code < 300
}

func (r *apiResponse) reason() string {
	return string(r.Body)
}

// do issues a single JSON request and reads the whole response.
// A returned error is transport-level; scheduler rejections come back
// as an apiResponse with a non-2xx code.
func (c *Client) do(ctx context.Context, method string, addr *url.URL, in interface{}) (*apiResponse, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, addr.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.opts.Auth == AuthBasic {
		req.SetBasicAuth(c.opts.HTTPUser, c.opts.HTTPPassword)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil {
		return &apiResponse{Code: resp.StatusCode}, nil
	}

	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	c.log.Debug().Str("method", method).Str("url", addr.String()).Int("code", resp.StatusCode).Msg("api request")
	return &apiResponse{Code: resp.StatusCode, Body: data}, nil
}

// addr builds a request URL on the scheduler's base endpoint.
func (c *Client) addr(path string, values url.Values) *url.URL {
	u := &url.URL{Scheme: c.base.Scheme, Host: c.base.Host, User: c.base.User, Path: path}
	if values != nil {
		u.RawQuery = values.Encode()
	}
	return u
}

// jobValues packs job UUIDs as repeated "job" query parameters.
func jobValues(uuids []string) url.Values {
	values := url.Values{}
	for _, id := range uuids {
		values.Add("job", id)
	}
	return values
}

// chunkUUIDs slices uuids into batches of at most size, preserving order.
func chunkUUIDs(uuids []string, size int) [][]string {
	batches := [][]string{}
	for i := 0; i < len(uuids); i += size {
		end := i + size
		if end > len(uuids) {
			end = len(uuids)
		}
		batches = append(batches, uuids[i:end])
	}
	return batches
}
