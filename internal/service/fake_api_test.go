package service

import (
	"context"
	"encoding/json"

	"github.com/vaultpass/vaultpass-web/internal/apiclient"
)

type call struct {
	method string
	path   string
	body   any
}

// fakeAPI records calls and answers every request with the same response or error.
type fakeAPI struct {
	calls []call
	resp  string
	raw   *apiclient.RawResponse
	err   error
}

func (f *fakeAPI) record(method, path string, body, out any) error {
	f.calls = append(f.calls, call{method: method, path: path, body: body})
	if f.err != nil {
		return f.err
	}
	if out != nil && f.resp != "" {
		return json.Unmarshal([]byte(f.resp), out)
	}
	return nil
}

func (f *fakeAPI) Get(_ context.Context, path string, out any) error {
	return f.record("GET", path, nil, out)
}

func (f *fakeAPI) Post(_ context.Context, path string, body, out any) error {
	return f.record("POST", path, body, out)
}

func (f *fakeAPI) Patch(_ context.Context, path string, body, out any) error {
	return f.record("PATCH", path, body, out)
}

func (f *fakeAPI) Delete(_ context.Context, path string, out any) error {
	return f.record("DELETE", path, nil, out)
}

func (f *fakeAPI) GetRaw(_ context.Context, path string) (*apiclient.RawResponse, error) {
	if err := f.record("GET", path, nil, nil); err != nil {
		return nil, err
	}
	return f.raw, nil
}
