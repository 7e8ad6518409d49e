package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request id so server logs can be matched to client calls.
const RequestIDHeader = "X-Request-ID"

// ResolveURL resolves ref against base the way a page resolves links: "/x" is
// origin-relative, "x" is relative to base's path, absolute URLs pass through.
func ResolveURL(base, ref string) (string, error) {
	r, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	if r.IsAbs() || base == "" {
		return r.String(), nil
	}
	b, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	return b.ResolveReference(r).String(), nil
}

// NewRequest builds a request with a JSON content type and a fresh request id.
// Headers from extra are copied first; Content-Type is always set afterwards.
func NewRequest(ctx context.Context, method, target string, body []byte, extra http.Header) (*http.Request, error) {
	if method == "" {
		method = http.MethodGet
	}
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return nil, err
	}
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}
	return req, nil
}

// PostJSON sends a JSON POST request and returns the response with its body
// already read and closed. A nil client means http.DefaultClient.
func PostJSON(ctx context.Context, client *http.Client, target string, payload any) (*http.Response, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	req, err := NewRequest(ctx, http.MethodPost, target, b, nil)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	return resp, body, nil
}

// IsSuccess reports whether status is in the 2xx range.
func IsSuccess(status int) bool {
	return status >= 200 && status < 300
}
