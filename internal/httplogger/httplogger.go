// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package httplogger provides a http.RoundTripper middleware that logs HTTP
// requests and responses.
package httplogger

import (
	"net/http"
	"time"

	"go.astrophena.name/aidemos/internal/logger"
	"go.astrophena.name/aidemos/internal/request"
)

// New returns a http.RoundTripper that logs each request made through t: the
// method, the URL without query and the outcome. If t is nil,
// http.DefaultTransport is used.
func New(t http.RoundTripper, logf logger.Logf) http.RoundTripper {
	if t == nil {
		t = http.DefaultTransport
	}
	return &loggingTransport{transport: t, logf: logger.Or(logf)}
}

// Client returns an HTTP client with the timeout of request.DefaultClient that
// logs its requests to logf.
func Client(logf logger.Logf) *http.Client {
	return &http.Client{
		Timeout:   request.DefaultClient.Timeout,
		Transport: New(nil, logf),
	}
}

type loggingTransport struct {
	transport http.RoundTripper
	logf      logger.Logf

	now func() time.Time // set in tests
}

func (t *loggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	now := time.Now
	if t.now != nil {
		now = t.now
	}

	// Query strings may carry credentials.
	u := *r.URL
	u.RawQuery = ""
	u.User = nil

	start := now()
	resp, err := t.transport.RoundTrip(r)
	took := now().Sub(start).Seconds()

	if err != nil {
		t.logf("HTTP: %s %s: %v (%.3fs)", r.Method, u.String(), err, took)
		return nil, err
	}
	t.logf("HTTP: %s %s: %s (%.3fs)", r.Method, u.String(), resp.Status, took)
	return resp, nil
}
