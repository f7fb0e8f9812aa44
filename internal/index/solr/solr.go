// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package solr is the HTTP transport to the search index.

The [Writer] posts XML update payloads to the core's update handler; the
[Reader] asks the select handler whether a document id exists. Every failure
is returned as a TRANSPORT_ERROR so callers can count it against a single
record and move on.
*/
package solr

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultTimeout bounds one HTTP round-trip when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Options configures a [Writer] or [Reader].
type Options struct {
	// Timeout bounds each request. Zero means [DefaultTimeout].
	Timeout time.Duration

	// RateLimit caps writes per second. Zero disables throttling.
	RateLimit float64

	// Client replaces the default HTTP client, mainly for tests.
	Client *http.Client
}

func (o Options) client() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func (o Options) limiter() *rate.Limiter {
	if o.RateLimit <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(o.RateLimit), 1)
}

// QueryURL derives the select endpoint from an update endpoint, e.g.
// http://host/solr/biblio/update -> http://host/solr/biblio/select.
func QueryURL(updateURL string) string {
	return strings.ReplaceAll(updateURL, "/update", "/select")
}
