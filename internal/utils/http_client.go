// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the request trace id between client and server.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 5*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/api/version")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client for baseURL with the given request timeout.
// A trace id found in a request's context is forwarded in [TraceIDHeader].
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if traceID, ok := GetTraceIDFromContext(r.Context()); ok {
				r.SetHeader(TraceIDHeader, traceID)
			}
			return nil
		})

	return &HTTPClient{Client: c}
}
