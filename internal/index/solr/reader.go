// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package solr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/taibuivan/vubib/internal/platform/apperr"
)

// Reader checks document existence against the select endpoint.
type Reader struct {
	url    string
	client *http.Client
}

// NewReader constructs a [Reader] for the given select endpoint.
func NewReader(queryURL string, opts Options) *Reader {
	return &Reader{url: queryURL, client: opts.client()}
}

type selectResponse struct {
	Response struct {
		NumFound int `json:"numFound"`
	} `json:"response"`
}

// HasRecord reports whether exactly one document carries the id. Zero
// matches is a normal "false", not an error.
func (reader *Reader) HasRecord(ctx context.Context, id string) (bool, error) {
	params := url.Values{}
	params.Set("q", `id:"`+strings.ReplaceAll(id, `"`, `\"`)+`"`)
	params.Set("wt", "json")

	target := reader.url + "?" + params.Encode()
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return false, apperr.Transport("build index query", err)
	}

	response, err := reader.client.Do(request)
	if err != nil {
		return false, apperr.Transport("index query failed", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
		return false, apperr.Transport("index query failed",
			fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body))))
	}

	var result selectResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return false, apperr.Transport("decode index response", err)
	}

	return result.Response.NumFound == 1, nil
}
