// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package solr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/taibuivan/vubib/internal/index/document"
	"github.com/taibuivan/vubib/internal/platform/apperr"
)

// maxErrorBody caps how much of a failed response ends up in the error.
const maxErrorBody = 512

// Writer posts update payloads to the index.
type Writer struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

// NewWriter constructs a [Writer] for the given update endpoint.
func NewWriter(updateURL string, opts Options) *Writer {
	return &Writer{
		url:     updateURL,
		client:  opts.client(),
		limiter: opts.limiter(),
	}
}

/*
Save posts one XML update payload.

Returns:
  - error: TRANSPORT_ERROR on connection failure or a non-2xx response
*/
func (writer *Writer) Save(ctx context.Context, payload []byte) error {
	if writer.limiter != nil {
		if err := writer.limiter.Wait(ctx); err != nil {
			return apperr.Transport("index write throttled", err)
		}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, writer.url, bytes.NewReader(payload))
	if err != nil {
		return apperr.Transport("build index request", err)
	}
	request.Header.Set("Content-Type", "text/xml")

	response, err := writer.client.Do(request)
	if err != nil {
		return apperr.Transport("problem writing document", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
		return apperr.Transport("problem writing document",
			fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body))))
	}

	_, _ = io.Copy(io.Discard, response.Body)
	return nil
}

// DeleteRecords retracts documents by id in a single request.
func (writer *Writer) DeleteRecords(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return writer.Save(ctx, document.DeletePayload(ids))
}

// Commit asks the index to make pending changes visible.
func (writer *Writer) Commit(ctx context.Context) error {
	return writer.Save(ctx, document.CommitPayload())
}
