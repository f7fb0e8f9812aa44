// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vubib/internal/platform/ctxutil"
)

/*
TestContext_RunID verifies that run IDs can be injected and retrieved.
*/
func TestContext_RunID(t *testing.T) {
	ctx := context.Background()
	runID := "0192f6a0-7c1e-7000-8000-000000000001"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRunID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRunID(ctx, runID)
	assert.Equal(t, runID, ctxutil.GetRunID(ctx))
}
