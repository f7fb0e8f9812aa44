// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vubib/internal/platform/apperr"
	"github.com/taibuivan/vubib/internal/platform/dberr"
)

/*
TestWrap maps pgx errors onto application error codes.
*/
func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))

	notFound := dberr.Wrap(fmt.Errorf("scan: %w", pgx.ErrNoRows), "find_folder")
	assert.True(t, dberr.IsNotFound(notFound))

	boom := errors.New("relation \"folder\" does not exist")
	internal := dberr.Wrap(boom, "list_folders")
	assert.False(t, dberr.IsNotFound(internal))
	assert.Equal(t, apperr.CodeInternal, apperr.CodeOf(internal))
	assert.ErrorIs(t, internal, boom)
	assert.Contains(t, internal.Error(), "list_folders")
}
