// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package worktype_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vubib/internal/core/worktype"
	"github.com/taibuivan/vubib/internal/platform/dberr"
	"github.com/taibuivan/vubib/pkg/pointer"
)

type countingRepository struct {
	types map[int]string
	calls int
	err   error
}

func (repository *countingRepository) FindByID(_ context.Context, id int, lang string) (*worktype.WorkType, error) {
	repository.calls++
	if repository.err != nil {
		return nil, repository.err
	}
	label, ok := repository.types[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &worktype.WorkType{ID: id, Type: label + "/" + lang}, nil
}

func TestLabels_Memoizes(t *testing.T) {
	repository := &countingRepository{types: map[int]string{1: "Book"}}
	labels := worktype.NewLabels(repository)

	for i := 0; i < 3; i++ {
		label, err := labels.Label(context.Background(), pointer.To(1))
		require.NoError(t, err)
		assert.Equal(t, "Book/en", label)
	}
	assert.Equal(t, 1, repository.calls)
}

func TestLabels_MissingIsEmpty(t *testing.T) {
	labels := worktype.NewLabels(&countingRepository{types: map[int]string{}})

	label, err := labels.Label(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, label)

	label, err = labels.Label(context.Background(), pointer.To(42))
	require.NoError(t, err)
	assert.Empty(t, label)
}

func TestLabels_DatabaseFailure(t *testing.T) {
	labels := worktype.NewLabels(&countingRepository{err: errors.New("timeout")})

	_, err := labels.Label(context.Background(), pointer.To(1))
	assert.EqualError(t, err, "timeout")
}
