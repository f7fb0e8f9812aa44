// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package work_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vubib/internal/core/work"
	"github.com/taibuivan/vubib/pkg/pointer"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name   string
		status *int16
		want   string
	}{
		{"null", nil, work.StatusInactive},
		{"zero", pointer.To[int16](0), work.StatusNeedsReview},
		{"two", pointer.To[int16](2), work.StatusNeedsReview},
		{"one", pointer.To[int16](1), work.StatusActive},
		{"other", pointer.To[int16](5), work.StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, work.StatusLabel(tt.status))
		})
	}
}

func TestFullTitle(t *testing.T) {
	w := &work.Work{Title: "Confessions"}
	assert.Equal(t, "Confessions", w.FullTitle())

	w.Subtitle = "Books I-XIII"
	assert.Equal(t, "Confessions: Books I-XIII", w.FullTitle())
}
