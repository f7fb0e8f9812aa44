// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/vubib/pkg/pointer"
)

func TestVal(t *testing.T) {
	var missing *int
	assert.Equal(t, 0, pointer.Val(missing))
	assert.Equal(t, 3, pointer.Val(pointer.To(3)))
	assert.Equal(t, "", pointer.Val[string](nil))
}
