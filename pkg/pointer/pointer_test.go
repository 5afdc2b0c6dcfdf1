// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/movix/pkg/pointer"
)

func TestPointer(t *testing.T) {
	year := pointer.To(1999)
	*year++

	assert.Equal(t, 2000, pointer.Val(year))
	assert.Equal(t, 0, pointer.Val[int](nil))
	assert.True(t, pointer.Fallback[bool](nil, true))
	assert.False(t, pointer.Fallback(pointer.To(false), true))
}
