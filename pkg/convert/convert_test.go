// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/movix/pkg/convert"
)

func TestToInt64Ptr(t *testing.T) {
	require.NotNil(t, convert.ToInt64Ptr("42"))
	assert.Equal(t, int64(42), *convert.ToInt64Ptr("42"))
	assert.Equal(t, int64(-3), *convert.ToInt64Ptr(" -3 "))

	assert.Nil(t, convert.ToInt64Ptr(""))
	assert.Nil(t, convert.ToInt64Ptr("abc"))
	assert.Nil(t, convert.ToInt64Ptr("1.5"))
	assert.Nil(t, convert.ToInt64Ptr("99999999999999999999"))
}

func TestToIntPtr(t *testing.T) {
	require.NotNil(t, convert.ToIntPtr("2024"))
	assert.Equal(t, 2024, *convert.ToIntPtr("2024"))

	assert.Nil(t, convert.ToIntPtr(""))
	assert.Nil(t, convert.ToIntPtr("twenty"))
}

func TestToInt32Ptr(t *testing.T) {
	require.NotNil(t, convert.ToInt32Ptr("1995"))
	assert.Equal(t, int32(1995), *convert.ToInt32Ptr(" 1995 "))
	assert.Equal(t, int32(2147483647), *convert.ToInt32Ptr("2147483647"))

	assert.Nil(t, convert.ToInt32Ptr(""))
	assert.Nil(t, convert.ToInt32Ptr("19x9"))
	assert.Nil(t, convert.ToInt32Ptr("2147483648"))
	assert.Nil(t, convert.ToInt32Ptr("3000000000"))
	assert.Nil(t, convert.ToInt32Ptr("-3000000000"))
}

func TestToBoolPtr(t *testing.T) {
	require.NotNil(t, convert.ToBoolPtr("true"))
	assert.True(t, *convert.ToBoolPtr("true"))
	assert.False(t, *convert.ToBoolPtr("0"))

	assert.Nil(t, convert.ToBoolPtr(""))
	assert.Nil(t, convert.ToBoolPtr("yes"))
}

func TestToStringPtr(t *testing.T) {
	assert.Nil(t, convert.ToStringPtr(""))
	require.NotNil(t, convert.ToStringPtr("  x "))
	assert.Equal(t, "  x ", *convert.ToStringPtr("  x "))
}
