// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query parameters.

Each helper returns nil when the input is empty or malformed, so handlers can
treat "?genreId=abc" exactly like a missing parameter. Use [strconv] directly
when malformed input must be reported to the caller.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToInt64Ptr parses a base-10 int64. It returns nil on empty or malformed input.
func ToInt64Ptr(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ToIntPtr parses a base-10 int. It returns nil on empty or malformed input.
func ToIntPtr(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// ToInt32Ptr parses a base-10 int32. Values outside the int32 range count as
// malformed, so they never reach an INTEGER column.
func ToInt32Ptr(s string) *int32 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil
	}
	n := int32(v)
	return &n
}

// ToBoolPtr parses a boolean ("true", "1", "false", "0", ...). It returns nil
// on empty or malformed input.
func ToBoolPtr(s string) *bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return &v
}

// ToStringPtr returns nil for an empty string and a pointer to s otherwise.
// Whitespace is preserved; trimming is the caller's concern.
func ToStringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
