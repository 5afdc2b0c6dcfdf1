// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer handles the optional values that flow through the catalogue.

A nil pointer means "not supplied": an absent filter, a null synopsis. These
helpers build such values and read them back with an explicit default.
*/
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Val returns *p, or the zero value of T when p is nil.
func Val[T any](p *T) T {
	var zero T
	return Fallback(p, zero)
}

// Fallback returns *p, or def when p is nil.
func Fallback[T any](p *T, def T) T {
	if p != nil {
		return *p
	}
	return def
}
