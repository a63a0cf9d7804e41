// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cast reinterprets color types as arrays and slices of their
// channel values, without copying. A color type gains access to these
// functions by implementing [Caster], which castgen generates from the
// type's declaration after verifying that its memory layout is exactly
// that of a fixed-size homogeneous channel array.
package cast

// Channel is the set of types that can be used as color channel values.
type Channel interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Caster is implemented by color types whose memory layout is identical
// to that of the channel array type A, with each channel field mapping
// to the array element at its declaration position. The interface is a
// promise, not something the functions in this package can verify, so
// implementations must only be generated by castgen, which checks the
// preconditions from the type's declaration and emits compile-time size
// assertions alongside the implementation. It must never be written by
// hand.
type Caster[A any] interface {

	// Channels returns the channel values of the color as an array.
	Channels() A
}
