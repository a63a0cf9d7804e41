// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package convert provides unclamped conversion between color types.
// Each color package registers the conversions it implements with
// [Register], and any code can then convert between the registered
// types with [FromUnclamped] and [Slice] without knowing the concrete
// types involved. Conversions are unclamped: the result may fall
// outside the valid range of the destination color space, and checking
// or clamping it is a separate concern layered on top of this package.
package convert

import "reflect"

// edge identifies a directed conversion between two color types.
type edge struct {
	src, dst reflect.Type
}

// edges has the registered conversion functions, stored as their
// concrete func(T) U types. It is written only by [Register] during
// package initialization and read-only after that, so it needs no
// locking.
var edges = map[edge]any{}

// Register declares that colors of type U can be converted from colors
// of type T by the given function, making the pair available to
// [FromUnclamped], [IntoUnclamped], and [Slice]. The function must be
// pure and must not fail; an out-of-range result is a value, not an
// error. Registering a pair does not register its reverse: each
// direction is its own conversion and must be registered separately.
// Register must only be called during package initialization; it
// panics on a nil function or a duplicate pair.
func Register[T, U any](f func(T) U) {
	if f == nil {
		panic("convert: Register called with a nil function")
	}
	e := edge{reflect.TypeFor[T](), reflect.TypeFor[U]()}
	if _, has := edges[e]; has {
		panic("convert: conversion from " + e.src.String() + " to " + e.dst.String() + " is already registered")
	}
	edges[e] = f
}

// Registered reports whether a conversion from T to U has been
// registered.
func Registered[T, U any]() bool {
	_, has := edges[edge{reflect.TypeFor[T](), reflect.TypeFor[U]()}]
	return has
}

// conversion returns the registered conversion function from T to U,
// panicking if there is none, which indicates a missing Register call
// for the pair.
func conversion[U, T any]() func(T) U {
	e := edge{reflect.TypeFor[T](), reflect.TypeFor[U]()}
	f, has := edges[e]
	if !has {
		panic("convert: no conversion from " + e.src.String() + " to " + e.dst.String() + " is registered")
	}
	return f.(func(T) U)
}

// FromUnclamped converts the given color to a color of type U, using
// the conversion function registered for the pair. The result might be
// invalid in its color space: for example, converting a high-chroma
// polar color to RGB can produce channel values outside [0, 1].
func FromUnclamped[U, T any](src T) U {
	return conversion[U, T]()(src)
}

// IntoUnclamped converts the given color to a color of type U. It is
// the same conversion as [FromUnclamped], provided so that call sites
// can be read in either direction, and is deliberately a wrapper over
// it rather than a second implementation.
func IntoUnclamped[U, T any](src T) U {
	return FromUnclamped[U](src)
}
