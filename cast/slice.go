// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cast

import (
	"fmt"
	"unsafe"
)

// Channels reinterprets a slice of colors as a flat slice of their
// channel values, without copying. The result shares the backing array
// of colors: channel i of colors[j] is at index j*N+i, where N is the
// channel count of the array type A. C must be the channel type of A.
func Channels[C Channel, A any, T Caster[A]](colors []T) []C {
	n := NumChannels[C, A]()
	if len(colors) == 0 {
		return nil
	}
	return unsafe.Slice((*C)(unsafe.Pointer(unsafe.SliceData(colors))), len(colors)*n)
}

// Colors reinterprets a flat slice of channel values as a slice of
// colors of type T, without copying. The result shares the backing
// array of channels. The length of channels must be a multiple of the
// channel count of T; Colors panics otherwise.
func Colors[T Caster[A], A any, C Channel](channels []C) []T {
	n := NumChannels[C, A]()
	if len(channels)%n != 0 {
		panic(fmt.Sprintf("cast: channel slice length %d is not a multiple of the channel count %d", len(channels), n))
	}
	if len(channels) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(channels))), len(channels)/n)
}

// MapInPlace applies f to every color in s in order, writing each
// result back into the slot it was read from and reusing the backing
// array of s, which it returns reinterpreted as a slice of U. The
// shared channel array type A of T and U is what makes the slot reuse
// valid. An empty s returns an empty slice with no calls to f.
func MapInPlace[U Caster[A], A any, T Caster[A]](s []T, f func(T) U) []U {
	out := reslice[U](s)
	for i := range s {
		out[i] = f(s[i])
	}
	return out
}

// reslice reinterprets the backing array of s as holding U values. It
// is the single point where the layout promise made by [Caster]
// implementations becomes an actual pointer conversion; everything
// else in this package and in convert goes through it or through the
// flat-channel casts above.
func reslice[U, T any](s []T) []U {
	if len(s) == 0 {
		return nil
	}
	var t T
	var u U
	if unsafe.Sizeof(t) != unsafe.Sizeof(u) {
		panic(fmt.Sprintf("cast: cannot reinterpret %d byte elements as %d byte elements", unsafe.Sizeof(t), unsafe.Sizeof(u)))
	}
	return unsafe.Slice((*U)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}
