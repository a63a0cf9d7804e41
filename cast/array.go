// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cast

import (
	"reflect"
	"unsafe"
)

// FromArray returns the color of type T with the given channel values.
// It is the inverse of [Caster.Channels].
func FromArray[T Caster[A], A any](a A) T {
	return *(*T)(unsafe.Pointer(&a))
}

// NumChannels returns the number of channels in the channel array type
// A, which must be an array of C. It panics otherwise, as that always
// indicates a mismatched instantiation at the call site.
func NumChannels[C Channel, A any]() int {
	at := reflect.TypeFor[A]()
	ct := reflect.TypeFor[C]()
	if at.Kind() != reflect.Array || at.Elem() != ct {
		panic("cast: " + at.String() + " is not an array of " + ct.String())
	}
	return at.Len()
}
