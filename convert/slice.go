// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convert

import "cogentcore.org/colorcast/cast"

// Slice converts every color in s from type T to type U in place,
// reusing the backing array of s instead of allocating a new one, and
// returns the re-typed slice. The caller passes ownership of s in and
// gets it back as the result; s must not be used afterwards. T and U
// must both describe their channels with the same array type A (see
// [cast.Caster]), which is what makes reusing the storage valid. The
// conversion for the pair must be registered; an empty s returns an
// empty slice without invoking it.
func Slice[U cast.Caster[A], A any, T cast.Caster[A]](s []T) []U {
	f := conversion[U, T]()
	return cast.MapInPlace[U, A](s, f)
}
