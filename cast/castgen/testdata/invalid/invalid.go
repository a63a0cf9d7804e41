// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invalid

import "structs"

// Blend is any color that can blend itself with another color.
//
//cast:array
type Blend interface {
	BlendWith(other any) any
}

// Mode selects an interpolation mode.
//
//cast:array
type Mode int

// Pair is a generic pair of channel values.
//
//cast:array
type Pair[T any] struct {
	A, B T
}

// Empty has no channel fields left after exclusions.
//
//cast:array
type Empty struct {
	_ structs.HostLayout
}

// Bare has channels but no layout guarantee.
//
//cast:array
type Bare struct {
	R, G, B float32
}

// Mixed has a field whose type differs from the established channel
// type.
//
//cast:array
type Mixed struct {
	_ structs.HostLayout

	X, Y  float32
	Count int32
}
