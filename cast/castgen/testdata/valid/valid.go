// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valid

import "structs"

// RGB is a color in a nonlinear RGB space.
//
//cast:array
type RGB struct {
	_ structs.HostLayout

	R, G, B float32
}

// XYZ is a color in the CIE XYZ space.
//
//cast:array
type XYZ struct {
	_ structs.HostLayout

	X float32
	Y float32
	Z float32
}

// Lab is a color in a Cartesian lightness space, tagged with the white
// point it is relative to. The tag carries no channel data and is
// excluded from the channel array.
//
//cast:array
type Lab struct {
	_ structs.HostLayout

	white struct{} `cast:"-"`

	L float32
	A float32
	B float32
}

// Hue is an angular hue value in degrees.
type Hue float32

// LCh is a color in a polar lightness space. Hue has the same layout
// as float32, so it is substituted when building the channel array.
//
//cast:array
type LCh struct {
	_ structs.HostLayout

	L float32
	C float32
	H Hue `cast:"float32"`
}
