// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cast

import (
	"structs"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// lab mirrors what castgen produces for a three channel color type.
type lab struct {
	_ structs.HostLayout

	L, A, B float32
}

var _ Caster[[3]float32] = lab{}

func (c lab) Channels() [3]float32 {
	return *(*[3]float32)(unsafe.Pointer(&c))
}

const _ = unsafe.Sizeof(lab{}) - unsafe.Sizeof([3]float32{})
const _ = unsafe.Sizeof([3]float32{}) - unsafe.Sizeof(lab{})

func TestChannelsMethod(t *testing.T) {
	c := lab{L: 50, A: -20, B: 30}
	assert.Equal(t, [3]float32{50, -20, 30}, c.Channels())
}

func TestFromArray(t *testing.T) {
	c := FromArray[lab]([3]float32{50, -20, 30})
	assert.Equal(t, lab{L: 50, A: -20, B: 30}, c)
}

func TestNumChannels(t *testing.T) {
	assert.Equal(t, 3, NumChannels[float32, [3]float32]())
	assert.Equal(t, 4, NumChannels[uint8, [4]uint8]())

	assert.Panics(t, func() {
		NumChannels[float64, [3]float32]()
	})
	assert.Panics(t, func() {
		NumChannels[float32, float32]()
	})
}

func TestChannels(t *testing.T) {
	colors := []lab{
		{L: 50, A: -20, B: 30},
		{L: 80, A: 10, B: -40},
	}
	ch := Channels[float32, [3]float32](colors)
	assert.Equal(t, []float32{50, -20, 30, 80, 10, -40}, ch)

	// the channel slice shares the backing array of the colors
	ch[3] = 75
	assert.Equal(t, float32(75), colors[1].L)
}

func TestChannelsEmpty(t *testing.T) {
	ch := Channels[float32, [3]float32]([]lab{})
	assert.Empty(t, ch)
}

func TestColors(t *testing.T) {
	ch := []float32{50, -20, 30, 80, 10, -40}
	colors := Colors[lab, [3]float32](ch)
	assert.Equal(t, []lab{
		{L: 50, A: -20, B: 30},
		{L: 80, A: 10, B: -40},
	}, colors)

	colors[0].B = 35
	assert.Equal(t, float32(35), ch[2])
}

func TestColorsBadLength(t *testing.T) {
	assert.Panics(t, func() {
		Colors[lab, [3]float32]([]float32{50, -20})
	})
}

func TestMapInPlace(t *testing.T) {
	colors := []lab{
		{L: 50, A: -20, B: 30},
		{L: 80, A: 10, B: -40},
	}
	before := unsafe.Pointer(unsafe.SliceData(colors))

	out := MapInPlace[lab, [3]float32](colors, func(c lab) lab {
		return lab{L: 100 - c.L, A: c.A / 2, B: c.B / 2}
	})
	assert.Equal(t, []lab{
		{L: 50, A: -10, B: 15},
		{L: 20, A: 5, B: -20},
	}, out)

	// the conversion reuses the storage instead of allocating
	assert.Equal(t, before, unsafe.Pointer(unsafe.SliceData(out)))
}

func TestMapInPlaceEmpty(t *testing.T) {
	calls := 0
	out := MapInPlace[lab, [3]float32]([]lab{}, func(c lab) lab {
		calls++
		return c
	})
	assert.Empty(t, out)
	assert.Equal(t, 0, calls)
}
