// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scan

import "image/color"

// Mix combines the pen color p with the destination d under the binary
// raster operation rop (1..16). Bit i of rop-1 is the result for pen bit
// and destination bit (i>>1, i&1). The operation applies to the color
// channels; the result is opaque.
func Mix(rop uint8, p, d color.RGBA) color.RGBA {
	return color.RGBA{
		R: mix8(rop, p.R, d.R),
		G: mix8(rop, p.G, d.G),
		B: mix8(rop, p.B, d.B),
		A: 0xff,
	}
}

func mix8(rop, p, d uint8) uint8 {
	t := rop - 1
	var v uint8
	if t&1 != 0 {
		v |= ^p & ^d
	}
	if t&2 != 0 {
		v |= ^p & d
	}
	if t&4 != 0 {
		v |= p & ^d
	}
	if t&8 != 0 {
		v |= p & d
	}
	return v
}
