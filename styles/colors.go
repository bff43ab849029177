// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Standard colors used by the style defaults.
var (
	Black       = color.RGBA{0, 0, 0, 255}
	White       = color.RGBA{255, 255, 255, 255}
	Transparent = color.RGBA{}
)

// FromHex parses the given hex color string and returns the resulting
// color. An optional leading # is allowed. Both RRGGBB and RRGGBBAA
// forms are accepted; the opaque form gets alpha 255.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	a := 255
	switch len(hex) {
	case 6:
		format := "%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b)
	case 8:
		format := "%02x%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b, &a)
	default:
		return color.RGBA{}, fmt.Errorf("styles.FromHex: could not process %q", hex)
	}
	return color.RGBA{uint8(r), uint8(g), uint8(b), uint8(a)}, nil
}

// AsHex returns the color as a lowercase #RRGGBB hex string,
// or #RRGGBBAA if it is not fully opaque.
func AsHex(c color.RGBA) string {
	if c.A == 255 {
		return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
	}
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B) + hexByte(c.A)
}

func hexByte(b uint8) string {
	s := strconv.FormatUint(uint64(b), 16)
	if len(s) == 1 {
		s = "0" + s
	}
	return s
}
