// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles defines the visual property groups carried by pathway
// elements: font, shape, and line styling. The groups are plain data
// holders; rendering them is up to the caller.
package styles

import "image/color"

// Font holds the text styling properties of an element that renders text.
type Font struct {

	// text color
	Color color.RGBA

	// font family name
	Name string

	// point size of the font
	Size float32

	// bold font weight
	Bold bool

	// italic font style
	Italic bool

	// underline decoration
	Underline bool

	// strikethru decoration
	Strikethru bool

	// horizontal alignment of text within the element bounds
	HAlign HAligns

	// vertical alignment of text within the element bounds
	VAlign VAligns
}

// Defaults sets the standard initial values for fonts.
func (f *Font) Defaults() {
	f.Color = Black
	f.Name = "Arial"
	f.Size = 12
	f.Bold = false
	f.Italic = false
	f.Underline = false
	f.Strikethru = false
	f.HAlign = HAlignCenter
	f.VAlign = VAlignMiddle
}

// Shape holds the border and fill styling properties of an element
// drawn as a closed figure.
type Shape struct {

	// border color
	BorderColor color.RGBA

	// border dash pattern
	BorderStyle BorderStyles

	// border width
	BorderWidth float32

	// interior fill color; alpha 0 renders as transparent
	FillColor color.RGBA

	// outline figure to draw
	Type ShapeTypes

	// stacking order relative to other elements; higher draws on top
	ZOrder int

	// clockwise rotation in radians about the element center
	Rotation float32
}

// Defaults sets the standard initial values for shapes.
func (s *Shape) Defaults() {
	s.BorderColor = Black
	s.BorderStyle = BorderSolid
	s.BorderWidth = 1
	s.FillColor = White
	s.Type = ShapeRectangle
	s.ZOrder = 0
	s.Rotation = 0
}

// Line holds the stroke styling properties of an element drawn as an
// open line.
type Line struct {

	// line color
	Color color.RGBA

	// line dash pattern
	Style BorderStyles

	// line width
	Width float32

	// routing used to draw the line between its end points
	Connector ConnectorTypes

	// stacking order relative to other elements; higher draws on top
	ZOrder int
}

// Defaults sets the standard initial values for lines.
func (l *Line) Defaults() {
	l.Color = Black
	l.Style = BorderSolid
	l.Width = 1
	l.Connector = ConnectorStraight
	l.ZOrder = 0
}
