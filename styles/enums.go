// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "slices"

// The styling vocabularies are string typed rather than closed enums:
// the constants below cover the well-known values, and any other string
// is carried through unchanged as a custom value. Known reports whether
// a value is in the well-known set.

// BorderStyles is the dash pattern vocabulary for borders and lines.
type BorderStyles string

const (
	BorderSolid  BorderStyles = "Solid"
	BorderDashed BorderStyles = "Dashed"
	BorderDouble BorderStyles = "Double"
)

// BorderStylesValues is the well-known border style vocabulary.
var BorderStylesValues = []BorderStyles{BorderSolid, BorderDashed, BorderDouble}

// Known reports whether the value is in the well-known vocabulary.
func (b BorderStyles) Known() bool { return slices.Contains(BorderStylesValues, b) }

// ConnectorTypes is the routing vocabulary for drawing a line between
// its end points.
type ConnectorTypes string

const (
	// ConnectorStraight draws a direct segment between the points.
	ConnectorStraight ConnectorTypes = "Straight"

	// ConnectorElbow draws axis-aligned segments with square corners.
	ConnectorElbow ConnectorTypes = "Elbow"

	// ConnectorCurved draws a spline through the points.
	ConnectorCurved ConnectorTypes = "Curved"

	// ConnectorSegmented draws straight segments through every waypoint.
	ConnectorSegmented ConnectorTypes = "Segmented"
)

// ConnectorTypesValues is the well-known connector vocabulary.
var ConnectorTypesValues = []ConnectorTypes{ConnectorStraight, ConnectorElbow, ConnectorCurved, ConnectorSegmented}

// Known reports whether the value is in the well-known vocabulary.
func (c ConnectorTypes) Known() bool { return slices.Contains(ConnectorTypesValues, c) }

// HAligns is the horizontal text alignment vocabulary.
type HAligns string

const (
	HAlignLeft   HAligns = "Left"
	HAlignCenter HAligns = "Center"
	HAlignRight  HAligns = "Right"
)

// HAlignsValues is the well-known horizontal alignment vocabulary.
var HAlignsValues = []HAligns{HAlignLeft, HAlignCenter, HAlignRight}

// Known reports whether the value is in the well-known vocabulary.
func (h HAligns) Known() bool { return slices.Contains(HAlignsValues, h) }

// VAligns is the vertical text alignment vocabulary.
type VAligns string

const (
	VAlignTop    VAligns = "Top"
	VAlignMiddle VAligns = "Middle"
	VAlignBottom VAligns = "Bottom"
)

// VAlignsValues is the well-known vertical alignment vocabulary.
var VAlignsValues = []VAligns{VAlignTop, VAlignMiddle, VAlignBottom}

// Known reports whether the value is in the well-known vocabulary.
func (v VAligns) Known() bool { return slices.Contains(VAlignsValues, v) }

// ShapeTypes is the outline figure vocabulary for closed elements,
// covering both basic geometry and cellular components.
type ShapeTypes string

const (
	ShapeNone             ShapeTypes = "None"
	ShapeRectangle        ShapeTypes = "Rectangle"
	ShapeRoundedRectangle ShapeTypes = "RoundedRectangle"
	ShapeOval             ShapeTypes = "Oval"
	ShapeTriangle         ShapeTypes = "Triangle"
	ShapePentagon         ShapeTypes = "Pentagon"
	ShapeHexagon          ShapeTypes = "Hexagon"
	ShapeOctagon          ShapeTypes = "Octagon"

	ShapeCell                  ShapeTypes = "Cell"
	ShapeNucleus               ShapeTypes = "Nucleus"
	ShapeEndoplasmicReticulum  ShapeTypes = "EndoplasmicReticulum"
	ShapeGolgiApparatus        ShapeTypes = "GolgiApparatus"
	ShapeMitochondria          ShapeTypes = "Mitochondria"
	ShapeSarcoplasmicReticulum ShapeTypes = "SarcoplasmicReticulum"
	ShapeOrganelle             ShapeTypes = "Organelle"
	ShapeVesicle               ShapeTypes = "Vesicle"
)

// ShapeTypesValues is the well-known shape vocabulary.
var ShapeTypesValues = []ShapeTypes{
	ShapeNone, ShapeRectangle, ShapeRoundedRectangle, ShapeOval,
	ShapeTriangle, ShapePentagon, ShapeHexagon, ShapeOctagon,
	ShapeCell, ShapeNucleus, ShapeEndoplasmicReticulum, ShapeGolgiApparatus,
	ShapeMitochondria, ShapeSarcoplasmicReticulum, ShapeOrganelle, ShapeVesicle,
}

// Known reports whether the value is in the well-known vocabulary.
func (s ShapeTypes) Known() bool { return slices.Contains(ShapeTypesValues, s) }
