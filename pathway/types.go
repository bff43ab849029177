// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import "slices"

// The model vocabularies are string typed: the constants below are the
// well-known values, and other strings pass through unchanged as custom
// values. Known reports membership in the well-known set. There is no
// process-wide registration of new values.

// ObjectTypes identifies the concrete kind of a pathway element.
type ObjectTypes string

const (
	ObjectDataNode      ObjectTypes = "DataNode"
	ObjectState         ObjectTypes = "State"
	ObjectInteraction   ObjectTypes = "Interaction"
	ObjectGraphicalLine ObjectTypes = "GraphicalLine"
	ObjectLabel         ObjectTypes = "Label"
	ObjectShape         ObjectTypes = "Shape"
	ObjectGroup         ObjectTypes = "Group"
	ObjectAnchor        ObjectTypes = "Anchor"
	ObjectLinePoint     ObjectTypes = "Point"
	ObjectAnnotation    ObjectTypes = "Annotation"
	ObjectCitation      ObjectTypes = "Citation"
	ObjectEvidence      ObjectTypes = "Evidence"
)

// DataNodeTypes is the biological entity vocabulary for data nodes.
type DataNodeTypes string

const (
	DataNodeUndefined   DataNodeTypes = "Undefined"
	DataNodeGeneProduct DataNodeTypes = "GeneProduct"
	DataNodeDNA         DataNodeTypes = "DNA"
	DataNodeRNA         DataNodeTypes = "RNA"
	DataNodeProtein     DataNodeTypes = "Protein"
	DataNodeMetabolite  DataNodeTypes = "Metabolite"
	DataNodePathway     DataNodeTypes = "Pathway"

	// DataNodeAlias marks a node that stands in for a group elsewhere on
	// the diagram, connected through its alias reference.
	DataNodeAlias DataNodeTypes = "Alias"
)

// DataNodeTypesValues is the well-known data node vocabulary.
var DataNodeTypesValues = []DataNodeTypes{
	DataNodeUndefined, DataNodeGeneProduct, DataNodeDNA, DataNodeRNA,
	DataNodeProtein, DataNodeMetabolite, DataNodePathway, DataNodeAlias,
}

// Known reports whether the value is in the well-known vocabulary.
func (d DataNodeTypes) Known() bool { return slices.Contains(DataNodeTypesValues, d) }

// StateTypes is the modification vocabulary for states on data nodes.
type StateTypes string

const (
	StateUndefined              StateTypes = "Undefined"
	StateProteinModification    StateTypes = "ProteinModification"
	StateGeneticVariant         StateTypes = "GeneticVariant"
	StateEpigeneticModification StateTypes = "EpigeneticModification"
)

// StateTypesValues is the well-known state vocabulary.
var StateTypesValues = []StateTypes{
	StateUndefined, StateProteinModification, StateGeneticVariant,
	StateEpigeneticModification,
}

// Known reports whether the value is in the well-known vocabulary.
func (s StateTypes) Known() bool { return slices.Contains(StateTypesValues, s) }

// GroupTypes is the grouping semantics vocabulary.
type GroupTypes string

const (
	GroupTypeGroup       GroupTypes = "Group"
	GroupTypeTransparent GroupTypes = "Transparent"
	GroupTypeComplex     GroupTypes = "Complex"
	GroupTypePathway     GroupTypes = "Pathway"
	GroupTypeAnalog      GroupTypes = "Analog"
	GroupTypeParalog     GroupTypes = "Paralog"
)

// GroupTypesValues is the well-known group vocabulary.
var GroupTypesValues = []GroupTypes{
	GroupTypeGroup, GroupTypeTransparent, GroupTypeComplex,
	GroupTypePathway, GroupTypeAnalog, GroupTypeParalog,
}

// Known reports whether the value is in the well-known vocabulary.
func (g GroupTypes) Known() bool { return slices.Contains(GroupTypesValues, g) }

// ArrowHeads is the line end decoration vocabulary.
type ArrowHeads string

const (
	ArrowUndirected               ArrowHeads = "Undirected"
	ArrowDirected                 ArrowHeads = "Directed"
	ArrowConversion               ArrowHeads = "Conversion"
	ArrowInhibition               ArrowHeads = "Inhibition"
	ArrowCatalysis                ArrowHeads = "Catalysis"
	ArrowStimulation              ArrowHeads = "Stimulation"
	ArrowBinding                  ArrowHeads = "Binding"
	ArrowTranslocation            ArrowHeads = "Translocation"
	ArrowTranscriptionTranslation ArrowHeads = "TranscriptionTranslation"
)

// ArrowHeadsValues is the well-known arrow head vocabulary.
var ArrowHeadsValues = []ArrowHeads{
	ArrowUndirected, ArrowDirected, ArrowConversion, ArrowInhibition,
	ArrowCatalysis, ArrowStimulation, ArrowBinding, ArrowTranslocation,
	ArrowTranscriptionTranslation,
}

// Known reports whether the value is in the well-known vocabulary.
func (a ArrowHeads) Known() bool { return slices.Contains(ArrowHeadsValues, a) }

// AnchorShapes is the visual marker vocabulary for anchors.
type AnchorShapes string

const (
	AnchorNone   AnchorShapes = "None"
	AnchorSquare AnchorShapes = "Square"
	AnchorCircle AnchorShapes = "Circle"
)

// AnchorShapesValues is the well-known anchor shape vocabulary.
var AnchorShapesValues = []AnchorShapes{AnchorNone, AnchorSquare, AnchorCircle}

// Known reports whether the value is in the well-known vocabulary.
func (a AnchorShapes) Known() bool { return slices.Contains(AnchorShapesValues, a) }

// AnnotationTypes is the ontology vocabulary for annotations.
type AnnotationTypes string

const (
	AnnotationUndefined AnnotationTypes = "Undefined"
	AnnotationOntology  AnnotationTypes = "Ontology"
	AnnotationTaxonomy  AnnotationTypes = "Taxonomy"
)

// AnnotationTypesValues is the well-known annotation vocabulary.
var AnnotationTypesValues = []AnnotationTypes{
	AnnotationUndefined, AnnotationOntology, AnnotationTaxonomy,
}

// Known reports whether the value is in the well-known vocabulary.
func (a AnnotationTypes) Known() bool { return slices.Contains(AnnotationTypesValues, a) }
