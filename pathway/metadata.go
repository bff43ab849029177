// Copyright (c) 2025, The Pathml Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathway

import (
	"fmt"
	"slices"
)

// Annotation is a document-owned ontology annotation. Elements
// reference it by identifier; the annotation tracks its referrers so
// removing either side detaches the reference cleanly.
type Annotation struct {
	ElementBase

	// Value is the annotation text, typically an ontology term name.
	Value string

	// Type says which kind of vocabulary the annotation comes from.
	Type AnnotationTypes

	// Xref identifies the term in the ontology database.
	Xref Xref

	// URL links to the term description.
	URL string

	referrers []Element
}

// NewAnnotation returns a new detached annotation with the given value.
func NewAnnotation(value string) *Annotation {
	an := &Annotation{Value: value, Type: AnnotationUndefined}
	an.This = an
	return an
}

func (an *Annotation) ObjectType() ObjectTypes { return ObjectAnnotation }

// Referrers returns the elements currently referencing this annotation.
func (an *Annotation) Referrers() []Element { return slices.Clone(an.referrers) }

func (an *Annotation) backList() *[]Element { return &an.referrers }

// Citation is a document-owned literature reference. Elements reference
// it by identifier; the citation tracks its referrers so removing
// either side detaches the reference cleanly.
type Citation struct {
	ElementBase

	// Xref identifies the cited publication, such as a PubMed entry.
	Xref Xref

	// URL links to the publication.
	URL string

	referrers []Element
}

// NewCitation returns a new detached citation for the given cross
// reference.
func NewCitation(xref Xref) *Citation {
	ct := &Citation{Xref: xref}
	ct.This = ct
	return ct
}

func (ct *Citation) ObjectType() ObjectTypes { return ObjectCitation }

// Referrers returns the elements currently referencing this citation.
func (ct *Citation) Referrers() []Element { return slices.Clone(ct.referrers) }

func (ct *Citation) backList() *[]Element { return &ct.referrers }

// Evidence is a document-owned evidence record, typically an ECO
// evidence code. Elements reference it by identifier; the evidence
// tracks its referrers so removing either side detaches the reference
// cleanly.
type Evidence struct {
	ElementBase

	// Value is an optional evidence name.
	Value string

	// Xref identifies the evidence code.
	Xref Xref

	// URL links to the evidence description.
	URL string

	referrers []Element
}

// NewEvidence returns a new detached evidence record for the given
// cross reference.
func NewEvidence(xref Xref) *Evidence {
	ev := &Evidence{Xref: xref}
	ev.This = ev
	return ev
}

func (ev *Evidence) ObjectType() ObjectTypes { return ObjectEvidence }

// Referrers returns the elements currently referencing this evidence.
func (ev *Evidence) Referrers() []Element { return slices.Clone(ev.referrers) }

func (ev *Evidence) backList() *[]Element { return &ev.referrers }

// metaTarget is implemented by annotations, citations and evidences:
// document-owned metadata elements that track their referring elements
// so removal can detach both sides.
type metaTarget interface {
	Element
	backList() *[]Element
}

// AddAnnotationRef adds a reference to the annotation registered under
// the given identifier. The element must be in a document, and the
// identifier must resolve ([ErrUnknownID]) to an [Annotation]
// ([ErrWrongKind]). Adding a reference the element already holds is a
// no-op.
func (eb *ElementBase) AddAnnotationRef(id string) error {
	return eb.addMetaRef(&eb.annotationRefs, id, ObjectAnnotation)
}

// RemoveAnnotationRef removes the element's reference to the annotation
// with the given identifier; a no-op if the element does not hold one.
func (eb *ElementBase) RemoveAnnotationRef(id string) {
	eb.removeMetaRef(&eb.annotationRefs, id)
}

// AnnotationRefs returns the identifiers of the annotations this
// element references.
func (eb *ElementBase) AnnotationRefs() []string { return slices.Clone(eb.annotationRefs) }

// AddCitationRef adds a reference to the citation registered under the
// given identifier. The element must be in a document, and the
// identifier must resolve ([ErrUnknownID]) to a [Citation]
// ([ErrWrongKind]). Adding a reference the element already holds is a
// no-op.
func (eb *ElementBase) AddCitationRef(id string) error {
	return eb.addMetaRef(&eb.citationRefs, id, ObjectCitation)
}

// RemoveCitationRef removes the element's reference to the citation
// with the given identifier; a no-op if the element does not hold one.
func (eb *ElementBase) RemoveCitationRef(id string) {
	eb.removeMetaRef(&eb.citationRefs, id)
}

// CitationRefs returns the identifiers of the citations this element
// references.
func (eb *ElementBase) CitationRefs() []string { return slices.Clone(eb.citationRefs) }

// AddEvidenceRef adds a reference to the evidence registered under the
// given identifier. The element must be in a document, and the
// identifier must resolve ([ErrUnknownID]) to an [Evidence]
// ([ErrWrongKind]). Adding a reference the element already holds is a
// no-op.
func (eb *ElementBase) AddEvidenceRef(id string) error {
	return eb.addMetaRef(&eb.evidenceRefs, id, ObjectEvidence)
}

// RemoveEvidenceRef removes the element's reference to the evidence
// with the given identifier; a no-op if the element does not hold one.
func (eb *ElementBase) RemoveEvidenceRef(id string) {
	eb.removeMetaRef(&eb.evidenceRefs, id)
}

// EvidenceRefs returns the identifiers of the evidences this element
// references.
func (eb *ElementBase) EvidenceRefs() []string { return slices.Clone(eb.evidenceRefs) }

func (eb *ElementBase) addMetaRef(refs *[]string, id string, kind ObjectTypes) error {
	pw, err := eb.attached()
	if err != nil {
		return err
	}
	el := pw.ElementByID(id)
	if el == nil {
		return fmt.Errorf("pathway: %s reference %q: %w", kind, id, ErrUnknownID)
	}
	mt, ok := el.(metaTarget)
	if !ok || el.ObjectType() != kind {
		return fmt.Errorf("pathway: %s reference %q is a %s: %w", kind, id, el.ObjectType(), ErrWrongKind)
	}
	if slices.Contains(*refs, id) {
		return nil
	}
	*refs = append(*refs, id)
	bl := mt.backList()
	*bl = append(*bl, eb.This)
	return nil
}

func (eb *ElementBase) removeMetaRef(refs *[]string, id string) {
	i := slices.Index(*refs, id)
	if i < 0 {
		return
	}
	*refs = slices.Delete(*refs, i, i+1)
	if eb.pathway == nil {
		return
	}
	if mt, ok := eb.pathway.ElementByID(id).(metaTarget); ok {
		dropReferrer(mt, eb.This)
	}
}

func dropReferrer(mt metaTarget, el Element) {
	bl := mt.backList()
	if i := slices.Index(*bl, el); i >= 0 {
		*bl = slices.Delete(*bl, i, i+1)
	}
}

// detachMetaRefs detaches every metadata reference the element is
// involved in, in both directions: references the element holds are
// dropped from the targets' referrer lists, and, when the element is
// itself an annotation, citation or evidence, every reference to it is
// removed from the referring elements. Called during element removal
// while the element is still registered.
func (pw *Pathway) detachMetaRefs(el Element) {
	eb := el.AsElementBase()
	for _, id := range eb.annotationRefs {
		if mt, ok := pw.ElementByID(id).(metaTarget); ok {
			dropReferrer(mt, el)
		}
	}
	for _, id := range eb.citationRefs {
		if mt, ok := pw.ElementByID(id).(metaTarget); ok {
			dropReferrer(mt, el)
		}
	}
	for _, id := range eb.evidenceRefs {
		if mt, ok := pw.ElementByID(id).(metaTarget); ok {
			dropReferrer(mt, el)
		}
	}
	eb.annotationRefs = nil
	eb.citationRefs = nil
	eb.evidenceRefs = nil

	mt, ok := el.(metaTarget)
	if !ok {
		return
	}
	for _, r := range slices.Clone(*mt.backList()) {
		reb := r.AsElementBase()
		switch el.ObjectType() {
		case ObjectAnnotation:
			reb.RemoveAnnotationRef(eb.id)
		case ObjectCitation:
			reb.RemoveCitationRef(eb.id)
		case ObjectEvidence:
			reb.RemoveEvidenceRef(eb.id)
		}
	}
}
