// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package layout synthesizes the target document's nested frame tree
// from a source report's flat section list and ordered group list.
package layout

import "github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"

// FrameKind classifies a frame's role in the target layout.
type FrameKind string

const (
	// KindMargin is the root frame spanning the whole page.
	KindMargin FrameKind = "margin"
	// KindHeader holds content printed before the body: report-header
	// and page-header bands, and group-header bands inside their
	// repeating frame.
	KindHeader FrameKind = "header"
	// KindBody encloses the group nesting.
	KindBody FrameKind = "body"
	// KindTrailer holds content printed after: group, page, and report
	// footer bands.
	KindTrailer FrameKind = "trailer"
	// KindRepeating repeats per instance of its source group.
	KindRepeating FrameKind = "repeating"
)

// DetailGroup is the sentinel source group of the innermost repeating
// frame, which repeats per detail record rather than per group instance.
const DetailGroup = "DETAIL"

// Elasticity values for the frame sizing attributes.
const (
	ElasticityFixed    = "fixed"
	ElasticityExpand   = "expand"
	ElasticityVariable = "variable"
)

// Frame is one node of the synthesized layout tree. Coordinates are in
// the synthesizer's target unit and relative to the parent frame; a
// frame's height is the sum of its stacked children unless it came from
// a single source band.
type Frame struct {
	Name                 string
	Kind                 FrameKind
	SourceGroup          string
	X                    float64
	Y                    float64
	Width                float64
	Height               float64
	VerticalElasticity   string
	HorizontalElasticity string
	PrintDirection       string
	PageProtect          bool
	FormatTrigger        string
	Children             []*Frame
	Fields               []Field
}

// Field is one positioned output element inside a frame. Source is the
// normalized reference the element displays: a column or parameter bind
// name, a generated formula name, or the literal text itself.
type Field struct {
	Name          string
	Source        string
	Kind          rpt.FieldKind
	X             float64
	Y             float64
	Width         float64
	Height        float64
	FontName      string
	FontSize      int
	Bold          bool
	Italic        bool
	Alignment     string
	FormatMask    string
	FormatTrigger string
	Visible       bool
}

// Walk visits f and every descendant frame in depth-first order.
func (f *Frame) Walk(visit func(*Frame)) {
	if f == nil {
		return
	}
	visit(f)
	for _, c := range f.Children {
		c.Walk(visit)
	}
}

// FieldCount returns the number of fields in f and all descendants.
func (f *Frame) FieldCount() int {
	n := 0
	f.Walk(func(fr *Frame) { n += len(fr.Fields) })
	return n
}
