// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rdfxml

import (
	"encoding/xml"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/layout"
)

// document is the XML shape of one converted report: the data model
// (columns, groups, parameters), the layout frame tree, and the
// generated program units.
type document struct {
	XMLName      xml.Name       `xml:"report"`
	Name         string         `xml:"name,attr"`
	Title        string         `xml:"title,attr,omitempty"`
	RunID        string         `xml:"runId,attr"`
	Unit         string         `xml:"unit,attr"`
	Description  string         `xml:"description,omitempty"`
	Data         dataElement    `xml:"data"`
	Layout       layoutElement  `xml:"layout"`
	ProgramUnits []functionUnit `xml:"programUnits>function"`
}

type dataElement struct {
	Columns    []columnElement    `xml:"column"`
	Groups     []groupElement     `xml:"group"`
	Parameters []parameterElement `xml:"parameter"`
}

type columnElement struct {
	Name     string `xml:"name,attr"`
	Datatype string `xml:"datatype,attr,omitempty"`
}

type groupElement struct {
	Name      string `xml:"name,attr"`
	Column    string `xml:"column,attr"`
	Level     int    `xml:"level,attr"`
	Direction string `xml:"direction,attr"`
}

type parameterElement struct {
	Name     string `xml:"name,attr"`
	Datatype string `xml:"datatype,attr"`
	Prompt   string `xml:"prompt,attr,omitempty"`
	Default  string `xml:"default,attr,omitempty"`
}

type layoutElement struct {
	Frame frameElement `xml:"frame"`
}

// frameElement renders as <frame> or <repeatingFrame> depending on the
// source node's kind; the XMLName value carries the choice through
// nested children.
type frameElement struct {
	XMLName        xml.Name
	Name           string         `xml:"name,attr"`
	Kind           string         `xml:"kind,attr"`
	Source         string         `xml:"source,attr,omitempty"`
	X              float64        `xml:"x,attr"`
	Y              float64        `xml:"y,attr"`
	Width          float64        `xml:"width,attr"`
	Height         float64        `xml:"height,attr"`
	VElasticity    string         `xml:"vElasticity,attr,omitempty"`
	HElasticity    string         `xml:"hElasticity,attr,omitempty"`
	PrintDirection string         `xml:"printDirection,attr,omitempty"`
	PageProtect    bool           `xml:"pageProtect,attr,omitempty"`
	FormatTrigger  string         `xml:"formatTrigger,attr,omitempty"`
	Fields         []fieldElement `xml:"field"`
	Children       []frameElement `xml:",any"`
}

type fieldElement struct {
	XMLName       xml.Name `xml:"field"`
	Name          string   `xml:"name,attr"`
	Source        string   `xml:"source,attr"`
	Kind          string   `xml:"kind,attr"`
	X             float64  `xml:"x,attr"`
	Y             float64  `xml:"y,attr"`
	Width         float64  `xml:"width,attr"`
	Height        float64  `xml:"height,attr"`
	FontName      string   `xml:"fontName,attr,omitempty"`
	FontSize      int      `xml:"fontSize,attr,omitempty"`
	Bold          bool     `xml:"bold,attr,omitempty"`
	Italic        bool     `xml:"italic,attr,omitempty"`
	Alignment     string   `xml:"alignment,attr,omitempty"`
	FormatMask    string   `xml:"formatMask,attr,omitempty"`
	FormatTrigger string   `xml:"formatTrigger,attr,omitempty"`
	Hidden        bool     `xml:"hidden,attr,omitempty"`
}

type functionUnit struct {
	Name string `xml:"name,attr"`
	Kind string `xml:"kind,attr"`
	Code string `xml:",cdata"`
}

func buildDocument(res *convert.Result) document {
	doc := document{
		Name:        res.Report,
		Title:       res.Title,
		RunID:       res.RunID.String(),
		Unit:        res.TargetUnit.String(),
		Description: res.Description,
		Layout:      layoutElement{Frame: frameTree(res.Root)},
	}
	for _, c := range res.Columns {
		doc.Data.Columns = append(doc.Data.Columns, columnElement{Name: c.Name, Datatype: c.Datatype})
	}
	for _, g := range res.Groups {
		doc.Data.Groups = append(doc.Data.Groups, groupElement{
			Name:      g.Name,
			Column:    g.Column,
			Level:     g.Level,
			Direction: direction(g.Descending),
		})
	}
	for _, p := range res.Parameters {
		doc.Data.Parameters = append(doc.Data.Parameters, parameterElement{
			Name:     p.Name,
			Datatype: p.Datatype.String(),
			Prompt:   p.Prompt,
			Default:  p.Default,
		})
	}
	for _, u := range res.Units {
		doc.ProgramUnits = append(doc.ProgramUnits, functionUnit{
			Name: u.Name,
			Kind: string(u.Kind),
			Code: u.Code,
		})
	}
	return doc
}

func frameTree(f *layout.Frame) frameElement {
	el := frameElement{
		XMLName:        xml.Name{Local: elementName(f.Kind)},
		Name:           f.Name,
		Kind:           string(f.Kind),
		Source:         f.SourceGroup,
		X:              f.X,
		Y:              f.Y,
		Width:          f.Width,
		Height:         f.Height,
		VElasticity:    f.VerticalElasticity,
		HElasticity:    f.HorizontalElasticity,
		PrintDirection: f.PrintDirection,
		PageProtect:    f.PageProtect,
		FormatTrigger:  f.FormatTrigger,
	}
	for _, fl := range f.Fields {
		el.Fields = append(el.Fields, fieldElement{
			Name:          fl.Name,
			Source:        fl.Source,
			Kind:          string(fl.Kind),
			X:             fl.X,
			Y:             fl.Y,
			Width:         fl.Width,
			Height:        fl.Height,
			FontName:      fl.FontName,
			FontSize:      fl.FontSize,
			Bold:          fl.Bold,
			Italic:        fl.Italic,
			Alignment:     fl.Alignment,
			FormatMask:    fl.FormatMask,
			FormatTrigger: fl.FormatTrigger,
			Hidden:        !fl.Visible,
		})
	}
	for _, c := range f.Children {
		el.Children = append(el.Children, frameTree(c))
	}
	return el
}

func elementName(kind layout.FrameKind) string {
	if kind == layout.KindRepeating {
		return "repeatingFrame"
	}
	return "frame"
}

func direction(descending bool) string {
	if descending {
		return "desc"
	}
	return "asc"
}
