// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package layout

import (
	"fmt"
	"strings"

	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/expr"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/convert/units"
	"github.com/kevdc82/RPT-to-RDF-sub000/internal/rpt"
)

// Config carries the synthesizer's target conventions.
type Config struct {
	// Target is the unit all output coordinates are expressed in.
	Target units.Unit
	// FieldPrefix prepends generated field names.
	FieldPrefix string
	// DefaultFontName and DefaultFontSize apply to fields declaring no
	// face of their own.
	DefaultFontName string
	DefaultFontSize int
}

// DefaultConfig returns the stock conventions: point coordinates, F_
// field names, 10pt helvetica.
func DefaultConfig() Config {
	return Config{
		Target:          units.Point,
		FieldPrefix:     "F_",
		DefaultFontName: "helvetica",
		DefaultFontSize: 10,
	}
}

// Synthesizer builds the target frame tree for one report at a time. It
// shares the caller's Translator and TriggerSeq so generated trigger and
// formula names stay consistent across the whole run. Not safe for
// concurrent use.
type Synthesizer struct {
	cfg Config
	tr  *expr.Translator
	seq *expr.TriggerSeq
}

// New returns a Synthesizer using tr for condition translation and seq
// for trigger numbering. Zero config fields fall back to the defaults.
func New(cfg Config, tr *expr.Translator, seq *expr.TriggerSeq) *Synthesizer {
	def := DefaultConfig()
	if cfg.Target == 0 {
		cfg.Target = def.Target
	}
	if cfg.FieldPrefix == "" {
		cfg.FieldPrefix = def.FieldPrefix
	}
	if cfg.DefaultFontName == "" {
		cfg.DefaultFontName = def.DefaultFontName
	}
	if cfg.DefaultFontSize <= 0 {
		cfg.DefaultFontSize = def.DefaultFontSize
	}
	return &Synthesizer{cfg: cfg, tr: tr, seq: seq}
}

// Output is the result of synthesizing one report's layout. Triggers
// holds every trigger attempt, successful or not, so callers can account
// for each one; Errors holds the failure messages produced under the
// fail policy.
type Output struct {
	Root     *Frame
	Triggers []expr.Trigger
	Warnings []string
	Errors   []string
}

// Build synthesizes the frame tree for rep. It never fails outright:
// structural problems degrade to warnings and condition translation
// failures are recorded per trigger.
func (s *Synthesizer) Build(rep *rpt.Report) *Output {
	b := &builder{
		Synthesizer: s,
		rep:         rep,
		src:         units.Twip,
		out:         &Output{},
		names:       make(map[string]bool),
	}
	if u := strings.TrimSpace(rep.Unit); u != "" {
		parsed, err := units.Parse(u)
		if err != nil {
			b.warnf("unknown report unit %q; coordinates treated as twips", rep.Unit)
		} else {
			b.src = parsed
		}
	}
	b.out.Root = b.buildRoot()
	return b.out
}

// builder carries the per-report synthesis state.
type builder struct {
	*Synthesizer
	rep   *rpt.Report
	src   units.Unit
	out   *Output
	names map[string]bool
}

func (b *builder) conv(v float64) float64 {
	return units.Convert(v, b.src, b.cfg.Target)
}

func (b *builder) warnf(format string, args ...any) {
	b.out.Warnings = append(b.out.Warnings, fmt.Sprintf(format, args...))
}

// unique reserves a name, suffixing a counter when the base is taken, so
// frame and field names stay unique across the whole tree.
func (b *builder) unique(base string) string {
	name := base
	for n := 2; b.names[name]; n++ {
		name = fmt.Sprintf("%s_%d", base, n)
	}
	b.names[name] = true
	return name
}

// record books a trigger attempt and returns the name to attach, which
// is empty when the trigger produced no usable code.
func (b *builder) record(trg expr.Trigger, err error) string {
	b.out.Triggers = append(b.out.Triggers, trg)
	if err != nil {
		b.out.Errors = append(b.out.Errors, err.Error())
	}
	if trg.Success {
		return trg.Name
	}
	return ""
}

// buildRoot assembles the page: report-header and page-header frames
// stack from the top, the body follows, report-footer frames print after
// the body, and page-footer frames anchor to the bottom edge.
func (b *builder) buildRoot() *Frame {
	pageW := b.conv(b.rep.PageWidth)
	pageH := b.conv(b.rep.PageHeight)
	root := &Frame{
		Name:                 b.unique("M_" + fallbackIdent(b.rep.Name, "REPORT")),
		Kind:                 KindMargin,
		Width:                pageW,
		Height:               pageH,
		VerticalElasticity:   ElasticityFixed,
		HorizontalElasticity: ElasticityFixed,
	}

	var flow []*Frame
	flow = append(flow, b.bandFrames(rpt.RoleReportHeader, KindHeader)...)
	flow = append(flow, b.bandFrames(rpt.RolePageHeader, KindHeader)...)
	flow = append(flow, b.buildBody())
	flow = append(flow, b.bandFrames(rpt.RoleReportFooter, KindTrailer)...)
	y := 0.0
	for _, f := range flow {
		f.Y = y
		y += f.Height
	}

	footers := b.bandFrames(rpt.RolePageFooter, KindTrailer)
	fy := pageH - totalHeight(footers)
	for _, f := range footers {
		f.Y = fy
		fy += f.Height
	}

	root.Children = append(flow, footers...)
	return root
}

// bandFrames builds one frame per section of the given role, in source
// order.
func (b *builder) bandFrames(role rpt.SectionRole, kind FrameKind) []*Frame {
	var frames []*Frame
	for _, sec := range b.rep.Sections {
		if sec.EffectiveRole() != role {
			continue
		}
		frames = append(frames, b.sectionFrame(sec, kind))
	}
	return frames
}

// buildBody wraps the group nesting. Its height is the sum of its
// stacked children, which bottoms out at the per-band section heights.
func (b *builder) buildBody() *Frame {
	body := &Frame{
		Name:                 b.unique("M_BODY"),
		Kind:                 KindBody,
		Width:                b.conv(b.rep.PageWidth),
		VerticalElasticity:   ElasticityVariable,
		HorizontalElasticity: ElasticityFixed,
	}
	b.reportOrphans()
	body.Height = stackInto(body, b.groupLevel(1))
	return body
}

// groupLevel builds the repeating frame for one group nesting level:
// group headers for the level, then the next level inside, then the
// level's group footers. Past the last group it bottoms out at the
// detail frame.
func (b *builder) groupLevel(level int) []*Frame {
	if level > len(b.rep.Groups) {
		return []*Frame{b.detailFrame()}
	}
	g := b.rep.Groups[level-1]
	rf := &Frame{
		Name:                 b.unique("R_" + GroupName(g)),
		Kind:                 KindRepeating,
		SourceGroup:          GroupName(g),
		Width:                b.conv(b.rep.PageWidth),
		PrintDirection:       "down",
		VerticalElasticity:   ElasticityExpand,
		HorizontalElasticity: ElasticityFixed,
		PageProtect:          g.KeepTogether,
	}
	if g.RepeatHeader {
		b.warnf("group %s: repeat_header has no direct equivalent; the group header prints once per instance",
			groupLabel(g))
	}

	var children []*Frame
	children = append(children, b.indexedBand(rpt.RoleGroupHeader, level, KindHeader)...)
	children = append(children, b.groupLevel(level+1)...)
	children = append(children, b.indexedBand(rpt.RoleGroupFooter, level, KindTrailer)...)
	rf.Height = stackInto(rf, children)
	return []*Frame{rf}
}

// detailFrame is the innermost repeating frame, bound to the detail
// sentinel group so it repeats per record.
func (b *builder) detailFrame() *Frame {
	rf := &Frame{
		Name:                 b.unique("R_" + DetailGroup),
		Kind:                 KindRepeating,
		SourceGroup:          DetailGroup,
		Width:                b.conv(b.rep.PageWidth),
		PrintDirection:       "down",
		VerticalElasticity:   ElasticityExpand,
		HorizontalElasticity: ElasticityFixed,
	}
	var children []*Frame
	for _, sec := range b.rep.Sections {
		if sec.EffectiveRole() != rpt.RoleDetail {
			continue
		}
		children = append(children, b.sectionFrame(sec, KindBody))
	}
	rf.Height = stackInto(rf, children)
	return rf
}

// indexedBand builds frames for the group-header or group-footer
// sections of one nesting level. A section declaring no group index
// falls back to its ordinal among sections of the same role.
func (b *builder) indexedBand(role rpt.SectionRole, level int, kind FrameKind) []*Frame {
	var frames []*Frame
	ord := 0
	for _, sec := range b.rep.Sections {
		if sec.EffectiveRole() != role {
			continue
		}
		ord++
		if effectiveIndex(sec, ord) != level {
			continue
		}
		frames = append(frames, b.sectionFrame(sec, kind))
	}
	return frames
}

// reportOrphans warns once for every group band whose index points past
// the report's group list; such sections appear in no frame.
func (b *builder) reportOrphans() {
	for _, role := range []rpt.SectionRole{rpt.RoleGroupHeader, rpt.RoleGroupFooter} {
		ord := 0
		for _, sec := range b.rep.Sections {
			if sec.EffectiveRole() != role {
				continue
			}
			ord++
			if idx := effectiveIndex(sec, ord); idx > len(b.rep.Groups) {
				b.warnf("section %s references group %d but the report defines %d; section omitted",
					sec.Name, idx, len(b.rep.Groups))
			}
		}
	}
}

func effectiveIndex(sec rpt.Section, ord int) int {
	if sec.GroupIndex > 0 {
		return sec.GroupIndex
	}
	return ord
}

// sectionFrame converts one source band into a frame carrying its
// fields. Visibility rules become the frame's format trigger: a static
// suppress flag translates as an always-true condition.
func (b *builder) sectionFrame(sec rpt.Section, kind FrameKind) *Frame {
	fr := &Frame{
		Name:                 b.unique("M_" + fallbackIdent(sec.Name, "SECTION")),
		Kind:                 kind,
		Width:                b.conv(b.rep.PageWidth),
		Height:               b.conv(sec.Height),
		VerticalElasticity:   ElasticityFixed,
		HorizontalElasticity: ElasticityFixed,
	}
	for _, f := range sec.Fields {
		fr.Fields = append(fr.Fields, b.buildField(f))
	}

	cond := sec.SuppressCondition
	if sec.Suppress {
		cond = "True"
	}
	if strings.TrimSpace(cond) != "" {
		trg, err := b.tr.SuppressTrigger(b.seq, sec.Name, cond)
		fr.FormatTrigger = b.record(trg, err)
	}
	return fr
}

// GroupName derives the target data-model group name for a source
// group, preferring the declared name over the grouping field.
func GroupName(g rpt.Group) string {
	if id := expr.Ident(g.Name); id != "" {
		return "G_" + id
	}
	if id := expr.NormalizeSource(g.FieldName); id != "" {
		return "G_" + id
	}
	return "G_GROUP"
}

func groupLabel(g rpt.Group) string {
	if g.Name != "" {
		return g.Name
	}
	return g.FieldName
}

func fallbackIdent(name, fallback string) string {
	if id := expr.Ident(name); id != "" {
		return id
	}
	return fallback
}

// stackInto positions children top to bottom inside parent and returns
// the stacked height.
func stackInto(parent *Frame, children []*Frame) float64 {
	y := 0.0
	for _, c := range children {
		c.Y = y
		y += c.Height
	}
	parent.Children = append(parent.Children, children...)
	return y
}

func totalHeight(frames []*Frame) float64 {
	t := 0.0
	for _, f := range frames {
		t += f.Height
	}
	return t
}
