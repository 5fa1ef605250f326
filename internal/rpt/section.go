// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rpt

import "strings"

// SectionRole identifies where a section prints within the page model.
type SectionRole string

const (
	RoleReportHeader SectionRole = "report_header"
	RolePageHeader   SectionRole = "page_header"
	RoleGroupHeader  SectionRole = "group_header"
	RoleDetail       SectionRole = "detail"
	RoleGroupFooter  SectionRole = "group_footer"
	RolePageFooter   SectionRole = "page_footer"
	RoleReportFooter SectionRole = "report_footer"
)

// Known reports whether r is one of the declared section roles.
func (r SectionRole) Known() bool {
	switch r {
	case RoleReportHeader, RolePageHeader, RoleGroupHeader, RoleDetail,
		RoleGroupFooter, RolePageFooter, RoleReportFooter:
		return true
	default:
		return false
	}
}

// Section is one band of the report page. GroupIndex is 1-based and set
// only for group_header and group_footer sections; it names the position
// in the report's ordered group list.
type Section struct {
	Name              string
	Role              SectionRole
	Height            float64
	Suppress          bool
	SuppressCondition string
	GroupIndex        int
	Fields            []Field
}

// EffectiveRole returns the declared role when it is one of the known
// tags, and otherwise infers a role from the section name, defaulting to
// detail. Extractors for old source versions emit short band codes
// ("GH1", "PF") instead of role tags.
func (s Section) EffectiveRole() SectionRole {
	if s.Role.Known() {
		return s.Role
	}
	return inferRole(s.Name)
}

func inferRole(name string) SectionRole {
	code := strings.ToUpper(strings.TrimSpace(name))
	switch {
	case strings.HasPrefix(code, "RH"):
		return RoleReportHeader
	case strings.HasPrefix(code, "PH"):
		return RolePageHeader
	case strings.HasPrefix(code, "GH"):
		return RoleGroupHeader
	case strings.HasPrefix(code, "GF"):
		return RoleGroupFooter
	case strings.HasPrefix(code, "PF"):
		return RolePageFooter
	case strings.HasPrefix(code, "RF"):
		return RoleReportFooter
	case code == "D" || strings.HasPrefix(code, "D "):
		return RoleDetail
	}

	lower := strings.ToLower(name)
	header := strings.Contains(lower, "header")
	footer := strings.Contains(lower, "footer")
	switch {
	case strings.Contains(lower, "report") && header:
		return RoleReportHeader
	case strings.Contains(lower, "report") && footer:
		return RoleReportFooter
	case strings.Contains(lower, "page") && header:
		return RolePageHeader
	case strings.Contains(lower, "page") && footer:
		return RolePageFooter
	case strings.Contains(lower, "group") && header:
		return RoleGroupHeader
	case strings.Contains(lower, "group") && footer:
		return RoleGroupFooter
	default:
		return RoleDetail
	}
}
