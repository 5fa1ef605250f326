// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package units converts report geometry between source twips and the
// layout units used by generated definitions.
package units

import (
	"fmt"
	"strings"
)

// Unit is a layout measurement unit. The zero value names no unit and
// callers treat it as unset.
type Unit int

const (
	// Twip is the source unit: one twentieth of a point.
	Twip Unit = iota + 1
	Point
	Inch
	Centimeter
)

// Twips per unit of each supported target.
const (
	TwipsPerPoint      = 20.0
	TwipsPerInch       = 1440.0
	TwipsPerCentimeter = TwipsPerInch / 2.54
)

// ErrUnknownUnit is returned when a unit name cannot be parsed.
var ErrUnknownUnit = fmt.Errorf("unknown unit")

func (u Unit) String() string {
	switch u {
	case Twip:
		return "twip"
	case Point:
		return "point"
	case Inch:
		return "inch"
	case Centimeter:
		return "centimeter"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// Parse resolves a unit name as written in configuration files. Names are
// matched case-insensitively and common abbreviations are accepted.
func Parse(name string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "twip", "twips":
		return Twip, nil
	case "point", "points", "pt":
		return Point, nil
	case "inch", "inches", "in":
		return Inch, nil
	case "centimeter", "centimeters", "cm":
		return Centimeter, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
}

// twips returns how many twips one unit of u spans.
func (u Unit) twips() float64 {
	switch u {
	case Point:
		return TwipsPerPoint
	case Inch:
		return TwipsPerInch
	case Centimeter:
		return TwipsPerCentimeter
	default:
		return 1
	}
}

// FromTwips converts a twip value into the target unit.
func FromTwips(v float64, target Unit) float64 {
	return v / target.twips()
}

// ToTwips converts a value expressed in source into twips.
func ToTwips(v float64, source Unit) float64 {
	return v * source.twips()
}

// Convert converts v between any two supported units, passing through
// twips as the common base.
func Convert(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	return FromTwips(ToTwips(v, from), to)
}
