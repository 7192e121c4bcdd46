package meta

import (
	"fmt"
	"regexp"
	"strings"
)

// PartName is the decomposed form of a 7-series part name such as
// "7a35tcsg324" or "xc7a100tcsg324-1".
type PartName struct {
	Raw        string
	Family     string // "Artix-7"
	Device     string // "7a35t"
	Package    string // "csg324"
	SpeedGrade string // "1", empty if absent
}

// Part names have positional fields with no separators (the device's
// trailing "t" abuts the package letters), so they are split with one
// anchored expression instead of a token grammar.
var partNameRE = regexp.MustCompile(`^(?:xc)?7([a-z])(\d+)(t[il]?)?([a-z]{2,5}?)(\d+)(?:-(\d[a-z]*))?$`)

var familyLetters = map[string]string{
	"a": "Artix-7",
	"k": "Kintex-7",
	"s": "Spartan-7",
	"v": "Virtex-7",
	"z": "Zynq-7000",
}

// ParsePartName parses a part name record value.
func ParsePartName(s string) (*PartName, error) {
	m := partNameRE.FindStringSubmatch(strings.ToLower(strings.TrimSpace(s)))
	if m == nil {
		return nil, fmt.Errorf("meta: unrecognized part name %q", s)
	}
	family, ok := familyLetters[m[1]]
	if !ok {
		return nil, fmt.Errorf("meta: unknown device family in part name %q", s)
	}
	return &PartName{
		Raw:        s,
		Family:     family,
		Device:     "7" + m[1] + m[2] + m[3],
		Package:    m[4] + m[5],
		SpeedGrade: m[6],
	}, nil
}
