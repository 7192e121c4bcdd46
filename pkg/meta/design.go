// Package meta parses the textual metadata records carried in a BIT
// container header: the Design record written by the vendor tools and
// the part name.
package meta

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Design is the parsed form of the Design record, which the vendor
// tools emit as a semicolon-separated list, e.g.
// "top;UserID=0XFFFFFFFF;Version=2020.2".
type Design struct {
	Name  string `parser:"@Text"`
	Props []Prop `parser:"( Semi @@ )*"`
}

// Prop is one key=value attribute of the Design record.
type Prop struct {
	Key   string `parser:"@Text Eq"`
	Value string `parser:"@Text"`
}

var designLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Semi", Pattern: `;`},
	{Name: "Eq", Pattern: `=`},
	{Name: "Text", Pattern: `[^;=]+`},
})

var designParser = participle.MustBuild[Design](
	participle.Lexer(designLexer),
)

// ParseDesign parses a Design record value.
func ParseDesign(s string) (*Design, error) {
	d, err := designParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("design record: %w", err)
	}
	return d, nil
}

// Get returns the value of the named attribute.
func (d *Design) Get(key string) (string, bool) {
	for _, p := range d.Props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}
