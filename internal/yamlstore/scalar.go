// Package yamlstore implements the YAML parameter parser and scalar
// typing routine of spec.md §4.8. It is a "pull-to-tree-then-walk"
// reconstruction of the streaming event discipline spec.md §4.8
// describes, using gopkg.in/yaml.v3's low-level yaml.Node tree instead of
// a manual event callback loop — sanctioned explicitly by spec.md §9
// ("a pull-to-tree-then-walk variant is acceptable but must reconstruct
// the same level/stack discipline before typing scalars").
//
// Grounded on the teacher's internal/config/config.go, the only place in
// the teacher that parses YAML (via yaml.Unmarshal into typed structs);
// this module needs line numbers, scalar style, and explicit tags that
// yaml.Unmarshal discards, so it walks *yaml.Node directly instead.
package yamlstore

import (
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dmagro/rclcfg/internal/rclerr"
	"github.com/dmagro/rclcfg/internal/typedvalue"
)

var boolTrue = map[string]bool{
	"Y": true, "y": true, "yes": true, "Yes": true, "YES": true,
	"true": true, "True": true, "TRUE": true,
	"on": true, "On": true, "ON": true,
}

var boolFalse = map[string]bool{
	"N": true, "n": true, "no": true, "No": true, "NO": true,
	"false": true, "False": true, "FALSE": true,
	"off": true, "Off": true, "OFF": true,
}

var floatSpecials = map[string]float64{
	".nan": math.NaN(), ".NaN": math.NaN(), ".NAN": math.NaN(),
	".inf": math.Inf(1), ".Inf": math.Inf(1), ".INF": math.Inf(1),
	"+.inf": math.Inf(1), "+.Inf": math.Inf(1), "+.INF": math.Inf(1),
	"-.inf": math.Inf(-1), "-.Inf": math.Inf(-1), "-.INF": math.Inf(-1),
}

func parseBool(s string) (bool, bool) {
	if boolTrue[s] {
		return true, true
	}
	if boolFalse[s] {
		return false, true
	}
	return false, false
}

func parseInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseFloat(s string) (float64, bool) {
	if v, ok := floatSpecials[s]; ok {
		return v, true
	}
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// builtinTags are the only explicit scalar tags this module recognizes;
// any other tag written in the source (custom tags, !!timestamp,
// !!binary, ...) is rejected per
// spec.md's Non-goals ("YAML features beyond: mappings, sequences,
// scalar styles, and !!str tag ... custom tags are rejected").
var builtinTags = map[string]bool{
	"": true, "!!str": true, "!!int": true, "!!bool": true,
	"!!float": true, "!!null": true,
}

// scalarValue implements the typing algorithm of spec.md §4.8.2.
func scalarValue(n *yaml.Node) (typedvalue.Value, *rclerr.Error) {
	if n.Anchor != "" {
		return typedvalue.Value{}, rclerr.AtLine(rclerr.Unsupported, n.Line, "anchors are not supported")
	}
	// yaml.v3 fills Tag with the resolved tag even for untagged plain
	// scalars, so only a tag written in the source counts as explicit.
	explicitTag := n.Style&yaml.TaggedStyle != 0
	if explicitTag && !builtinTags[n.Tag] {
		return typedvalue.Value{}, rclerr.AtLine(rclerr.Unsupported, n.Line, "unsupported scalar tag %q", n.Tag)
	}

	if explicitTag && n.Tag == "!!str" {
		return typedvalue.NewString(n.Value), nil
	}
	if n.Style == yaml.SingleQuotedStyle || n.Style == yaml.DoubleQuotedStyle {
		return typedvalue.NewString(n.Value), nil
	}
	if v, ok := parseBool(n.Value); ok {
		return typedvalue.NewBool(v), nil
	}
	if v, ok := parseInt(n.Value); ok {
		return typedvalue.NewInt(v), nil
	}
	if v, ok := parseFloat(n.Value); ok {
		return typedvalue.NewFloat(v), nil
	}
	return typedvalue.NewString(n.Value), nil
}
