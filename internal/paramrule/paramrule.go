// Package paramrule implements the CLI parameter-override grammar (§4.6):
//
//	param_rule = [node_prefix ":"] param_name ":=" yaml_scalar
//	param_name = segment ("." segment | "/" segment)*
//	node_prefix = TOKEN
//
// An absent node_prefix implies target "/**" (apply to all nodes).
// Preserves the undocumented compatibility branch that accepts both "."
// and "/" as parameter-name separators (spec.md's "Open Questions").
package paramrule

import (
	"strings"

	"github.com/dmagro/rclcfg/internal/nameslex"
	"github.com/dmagro/rclcfg/internal/rclerr"
)

// DefaultNodePrefix is the implicit target when a param rule omits a
// node_prefix.
const DefaultNodePrefix = "/**"

// Rule is a parsed param_rule: which node it targets, the dotted
// parameter name, and the raw YAML scalar suffix (typed later by
// yamlstore's scalar-typing routine, §4.8.2).
type Rule struct {
	NodePrefix string
	ParamName  string
	YAMLScalar string
}

// Parse parses text (the portion after `-p`/`--param`) into a Rule.
func Parse(text string) (Rule, *rclerr.Error) {
	sepIdx := strings.Index(text, ":=")
	if sepIdx < 0 {
		return Rule{}, rclerr.New(rclerr.InvalidParamRule, "parameter rule %q is missing ':='", text)
	}
	head := text[:sepIdx]
	scalar := text[sepIdx+2:]

	prefix := DefaultNodePrefix
	name := head
	if idx := findPrefixColon(head); idx >= 0 {
		prefix = head[:idx]
		name = head[idx+1:]
		if lx := nameslex.New(prefix); lx.Peek().Kind != nameslex.TOKEN {
			return Rule{}, rclerr.New(rclerr.InvalidParamRule, "node prefix %q is not a valid identifier", prefix)
		}
	}

	if name == "" {
		return Rule{}, rclerr.New(rclerr.InvalidParamRule, "parameter rule %q has an empty parameter name", text)
	}
	if err := validateParamName(name); err != nil {
		return Rule{}, err
	}

	return Rule{NodePrefix: prefix, ParamName: normalizeSeparators(name), YAMLScalar: scalar}, nil
}

// findPrefixColon finds the colon separating an optional node_prefix
// from the parameter name, ignoring dots/slashes (which belong to the
// name) and returning -1 when no prefix is present.
func findPrefixColon(head string) int {
	return strings.IndexByte(head, ':')
}

func validateParamName(name string) *rclerr.Error {
	start := 0
	count := 0
	for i := 0; i <= len(name); i++ {
		if i == len(name) || name[i] == '.' || name[i] == '/' {
			seg := name[start:i]
			if seg == "" {
				return rclerr.New(rclerr.InvalidParamRule, "parameter name %q contains an empty segment", name)
			}
			count++
			start = i + 1
		}
	}
	if count == 0 {
		return rclerr.New(rclerr.InvalidParamRule, "parameter name %q has no segments", name)
	}
	return nil
}

// normalizeSeparators rewrites any '/' separators to '.' so the stored
// dotted name matches the YAML-sourced convention (spec.md §4.8 joins
// group levels with '.').
func normalizeSeparators(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}
