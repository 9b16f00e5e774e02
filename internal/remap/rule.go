// Package remap implements the remap-rule grammar (§4.5) and the rule
// matching/lookup engine (§4.4).
//
// Grounded on the teacher's internal/provider/selector.go, which scans an
// ordered list of candidates and returns on first match; the remap
// engine's "first rule wins, no specificity override" lookup follows the
// identical scan-in-order-return-on-first-hit shape.
package remap

import "github.com/dmagro/rclcfg/internal/nameslex"

// Scope is one of the four kinds a remap rule (or a resolve query) can
// apply to.
type Scope int

const (
	ScopeTopic Scope = 1 << iota
	ScopeService
	ScopeNodeName
	ScopeNamespace
)

func (s Scope) Has(kind Scope) bool { return s&kind != 0 }

// Rule is a single remap rule: a scope set, an optional node-prefix
// restriction, an optional match pattern (absent for NodeName/Namespace
// rules, whose match is implicit), and a literal or pattern replacement.
type Rule struct {
	Scope        Scope
	NodePrefix   string
	HasPrefix    bool
	MatchPattern string
	HasMatch     bool
	Replacement  string
}

// tokenKind mirrors nameslex.Kind locally to avoid exporting the lexer's
// internal token-kind constants through this package's public API.
type tokenKind = nameslex.Kind
