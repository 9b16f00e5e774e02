package remap

import (
	"log/slog"
	"strings"

	"github.com/dmagro/rclcfg/internal/names"
	"github.com/dmagro/rclcfg/internal/rclerr"
)

// Resolve implements the rule-matching procedure of spec.md §4.4: scan
// local rules then global rules, in insertion order within each list,
// and apply the first match. Returns ("", false, nil) when no rule
// matches (caller should use the input unchanged). A rule whose match
// pattern fails to expand is skipped unless the failure "would recur"
// (invalid-name style failures), which aborts with an error. A matching
// rule whose replacement fails to expand, does not expand to a
// fully-qualified name, or is an invalid node name or namespace also
// aborts with an error.
func Resolve(kind Scope, name string, localRules, globalRules []Rule, nodeName, nodeNamespace string, substitutions map[string]string) (string, bool, *rclerr.Error) {
	for _, rules := range [][]Rule{localRules, globalRules} {
		for _, r := range rules {
			matched, result, err := tryRule(kind, name, r, nodeName, nodeNamespace, substitutions)
			if err != nil {
				return "", false, err
			}
			if matched {
				return result, true, nil
			}
		}
	}
	return "", false, nil
}

func tryRule(kind Scope, name string, r Rule, nodeName, nodeNamespace string, substitutions map[string]string) (bool, string, *rclerr.Error) {
	if !r.Scope.Has(kind) {
		return false, "", nil
	}
	if r.HasPrefix && r.NodePrefix != nodeName {
		return false, "", nil
	}

	switch kind {
	case ScopeTopic, ScopeService:
		expandedMatch, err := names.Expand(r.MatchPattern, nodeName, nodeNamespace, substitutions)
		if err != nil {
			if isRecurringFailure(err) {
				return false, "", err
			}
			return false, "", nil // skip this rule, try the next
		}
		if expandedMatch != name {
			return false, "", nil
		}
		replacement, err := names.Expand(r.Replacement, nodeName, nodeNamespace, substitutions)
		if err != nil {
			return false, "", err
		}
		if !strings.HasPrefix(replacement, "/") {
			return false, "", rclerr.New(rclerr.InvalidRemapRule, "remap replacement %q must expand to a fully-qualified name", r.Replacement)
		}
		return true, replacement, nil

	case ScopeNodeName:
		if res := names.ValidateNodeName(r.Replacement); !res.Valid {
			return false, "", rclerr.New(rclerr.NodeInvalidName, "%s", res.Message)
		}
		return true, r.Replacement, nil

	case ScopeNamespace:
		if res := names.ValidateNamespace(r.Replacement); !res.Valid {
			slog.Warn("remap rule __ns replacement is not an absolute namespace", "replacement", r.Replacement, "reason", res.Message)
			return false, "", rclerr.New(rclerr.InvalidRemapRule, "namespace replacement must be absolute: %s", res.Message)
		}
		return true, r.Replacement, nil
	}
	return false, "", nil
}

// isRecurringFailure reports whether err represents a class of failure
// that would recur on every remaining rule (BadAlloc, invalid-name
// errors), per spec.md §4.4's instruction that such failures abort the
// whole resolution rather than being skipped.
func isRecurringFailure(err *rclerr.Error) bool {
	switch err.Kind {
	case rclerr.BadAlloc, rclerr.TopicNameInvalid, rclerr.ServiceNameInvalid,
		rclerr.NodeInvalidName, rclerr.NodeInvalidNamespace:
		return true
	default:
		return false
	}
}
