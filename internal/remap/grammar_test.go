package remap

import "testing"

func TestParseRuleNameRemap(t *testing.T) {
	r, err := ParseRule("chatter:=my_chatter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.HasPrefix {
		t.Errorf("did not expect a node prefix")
	}
	if r.MatchPattern != "chatter" || r.Replacement != "my_chatter" {
		t.Errorf("got match=%q replacement=%q", r.MatchPattern, r.Replacement)
	}
	if !r.Scope.Has(ScopeTopic) || !r.Scope.Has(ScopeService) {
		t.Errorf("bare remap should apply to both topic and service scope")
	}
}

func TestParseRulePrefixed(t *testing.T) {
	r, err := ParseRule("alice:foo:=bar")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.HasPrefix || r.NodePrefix != "alice" {
		t.Fatalf("expected node prefix 'alice', got %+v", r)
	}
	if r.MatchPattern != "foo" || r.Replacement != "bar" {
		t.Errorf("got match=%q replacement=%q", r.MatchPattern, r.Replacement)
	}
}

func TestParseRuleURLScheme(t *testing.T) {
	r, err := ParseRule("rostopic://chatter:=renamed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Scope.Has(ScopeTopic) || r.Scope.Has(ScopeService) {
		t.Errorf("rostopic:// scheme should restrict scope to topic only, got %v", r.Scope)
	}

	r2, err := ParseRule("rosservice://add:=renamed_add")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r2.Scope.Has(ScopeService) || r2.Scope.Has(ScopeTopic) {
		t.Errorf("rosservice:// scheme should restrict scope to service only, got %v", r2.Scope)
	}
}

func TestParseRuleNamespaceRemap(t *testing.T) {
	r, err := ParseRule("__ns:=/new_ns")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Scope != ScopeNamespace || r.Replacement != "/new_ns" {
		t.Errorf("got %+v", r)
	}
}

func TestParseRuleNodeNameRemap(t *testing.T) {
	for _, kw := range []string{"__node", "__name"} {
		r, err := ParseRule(kw + ":=renamed_node")
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", kw, err)
		}
		if r.Scope != ScopeNodeName || r.Replacement != "renamed_node" {
			t.Errorf("%s: got %+v", kw, r)
		}
	}
}

func TestParseRuleRejectsWildcards(t *testing.T) {
	tests := []string{"*:=foo", "foo:=*", "**:=foo", "foo/*:=bar"}
	for _, in := range tests {
		if _, err := ParseRule(in); err == nil {
			t.Errorf("ParseRule(%q): expected wildcard to be rejected as unsupported", in)
		}
	}
}

func TestParseRuleRejectsBackref(t *testing.T) {
	if _, err := ParseRule(`foo:=\1`); err == nil {
		t.Errorf("expected back-reference to be rejected as unsupported")
	}
}

func TestParseRuleMissingSeparator(t *testing.T) {
	if _, err := ParseRule("chatter"); err == nil {
		t.Errorf("expected missing ':=' to fail parsing")
	}
}
