package paramrule

import "testing"

func TestParseDefaultPrefix(t *testing.T) {
	r, err := Parse("rate:=10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NodePrefix != DefaultNodePrefix {
		t.Errorf("NodePrefix = %q, want %q", r.NodePrefix, DefaultNodePrefix)
	}
	if r.ParamName != "rate" || r.YAMLScalar != "10" {
		t.Errorf("got %+v", r)
	}
}

func TestParseExplicitPrefix(t *testing.T) {
	r, err := Parse("talker:rate:=10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NodePrefix != "talker" || r.ParamName != "rate" || r.YAMLScalar != "10" {
		t.Errorf("got %+v", r)
	}
}

func TestParseDottedAndSlashedNamesNormalizeTheSame(t *testing.T) {
	dotted, err := Parse("group.rate:=10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slashed, err := Parse("group/rate:=10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dotted.ParamName != slashed.ParamName {
		t.Errorf("dotted %q and slashed %q param names should normalize identically", dotted.ParamName, slashed.ParamName)
	}
	if dotted.ParamName != "group.rate" {
		t.Errorf("got %q, want group.rate", dotted.ParamName)
	}
}

func TestParseMissingSeparator(t *testing.T) {
	if _, err := Parse("rate=10"); err == nil {
		t.Errorf("expected missing ':=' to fail")
	}
}

func TestParseEmptyParamName(t *testing.T) {
	if _, err := Parse(":=10"); err == nil {
		t.Errorf("expected empty parameter name to fail")
	}
}

func TestParseEmptySegment(t *testing.T) {
	if _, err := Parse("group..rate:=10"); err == nil {
		t.Errorf("expected empty segment in dotted name to fail")
	}
}

func TestParseYAMLScalarPreservesValueVerbatim(t *testing.T) {
	r, err := Parse(`name:="hello, world"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.YAMLScalar != `"hello, world"` {
		t.Errorf("YAMLScalar = %q, want the quoted scalar verbatim", r.YAMLScalar)
	}
}
