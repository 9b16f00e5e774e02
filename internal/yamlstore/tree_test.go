package yamlstore

import (
	"math"
	"testing"
)

const sampleYAML = `
talker:
  ros__parameters:
    rate: 10
    use_sim_time: false
    group:
      topic: chatter
      values: [1, 2, 3]
listener:
  sub:
    ros__parameters:
      enabled: true
`

func TestLoadStringBuildsNestedNamespaces(t *testing.T) {
	store, err := LoadString(sampleYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}

	talker, ok := store.Node("/talker")
	if !ok {
		t.Fatalf("expected /talker node")
	}
	rate, ok := talker.Get("rate")
	if !ok || rate.Int != 10 {
		t.Errorf("rate = %+v, ok=%v, want Int(10)", rate, ok)
	}
	topic, ok := talker.Get("group.topic")
	if !ok || topic.String != "chatter" {
		t.Errorf("group.topic = %+v, ok=%v, want String(chatter)", topic, ok)
	}
	values, ok := talker.Get("group.values")
	if !ok || len(values.IntArray) != 3 {
		t.Errorf("group.values = %+v, ok=%v, want IntArray len 3", values, ok)
	}

	listener, ok := store.Node("/listener/sub")
	if !ok {
		t.Fatalf("expected /listener/sub node for a nested namespace")
	}
	enabled, ok := listener.Get("enabled")
	if !ok || !enabled.Bool {
		t.Errorf("enabled = %+v, ok=%v, want Bool(true)", enabled, ok)
	}
}

// TestLoadStringHeterogeneousSequenceFailsAndStoreIsEmpty matches the
// spec's scenario where a heterogeneous sequence causes parsing to fail
// and the returned store is discarded entirely, not partially populated.
func TestLoadStringHeterogeneousSequenceFailsAndStoreIsEmpty(t *testing.T) {
	const badYAML = `
talker:
  ros__parameters:
    mixed: [1, "two", 3]
`
	store, err := LoadString(badYAML)
	if err == nil {
		t.Fatalf("expected heterogeneous sequence to fail parsing")
	}
	if store != nil {
		t.Fatalf("expected a nil store on failure, got %+v", store)
	}
}

func TestLoadStringRejectsNonMappingRoot(t *testing.T) {
	if _, err := LoadString("- 1\n- 2\n"); err == nil {
		t.Errorf("expected a sequence document root to be rejected")
	}
}

func TestLoadStringEmptyDocumentYieldsEmptyStore(t *testing.T) {
	store, err := LoadString("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestLoadStringRejectsAnchor(t *testing.T) {
	const withAnchor = `
talker: &t
  ros__parameters:
    rate: 10
`
	if _, err := LoadString(withAnchor); err == nil {
		t.Errorf("expected an anchored node-name mapping to be rejected")
	}
}

func TestLoadStringAllowsWildcardNodeName(t *testing.T) {
	const wildcard = `
/**:
  ros__parameters:
    rate: 5
`
	store, err := LoadString(wildcard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	np, ok := store.Node("/**")
	if !ok {
		t.Fatalf("expected /** node to be present")
	}
	rate, ok := np.Get("rate")
	if !ok || rate.Int != 5 {
		t.Errorf("rate = %+v, ok=%v", rate, ok)
	}
}

func TestLoadStringNaNScalarRoundTrips(t *testing.T) {
	const withNaN = `
talker:
  ros__parameters:
    limit: .NaN
`
	store, err := LoadString(withNaN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	np, _ := store.Node("/talker")
	limit, _ := np.Get("limit")
	if !math.IsNaN(limit.Float) {
		t.Errorf("limit = %v, want NaN", limit.Float)
	}
}
