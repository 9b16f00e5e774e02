package names

import "testing"

func TestExpandBuiltins(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		nodeName      string
		nodeNamespace string
		subs          map[string]string
		want          string
	}{
		{"already qualified", "/chatter", "talker", "/", nil, "/chatter"},
		{"relative gets namespace", "chatter", "talker", "/ns", nil, "/ns/chatter"},
		{"tilde expands to private", "~/status", "talker", "/ns", nil, "/ns/talker/status"},
		{"tilde at root namespace", "~/status", "talker", "/", nil, "/talker/status"},
		{"node token", "{node}_debug", "talker", "/", nil, "/talker_debug"},
		{"ns token", "{ns}_debug", "talker", "/ns", nil, "/ns_debug"},
		{"custom substitution", "{foo}_bar", "talker", "/", map[string]string{"foo": "baz"}, "/baz_bar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.input, tt.nodeName, tt.nodeNamespace, tt.subs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandUnknownSubstitution(t *testing.T) {
	_, err := Expand("{mystery}_bar", "talker", "/", nil)
	if err == nil {
		t.Fatalf("expected error for unknown substitution")
	}
}
