package rclargs

import (
	"testing"

	"github.com/dmagro/rclcfg/internal/loglevel"
	"github.com/dmagro/rclcfg/internal/typedvalue"
)

// TestParseBracketedRegionRemapAndParam matches the spec's bracketed
// --ros-args example: a remap rule and a parameter override inside the
// region are both recognized, and the trailing "--" closes the region
// so later tokens fall back to non-ROS handling.
func TestParseBracketedRegionRemapAndParam(t *testing.T) {
	argv := []string{"prog", "--ros-args", "-r", "chatter:=my_chatter", "-p", "rate:=10", "--", "extra"}
	args, err := Parse(argv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(args.RemapRules) != 1 || args.RemapRules[0].MatchPattern != "chatter" || args.RemapRules[0].Replacement != "my_chatter" {
		t.Fatalf("RemapRules = %+v", args.RemapRules)
	}

	if args.Overlay == nil {
		t.Fatalf("expected a parameter overlay to be built")
	}
	np, ok := args.Overlay.Node("/**")
	if !ok {
		t.Fatalf("expected the default node prefix /** to hold the override")
	}
	rate, ok := np.Get("rate")
	if !ok || rate.Int != 10 {
		t.Errorf("rate = %+v, ok=%v, want Int(10)", rate, ok)
	}

	nonRos := args.UnparsedNonRos(argv)
	if len(nonRos) != 2 || nonRos[0] != "prog" || nonRos[1] != "extra" {
		t.Errorf("UnparsedNonRos = %v, want [prog extra]", nonRos)
	}
	if len(args.UnparsedRosIndices) != 0 {
		t.Errorf("UnparsedRosIndices = %v, want empty", args.UnparsedRosIndices)
	}
}

func TestParseEveryIndexAccountedForExactlyOnce(t *testing.T) {
	argv := []string{"prog", "--ros-args", "-r", "chatter:=my_chatter", "-p", "rate:=10", "--", "extra"}
	args, err := Parse(argv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[int]int)
	for _, i := range args.UnparsedRosIndices {
		seen[i]++
	}
	for _, i := range args.UnparsedNonRosIndices {
		seen[i]++
	}
	// flag-value pairs consumed by -r/-p are indices 2,3,4,5; --ros-args
	// and -- are indices 1 and 6 — none of these appear in either
	// unparsed list, and every remaining index appears exactly once.
	for _, i := range []int{0, 7} {
		if seen[i] != 1 {
			t.Errorf("index %d counted %d times, want exactly 1", i, seen[i])
		}
	}
	for _, i := range []int{1, 2, 3, 4, 5, 6} {
		if seen[i] != 0 {
			t.Errorf("consumed index %d appeared in an unparsed list", i)
		}
	}
}

func TestParseUnrecognizedRosTokenIsUnparsed(t *testing.T) {
	argv := []string{"prog", "--ros-args", "--mystery-flag", "--"}
	args, err := Parse(argv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args.UnparsedRosIndices) != 1 || args.UnparsedRosIndices[0] != 2 {
		t.Errorf("UnparsedRosIndices = %v, want [2]", args.UnparsedRosIndices)
	}
}

func TestParseEnclaveValidation(t *testing.T) {
	argv := []string{"prog", "--ros-args", "--enclave", "1bad", "--"}
	_, err := Parse(argv)
	if err == nil {
		t.Fatalf("expected an invalid enclave name to fail parsing")
	}
	if got := err.Error(); got == "" {
		t.Fatalf("expected a non-empty error message")
	}
	if !err.HasIndex || err.Index != 0 {
		t.Errorf("Index = %d, HasIndex = %v, want 0/true", err.Index, err.HasIndex)
	}
}

func TestParseEnclaveValid(t *testing.T) {
	argv := []string{"prog", "--ros-args", "--enclave", "/my_enclave", "--"}
	args, err := Parse(argv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !args.HasEnclave || args.Enclave != "/my_enclave" {
		t.Errorf("Enclave = %q HasEnclave = %v", args.Enclave, args.HasEnclave)
	}
}

func TestParseBooleanLogFlags(t *testing.T) {
	argv := []string{"prog", "--ros-args", "--disable-stdout-logs", "--enable-rosout-logs", "--"}
	args, err := Parse(argv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if args.LogStdoutEnabled != Disabled {
		t.Errorf("LogStdoutEnabled = %v, want Disabled", args.LogStdoutEnabled)
	}
	if args.LogRosoutEnabled != Enabled {
		t.Errorf("LogRosoutEnabled = %v, want Enabled", args.LogRosoutEnabled)
	}
}

func TestParseMissingFlagValueErrors(t *testing.T) {
	argv := []string{"prog", "--ros-args", "-r"}
	if _, err := Parse(argv); err == nil {
		t.Fatalf("expected a dangling -r with no value to fail")
	}
}

func TestParseDeprecatedBareRemapOutsideRegion(t *testing.T) {
	argv := []string{"prog", "chatter:=my_chatter"}
	args, err := Parse(argv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(args.RemapRules) != 1 || args.RemapRules[0].Replacement != "my_chatter" {
		t.Errorf("RemapRules = %+v", args.RemapRules)
	}
}

// TestCloneFidelity matches the spec's clone-fidelity property: mutating
// a cloned Arguments must never affect the original.
func TestCloneFidelity(t *testing.T) {
	argv := []string{"prog", "--ros-args", "-r", "chatter:=my_chatter", "-p", "rate:=10", "--log-level", "debug", "--"}
	args, err := Parse(argv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clone := args.Clone()
	clone.RemapRules[0].Replacement = "mutated"
	clone.Overlay.EnsureNode("/**").Set("rate", typedvalue.NewInt(999))
	clone.LogLevels.Default = loglevel.Unset

	if args.RemapRules[0].Replacement != "my_chatter" {
		t.Errorf("cloning and mutating leaked into the original's RemapRules")
	}
	origRate, _ := args.Overlay.Node("/**")
	rate, _ := origRate.Get("rate")
	if rate.Int != 10 {
		t.Errorf("cloning and mutating leaked into the original's Overlay")
	}
	if args.LogLevels.Default != loglevel.Debug {
		t.Errorf("cloning and mutating leaked into the original's LogLevels")
	}
}
