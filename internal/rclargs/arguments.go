// Package rclargs implements the ROS-argument command-line parser of
// spec.md §4.9-4.10: it recognizes the bracketed "--ros-args ... --"
// region(s) inside argv, delegates to the remap, param-rule, and
// log-level grammars, and produces an Arguments aggregate.
//
// Grounded on the teacher's cmd/monitor/main.go, which hand-parses a
// small flag grammar itself (rather than leaning on a flag package for
// everything) because the domain grammar is richer than a flat flag set;
// this module generalizes that hand-rolled-dispatch style to the
// bracketed-region grammar spec.md requires.
package rclargs

import (
	"log/slog"

	"github.com/dmagro/rclcfg/internal/loglevel"
	"github.com/dmagro/rclcfg/internal/names"
	"github.com/dmagro/rclcfg/internal/paramrule"
	"github.com/dmagro/rclcfg/internal/rclerr"
	"github.com/dmagro/rclcfg/internal/remap"
	"github.com/dmagro/rclcfg/internal/typedvalue"
	"github.com/dmagro/rclcfg/internal/yamlstore"
)

// TriState models the enable/disable logging flags. It has only two
// values, Enabled and Disabled, so a flag that was never given cannot be
// told apart from one explicitly enabled. The zero value is Enabled, so
// logging is enabled by default.
type TriState int

const (
	Enabled TriState = iota
	Disabled
)

// Arguments is the aggregate produced by parsing argv, per spec.md §3.
type Arguments struct {
	RemapRules []remap.Rule
	ParamFiles []string
	Overlay    *typedvalue.ParameterStore
	LogLevels  *loglevel.Levels

	LogConfigFile    string
	HasLogConfigFile bool

	LogStdoutEnabled TriState
	LogRosoutEnabled TriState
	LogExtLibEnabled TriState

	Enclave    string
	HasEnclave bool

	UnparsedRosIndices    []int
	UnparsedNonRosIndices []int
}

// Clone returns a deep, independent copy of a per spec.md §8's "clone
// fidelity" property.
func (a *Arguments) Clone() *Arguments {
	out := &Arguments{
		RemapRules:            append([]remap.Rule(nil), a.RemapRules...),
		ParamFiles:            append([]string(nil), a.ParamFiles...),
		LogConfigFile:         a.LogConfigFile,
		HasLogConfigFile:      a.HasLogConfigFile,
		LogStdoutEnabled:      a.LogStdoutEnabled,
		LogRosoutEnabled:      a.LogRosoutEnabled,
		LogExtLibEnabled:      a.LogExtLibEnabled,
		Enclave:               a.Enclave,
		HasEnclave:            a.HasEnclave,
		UnparsedRosIndices:    append([]int(nil), a.UnparsedRosIndices...),
		UnparsedNonRosIndices: append([]int(nil), a.UnparsedNonRosIndices...),
	}
	if a.Overlay != nil {
		out.Overlay = a.Overlay.Clone()
	}
	if a.LogLevels != nil {
		clonedLevels := *a.LogLevels
		clonedLevels.PerLogger = append([]loglevel.LoggerSetting(nil), a.LogLevels.PerLogger...)
		out.LogLevels = &clonedLevels
	}
	return out
}

// UnparsedRos returns argv tokens (by original index) that looked like
// they were inside a ROS region but matched no recognized rule.
func (a *Arguments) UnparsedRos(argv []string) []string {
	return pick(argv, a.UnparsedRosIndices)
}

// UnparsedNonRos returns argv tokens outside any ROS region that were
// not consumed as a deprecated bare remap.
func (a *Arguments) UnparsedNonRos(argv []string) []string {
	return pick(argv, a.UnparsedNonRosIndices)
}

func pick(argv []string, idx []int) []string {
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		if i >= 0 && i < len(argv) {
			out = append(out, argv[i])
		}
	}
	return out
}

// ParameterOverrides returns the overlay ParameterStore built from -p
// rules and --params-file loads (nil if none were present).
func (a *Arguments) ParameterOverrides() *typedvalue.ParameterStore {
	return a.Overlay
}

type parser struct {
	argv     []string
	out      *Arguments
	depth    int
	i        int
}

// Parse parses a full argv (argv[0] is the program name and is always
// placed in UnparsedNonRosIndices) per the grammar in spec.md §4.9.
func Parse(argv []string) (*Arguments, *rclerr.Error) {
	p := &parser{argv: argv, out: &Arguments{}}
	if len(argv) > 0 {
		p.out.UnparsedNonRosIndices = append(p.out.UnparsedNonRosIndices, 0)
		p.i = 1
	}

	for p.i < len(argv) {
		tok := argv[p.i]
		idx := p.i

		if p.depth == 0 {
			if tok == "--ros-args" {
				p.depth++
				p.i++
				continue
			}
			if idx == 0 {
				p.out.UnparsedNonRosIndices = append(p.out.UnparsedNonRosIndices, idx)
				p.i++
				continue
			}
			if rule, err := remap.ParseRule(tok); err == nil {
				slog.Warn("bare name:=value remap outside --ros-args is deprecated", "index", idx, "token", tok)
				p.out.RemapRules = append(p.out.RemapRules, rule)
				p.i++
				continue
			}
			p.out.UnparsedNonRosIndices = append(p.out.UnparsedNonRosIndices, idx)
			p.i++
			continue
		}

		// depth > 0: inside a ROS region.
		if tok == "--ros-args" {
			p.depth++
			p.i++
			continue
		}
		if tok == "--" {
			p.depth--
			p.i++
			continue
		}
		if err := p.dispatchRosToken(tok, idx); err != nil {
			return nil, err
		}
	}

	return compact(p.out), nil
}

func (p *parser) dispatchRosToken(tok string, idx int) *rclerr.Error {
	switch {
	case tok == "--params-file":
		return p.handleParamsFile(idx)
	case tok == "-p" || tok == "--param":
		return p.handleParam(idx)
	case tok == "-r" || tok == "--remap":
		return p.handleRemap(idx)
	case tok == "-e" || tok == "--enclave":
		return p.handleEnclave(idx)
	case tok == "--log-level":
		return p.handleLogLevel(idx)
	case tok == "--log-config-file":
		return p.handleLogConfigFile(idx)
	case tok == "--enable-stdout-logs":
		p.out.LogStdoutEnabled = Enabled
		p.i++
		return nil
	case tok == "--disable-stdout-logs":
		p.out.LogStdoutEnabled = Disabled
		p.i++
		return nil
	case tok == "--enable-rosout-logs":
		p.out.LogRosoutEnabled = Enabled
		p.i++
		return nil
	case tok == "--disable-rosout-logs":
		p.out.LogRosoutEnabled = Disabled
		p.i++
		return nil
	case tok == "--enable-external-lib-logs":
		p.out.LogExtLibEnabled = Enabled
		p.i++
		return nil
	case tok == "--disable-external-lib-logs":
		p.out.LogExtLibEnabled = Disabled
		p.i++
		return nil
	default:
		p.out.UnparsedRosIndices = append(p.out.UnparsedRosIndices, idx)
		p.i++
		return nil
	}
}

func (p *parser) nextValue(flag string, flagIdx int) (string, int, *rclerr.Error) {
	if flagIdx+1 >= len(p.argv) {
		return "", 0, rclerr.AtIndex(rclerr.InvalidRosArgs, flagIdx, "%s requires a value", flag)
	}
	return p.argv[flagIdx+1], flagIdx + 1, nil
}

func (p *parser) handleParamsFile(idx int) *rclerr.Error {
	val, _, err := p.nextValue("--params-file", idx)
	if err != nil {
		return err
	}
	store, perr := yamlstore.LoadFile(val)
	if perr != nil {
		return rclerr.AtIndex(rclerr.InvalidRosArgs, idx, "failed to load params file %q: %v", val, perr)
	}
	if p.out.Overlay == nil {
		p.out.Overlay = typedvalue.NewParameterStore()
	}
	p.out.Overlay.Merge(store)
	p.out.ParamFiles = append(p.out.ParamFiles, val)
	p.i = idx + 2
	return nil
}

func (p *parser) handleParam(idx int) *rclerr.Error {
	val, _, err := p.nextValue("-p/--param", idx)
	if err != nil {
		return err
	}
	rule, perr := paramrule.Parse(val)
	if perr != nil {
		return rclerr.AtIndex(rclerr.InvalidParamRule, idx, "%v", perr)
	}
	typed, perr := yamlstore.ParseScalarOrSequence(rule.YAMLScalar)
	if perr != nil {
		return rclerr.AtIndex(rclerr.InvalidParamRule, idx, "%v", perr)
	}
	if p.out.Overlay == nil {
		p.out.Overlay = typedvalue.NewParameterStore()
	}
	p.out.Overlay.EnsureNode(rule.NodePrefix).Set(rule.ParamName, typed)
	p.i = idx + 2
	return nil
}

func (p *parser) handleRemap(idx int) *rclerr.Error {
	val, _, err := p.nextValue("-r/--remap", idx)
	if err != nil {
		return err
	}
	rule, perr := remap.ParseRule(val)
	if perr != nil {
		return rclerr.AtIndex(rclerr.InvalidRemapRule, idx, "%v", perr)
	}
	p.out.RemapRules = append(p.out.RemapRules, rule)
	p.i = idx + 2
	return nil
}

func (p *parser) handleEnclave(idx int) *rclerr.Error {
	val, _, err := p.nextValue("-e/--enclave", idx)
	if err != nil {
		return err
	}
	if res := names.ValidateEnclaveName(val); !res.Valid {
		return rclerr.New(rclerr.NodeInvalidNamespace, "%s", res.Message).WithIndex(res.Index)
	}
	if p.out.HasEnclave {
		slog.Debug("overwriting previously set enclave", "previous", p.out.Enclave, "next", val)
	}
	p.out.Enclave = val
	p.out.HasEnclave = true
	p.i = idx + 2
	return nil
}

func (p *parser) handleLogLevel(idx int) *rclerr.Error {
	val, _, err := p.nextValue("--log-level", idx)
	if err != nil {
		return err
	}
	if p.out.LogLevels == nil {
		p.out.LogLevels = loglevel.New()
	}
	if perr := p.out.LogLevels.ApplyRule(val); perr != nil {
		return rclerr.AtIndex(rclerr.InvalidLogLevelRule, idx, "%v", perr)
	}
	p.i = idx + 2
	return nil
}

func (p *parser) handleLogConfigFile(idx int) *rclerr.Error {
	val, _, err := p.nextValue("--log-config-file", idx)
	if err != nil {
		return err
	}
	if p.out.HasLogConfigFile {
		slog.Debug("overwriting previously set log config file", "previous", p.out.LogConfigFile, "next", val)
	}
	p.out.LogConfigFile = val
	p.out.HasLogConfigFile = true
	p.i = idx + 2
	return nil
}

func compact(a *Arguments) *Arguments {
	if len(a.ParamFiles) == 0 {
		a.ParamFiles = nil
	}
	if a.Overlay != nil && a.Overlay.Len() == 0 {
		a.Overlay = nil
	}
	if len(a.RemapRules) == 0 {
		a.RemapRules = nil
	}
	if a.LogLevels != nil {
		a.LogLevels.Shrink()
	}
	return a
}
