package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dmagro/rclcfg/internal/loglevel"
	"github.com/dmagro/rclcfg/internal/rclargs"
	"github.com/dmagro/rclcfg/internal/remap"
	"github.com/dmagro/rclcfg/internal/typedvalue"
)

// Colors for status indicators, mirroring the teacher's
// internal/output/terminal.go package-level SprintFunc set.
var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func renderParameterStore(store *typedvalue.ParameterStore) {
	if store == nil || store.Len() == 0 {
		fmt.Println(yellow("(no parameters)"))
		return
	}
	for _, nodeFQN := range store.Nodes() {
		fmt.Println(bold(cyan(nodeFQN)))
		np, _ := store.Node(nodeFQN)
		tbl := table.New("Parameter", "Type", "Value")
		for _, name := range np.Names() {
			v, _ := np.Get(name)
			tbl.AddRow(name, v.Kind.String(), formatValue(v))
		}
		tbl.WithWriter(os.Stdout).Print()
		fmt.Println()
	}
}

func formatValue(v typedvalue.Value) string {
	switch v.Kind {
	case typedvalue.KindBool:
		return fmt.Sprintf("%t", v.Bool)
	case typedvalue.KindInt:
		return fmt.Sprintf("%d", v.Int)
	case typedvalue.KindFloat:
		return fmt.Sprintf("%g", v.Float)
	case typedvalue.KindString:
		return fmt.Sprintf("%q", v.String)
	case typedvalue.KindBoolArray:
		return fmt.Sprintf("%v", v.BoolArray)
	case typedvalue.KindIntArray:
		return fmt.Sprintf("%v", v.IntArray)
	case typedvalue.KindFloatArray:
		return fmt.Sprintf("%v", v.FloatArray)
	case typedvalue.KindStringArray:
		return fmt.Sprintf("%v", v.StringArray)
	default:
		return ""
	}
}

func renderRemapRules(rules []remap.Rule) {
	if len(rules) == 0 {
		fmt.Println(yellow("(no remap rules)"))
		return
	}
	tbl := table.New("Scope", "NodePrefix", "Match", "Replacement")
	for _, r := range rules {
		prefix := "*"
		if r.HasPrefix {
			prefix = r.NodePrefix
		}
		match := "(implicit)"
		if r.HasMatch {
			match = r.MatchPattern
		}
		tbl.AddRow(scopeString(r.Scope), prefix, match, r.Replacement)
	}
	tbl.WithWriter(os.Stdout).Print()
}

func scopeString(s remap.Scope) string {
	out := ""
	if s.Has(remap.ScopeTopic) {
		out += "Topic,"
	}
	if s.Has(remap.ScopeService) {
		out += "Service,"
	}
	if s.Has(remap.ScopeNodeName) {
		out += "NodeName,"
	}
	if s.Has(remap.ScopeNamespace) {
		out += "Namespace,"
	}
	if out == "" {
		return "(none)"
	}
	return out[:len(out)-1]
}

func renderLogLevels(l *loglevel.Levels) {
	if l == nil {
		fmt.Println(yellow("(no log-level rules)"))
		return
	}
	fmt.Printf("%s %s\n", bold("default:"), l.Default)
	tbl := table.New("Logger", "Level")
	for _, s := range l.PerLogger {
		tbl.AddRow(s.Name, s.Level.String())
	}
	tbl.WithWriter(os.Stdout).Print()
}

func renderArguments(a *rclargs.Arguments, argv []string) {
	fmt.Println(bold(cyan("Remap rules")))
	renderRemapRules(a.RemapRules)
	fmt.Println()

	fmt.Println(bold(cyan("Parameter overlay")))
	renderParameterStore(a.Overlay)

	fmt.Println(bold(cyan("Log levels")))
	renderLogLevels(a.LogLevels)
	fmt.Println()

	if a.HasEnclave {
		fmt.Printf("%s %s\n", bold("enclave:"), a.Enclave)
	}
	if a.HasLogConfigFile {
		fmt.Printf("%s %s\n", bold("log-config-file:"), a.LogConfigFile)
	}
	fmt.Printf("%s stdout=%v rosout=%v ext_lib=%v\n", bold("logging:"),
		a.LogStdoutEnabled == rclargs.Enabled,
		a.LogRosoutEnabled == rclargs.Enabled,
		a.LogExtLibEnabled == rclargs.Enabled)

	fmt.Println()
	fmt.Println(bold("unparsed (ros):"), a.UnparsedRos(argv))
	fmt.Println(bold("unparsed (non-ros):"), a.UnparsedNonRos(argv))
}
