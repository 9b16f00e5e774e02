package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmagro/rclcfg/internal/remap"
)

func newRemapCommand() *cobra.Command {
	var nodeName, nodeNamespace string
	var ruleStrings []string
	var kindFlag string

	cmd := &cobra.Command{
		Use:   "remap <name>",
		Short: "Resolve a topic/service/nodename/namespace name against a set of remap rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			kind, err := parseKindFlag(kindFlag)
			if err != nil {
				return err
			}
			var rules []remap.Rule
			for _, rs := range ruleStrings {
				r, perr := remap.ParseRule(rs)
				if perr != nil {
					return fmt.Errorf("rule %q: %v", rs, perr)
				}
				rules = append(rules, r)
			}
			result, matched, perr := remap.Resolve(kind, name, rules, nil, nodeName, nodeNamespace, nil)
			if perr != nil {
				return fmt.Errorf("%v", perr)
			}
			if !matched {
				fmt.Printf("%s %s\n", bold("unchanged:"), name)
				return nil
			}
			fmt.Printf("%s %s\n", bold("resolved:"), green(result))
			return nil
		},
	}
	cmd.Flags().StringVar(&nodeName, "node", "node", "node short name")
	cmd.Flags().StringVar(&nodeNamespace, "namespace", "/", "node namespace")
	cmd.Flags().StringArrayVarP(&ruleStrings, "rule", "r", nil, "a remap rule, repeatable, applied as local rules in order")
	cmd.Flags().StringVar(&kindFlag, "kind", "topic", "topic, service, nodename, or namespace")
	return cmd
}

func parseKindFlag(s string) (remap.Scope, error) {
	switch s {
	case "topic":
		return remap.ScopeTopic, nil
	case "service":
		return remap.ScopeService, nil
	case "nodename":
		return remap.ScopeNodeName, nil
	case "namespace":
		return remap.ScopeNamespace, nil
	default:
		return 0, fmt.Errorf("unknown --kind %q (want topic, service, nodename, or namespace)", s)
	}
}
