package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmagro/rclcfg/internal/names"
)

func newLintNameCommand() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "lint-name <name>",
		Short: "Validate a topic, node, namespace, or enclave name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var res names.Result
			switch kind {
			case "topic":
				res = names.ValidateTopicName(args[0])
			case "node":
				res = names.ValidateNodeName(args[0])
			case "namespace":
				res = names.ValidateNamespace(args[0])
			case "enclave":
				res = names.ValidateEnclaveName(args[0])
			default:
				return fmt.Errorf("unknown --kind %q (want topic, node, namespace, or enclave)", kind)
			}
			if res.Valid {
				fmt.Println(green("valid"))
				return nil
			}
			fmt.Printf("%s %s: %s (index %d)\n", yellow("invalid"), res.Reason, res.Message, res.Index)
			return fmt.Errorf("invalid name")
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "topic", "topic, node, namespace, or enclave")
	return cmd
}
