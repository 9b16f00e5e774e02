package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmagro/rclcfg/internal/rclargs"
)

func newArgsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "args -- <argv...>",
		Short: "Parse a simulated argv as a node would, and print the resulting Arguments",
		Long: "Everything after '--' is treated as the argv the node configuration core\n" +
			"would receive (argv[0] is synthesized as the program name).",
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := append([]string{"rclcfg-node"}, args...)
			parsed, err := rclargs.Parse(argv)
			if err != nil {
				return fmt.Errorf("%v", err)
			}
			renderArguments(parsed, argv)
			return nil
		},
		DisableFlagParsing: false,
	}
}
