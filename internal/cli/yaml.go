package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmagro/rclcfg/internal/yamlstore"
)

func newYAMLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "yaml <file>",
		Short: "Parse a YAML parameter file and print its ParameterStore",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := yamlstore.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("%v", err)
			}
			renderParameterStore(store)
			return nil
		},
	}
}
