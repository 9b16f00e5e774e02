// Package cli assembles the Cobra command tree for the rclcfg binary,
// the demonstrative CLI surface for this module's parsers.
//
// Grounded on the teacher's cmd/monitor package, which builds one Cobra
// root command with several subcommands (call, blocks, compare, health,
// snapshot, status, watch) each in its own file; this module follows
// the identical one-file-per-subcommand layout under internal/cli
// instead of cmd/rclcfg directly, so cmd/rclcfg/main.go stays a thin
// entry point exactly like the teacher's cmd/monitor/main.go.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmagro/rclcfg/internal/rlog"
)

var (
	logLevel  string
	logFormat string
)

// NewRootCommand builds the rclcfg root Cobra command.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "rclcfg",
		Short: "Inspect and validate node-configuration-core inputs",
		Long: "rclcfg parses ROS-style --ros-args command lines and YAML parameter\n" +
			"files the way a graph node's configuration core would, and prints the\n" +
			"resulting typed data for inspection.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			rlog.Init(rlog.Config{Level: logLevel, Format: logFormat})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, or error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "text or json")

	root.AddCommand(newArgsCommand())
	root.AddCommand(newYAMLCommand())
	root.AddCommand(newRemapCommand())
	root.AddCommand(newValidateCommand())
	root.AddCommand(newLintNameCommand())
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
