// Command rclcfg is a thin entry point around the internal/cli command
// tree, matching the teacher's cmd/monitor/main.go shape: main() does
// nothing but hand off to the package that owns the Cobra tree.
package main

import (
	"fmt"
	"os"

	"github.com/dmagro/rclcfg/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
