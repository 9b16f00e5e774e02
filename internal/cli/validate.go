package cli

import (
	"fmt"
	"os"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/dmagro/rclcfg/internal/yamlstore"
)

// newValidateCommand loads every given YAML parameter file concurrently
// via yamlstore.LoadMany (backed by golang.org/x/sync/errgroup) and
// prints a pass/fail table, the way the teacher's `test` command fans
// out requests across providers and tabulates results
// (internal/format/test.go).
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file...>",
		Short: "Validate one or more YAML parameter files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := yamlstore.LoadMany(args)
			tbl := table.New("File", "Status", "Nodes", "Detail")
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					tbl.AddRow(r.Path, "FAIL", 0, r.Err.Error())
					continue
				}
				tbl.AddRow(r.Path, "OK", r.Store.Len(), "")
			}
			tbl.WithWriter(os.Stdout).Print()
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(args))
			}
			return nil
		},
	}
}
