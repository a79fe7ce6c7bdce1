package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quilldb/dbdigest/internal/app"
	"github.com/quilldb/dbdigest/internal/core/domain"
)

func (c *CLI) newCompareCmd() *cobra.Command {
	var (
		skipTemp bool
		at       uint64
	)

	cmd := &cobra.Command{
		Use:   "compare <database> <database> [databases...]",
		Short: "Digest several databases and report divergence",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.CompareOptions{SkipTempCollections: skipTemp}
			if at != 0 {
				ts := domain.Timestamp(at)
				opts.ReadTimestamp = &ts
			}

			report, err := c.app.Compare(cmd.Context(), args, opts)
			if err != nil && !errors.Is(err, domain.ErrDivergence) {
				return err
			}

			out := cmd.OutOrStdout()
			for _, db := range report.Databases {
				_, _ = fmt.Fprintf(out, "%s\t%s\n", db, report.Digests[db].AggregateHash)
			}
			if report.Matched() {
				_, _ = fmt.Fprintln(out, "match")
				return nil
			}
			for _, name := range report.Divergent {
				_, _ = fmt.Fprintf(out, "diverged: %s\n", name)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&skipTemp, "skip-temp", false, "Skip temporary aggregation collections")
	cmd.Flags().Uint64Var(&at, "at", 0, "Read at this cluster timestamp instead of the latest state")

	return cmd
}
