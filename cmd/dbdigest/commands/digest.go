package commands

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/quilldb/dbdigest/internal/core/domain"
)

func (c *CLI) newDigestCmd() *cobra.Command {
	var (
		collections []string
		skipTemp    bool
		at          uint64
	)

	cmd := &cobra.Command{
		Use:   "digest <database>",
		Short: "Compute the content digest of a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.DigestRequest{
				Database:            args[0],
				Collections:         collections,
				SkipTempCollections: skipTemp,
			}
			if at != 0 {
				ts := domain.Timestamp(at)
				req.ReadTimestamp = &ts
			}

			result, err := c.app.Digest(cmd.Context(), req)
			if err != nil {
				return err
			}
			return renderJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringSliceVar(&collections, "collections", nil, "Restrict the digest to these collections")
	cmd.Flags().BoolVar(&skipTemp, "skip-temp", false, "Skip temporary aggregation collections")
	cmd.Flags().Uint64Var(&at, "at", 0, "Read at this cluster timestamp instead of the latest state")

	return cmd
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
