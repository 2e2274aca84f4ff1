package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ofxparse/internal/importlog"
)

func newHistoryCommand() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List processed files from the import log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			entries, err := importlog.Read(absDir)
			if err != nil {
				return err
			}

			p := &printer{w: cmd.OutOrStdout()}
			if len(entries) == 0 {
				p.printf("No imports recorded in %s\n", filepath.Join(absDir, importlog.FileName))
				return p.err
			}
			for _, e := range entries {
				p.printf("%s  %s  %-8s %s (%s): %d transactions, %d duplicates",
					e.Timestamp.Local().Format(time.DateTime), shortBatch(e.BatchID),
					e.Status, e.File, e.Format, e.Transactions, e.Duplicates)
				if e.Error != "" {
					p.printf(": %s", e.Error)
				}
				p.printf("\n")
			}
			return p.err
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "repository directory")

	return cmd
}

// shortBatch abbreviates a batch UUID to its first group.
func shortBatch(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
