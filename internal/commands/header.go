package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ofxparse/internal/importer"
	"github.com/cleared-dev/ofxparse/internal/ofx"
)

func newHeaderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "header <file>",
		Short: "Print the header fields of an OFX file in source order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			text, err := importer.DecodeText(data)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}

			// The body is not parsed, so files with a broken body still work.
			header, _ := ofx.PreProcess(text)

			p := &printer{w: cmd.OutOrStdout()}
			for _, f := range header.Fields() {
				if f.HasValue {
					p.printf("%s: %s\n", f.Key, f.Value)
				} else {
					p.printf("%s\n", f.Key)
				}
			}
			return p.err
		},
	}
}
