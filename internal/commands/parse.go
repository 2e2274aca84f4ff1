package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ofxparse/internal/importer"
	"github.com/cleared-dev/ofxparse/internal/model"
	"github.com/cleared-dev/ofxparse/internal/ofx"
)

func newParseCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse an OFX file and print its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(".")
			if err != nil {
				return err
			}
			log, err := opts.logger(cmd, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}
			log.Debug("parsed document",
				zap.String("file", args[0]),
				zap.Int("header_fields", doc.Header.Len()),
				zap.Int("accounts", len(doc.Accounts())),
			)

			switch format {
			case "summary":
				return writeSummary(cmd.OutOrStdout(), doc)
			case "yaml":
				return writeYAML(cmd.OutOrStdout(), newDocumentView(doc))
			default:
				return fmt.Errorf("unknown format %q (want summary or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "summary", "output format: summary or yaml")

	return cmd
}

// readDocument reads and parses the OFX file at path.
func readDocument(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	text, err := importer.DecodeText(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	doc, err := ofx.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func writeSummary(w io.Writer, doc *model.Document) error {
	p := &printer{w: w}

	if v, ok := doc.Header.Get("VERSION"); ok {
		p.printf("OFX version %s, %d header fields\n", v, doc.Header.Len())
	} else {
		p.printf("%d header fields\n", doc.Header.Len())
	}

	if so := doc.SignOn; so != nil {
		p.printf("Sign-on: %s %s", so.Status.Code(), so.Status.Severity)
		if desc, ok := so.Status.CodeDesc(); ok {
			p.printf(" (%s)", desc)
		}
		p.printf("\n")
		if so.Institute.Name != "" || so.Institute.ID != "" {
			p.printf("Institution: %s (FID %s)\n", so.Institute.Name, so.Institute.ID)
		}
	}

	for _, info := range doc.SignupAccountInfo {
		p.printf("Account info: %s %s\n", info.Number, info.Desc)
	}

	for _, acct := range doc.Accounts() {
		base := acct.Base()
		p.printf("\n%s account %s", acct.Kind(), base.Number)
		if bank, ok := acct.(*model.BankAccount); ok {
			p.printf(" (%s, routing %s)", bank.Type(), bank.RoutingNumber)
		}
		p.printf("\n")

		for _, f := range acct.MonetaryFields() {
			if f.Text != "" {
				p.printf("  %s: %s\n", f.Name, f.Text)
			}
		}

		stmt := &base.Statement
		p.printf("  %d transactions %s\n", len(stmt.Transactions), stmt.Currency)
		for i := range stmt.Transactions {
			t := &stmt.Transactions[i]
			date := t.DatePosted
			if d, ok := t.Date(); ok {
				date = d.Format("2006-01-02")
			}
			p.printf("  %-10s  %-10s %12s  %s\n", date, t.Type(), t.Amount, t.Payee)
		}
	}
	return p.err
}

// printer remembers the first write error so summaries can print freely.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
