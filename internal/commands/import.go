package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cleared-dev/ofxparse/internal/config"
	"github.com/cleared-dev/ofxparse/internal/export"
	"github.com/cleared-dev/ofxparse/internal/importer"
	"github.com/cleared-dev/ofxparse/internal/importlog"
	"github.com/cleared-dev/ofxparse/internal/logging"
	"github.com/cleared-dev/ofxparse/internal/model"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	var dryRun bool
	var repoDir string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import OFX files from the import directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			cfg, err := opts.loadConfig(absDir)
			if err != nil {
				return err
			}
			log, err := opts.logger(cmd, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			run := &importRun{
				repoRoot: absDir,
				cfg:      cfg,
				registry: importer.DefaultRegistry(),
				log:      log.Named("import"),
				dryRun:   dryRun,
			}
			return run.execute(cmd)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse files without writing or moving anything")
	cmd.Flags().StringVar(&repoDir, "repo", ".", "repository directory")

	return cmd
}

type importRun struct {
	repoRoot string
	cfg      *config.Config
	registry *importer.Registry
	log      *logging.Logger
	dryRun   bool
	seen     map[string]struct{} // references already exported
}

// resolve makes path relative to the repository root unless it is absolute.
func (r *importRun) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.repoRoot, path)
}

func (r *importRun) execute(cmd *cobra.Command) error {
	importDir := r.resolve(r.cfg.Import.Dir)
	files, err := importer.Scan(importDir, r.cfg.Import.Extensions)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No files to import in %s\n", importDir)
		return nil
	}

	exported, err := export.ReadFile(r.resolve(r.cfg.Export.Path))
	if err != nil {
		return err
	}
	r.seen = importer.References(exported)

	batch := importlog.NewBatchID()
	log := r.log.With(zap.String("batch_id", batch), zap.Bool("dry_run", r.dryRun))

	var entries []importlog.Entry
	var imported, failed int
	for _, f := range files {
		entry := r.importFile(importDir, f)
		entry.BatchID = batch
		entries = append(entries, entry)

		fields := []zap.Field{
			zap.String("file", entry.File),
			zap.String("format", entry.Format),
			zap.Int("accounts", entry.Accounts),
			zap.Int("transactions", entry.Transactions),
			zap.Int("duplicates", entry.Duplicates),
		}
		if entry.Status == importlog.StatusFailed {
			failed++
			log.Error("import failed", append(fields, zap.String("error", entry.Error))...)
			continue
		}
		imported += entry.Transactions
		log.Info("imported file", fields...)
	}

	if !r.dryRun {
		if err := importlog.Append(r.repoRoot, entries); err != nil {
			log.Warn("writing import log", zap.Error(err))
		}
	}

	verb := "Imported"
	if r.dryRun {
		verb = "Would import"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %d transactions from %d of %d files\n", verb, imported, len(files)-failed, len(files))

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to import", failed, len(files))
	}
	return nil
}

// importFile parses one file and, unless this is a dry run, exports its
// transactions and moves it to the processed directory.
func (r *importRun) importFile(importDir string, f importer.FileInfo) importlog.Entry {
	entry := importlog.Entry{
		Timestamp: time.Now().UTC().Truncate(time.Second),
		File:      f.Name,
		Status:    importlog.StatusImported,
	}
	fail := func(err error) importlog.Entry {
		entry.Status = importlog.StatusFailed
		entry.Error = err.Error()
		return entry
	}

	p := r.registry.ForFile(f.Name)
	if p == nil {
		return fail(fmt.Errorf("no parser for %s", f.Name))
	}
	entry.Format = p.Format()

	fh, err := os.Open(f.Path)
	if err != nil {
		return fail(fmt.Errorf("opening %s: %w", f.Name, err))
	}
	txns, err := p.Parse(fh)
	fh.Close()
	if err != nil {
		return fail(err)
	}
	entry.Accounts = countAccounts(txns)
	txns, dupes := importer.Deduplicate(txns, r.seen)
	entry.Transactions = len(txns)
	entry.Duplicates = dupes

	if r.dryRun {
		entry.Status = importlog.StatusDryRun
		return entry
	}

	if len(txns) > 0 {
		if err := export.AppendFile(r.resolve(r.cfg.Export.Path), txns); err != nil {
			return fail(err)
		}
	}
	if err := importer.MarkProcessed(importDir, r.resolve(r.cfg.Import.ProcessedDir), f.Name); err != nil {
		return fail(err)
	}
	return entry
}

func countAccounts(txns []model.BankTransaction) int {
	seen := make(map[string]struct{})
	for _, t := range txns {
		seen[t.Account] = struct{}{}
	}
	return len(seen)
}
