package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ofxparse/internal/buildinfo"
	"github.com/cleared-dev/ofxparse/internal/config"
	"github.com/cleared-dev/ofxparse/internal/logging"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "ofxparse",
		Short:   "Parse OFX bank and credit card statements",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <repo>/"+config.FileName+")")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newParseCommand(opts))
	rootCmd.AddCommand(newHeaderCommand())
	rootCmd.AddCommand(newImportCommand(opts))
	rootCmd.AddCommand(newHistoryCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}

// loadConfig reads --config, or ofxparse.yaml in repoRoot, falling back to
// defaults when the file does not exist.
func (o *rootOptions) loadConfig(repoRoot string) (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = filepath.Join(repoRoot, config.FileName)
		return config.LoadOrDefault(path)
	}
	return config.Load(path)
}

// logger builds the command logger on stderr. Precedence, lowest first:
// config file, LOG_LEVEL/LOG_FORMAT, --log-level.
func (o *rootOptions) logger(cmd *cobra.Command, cfg *config.Config) (*logging.Logger, error) {
	logCfg := logging.DefaultConfig()
	if cfg.Log.Level != "" {
		logCfg.Level = cfg.Log.Level
	}
	if cfg.Log.Format != "" {
		logCfg.Format = cfg.Log.Format
	}
	logCfg.EnableCaller = cfg.Log.Caller
	logCfg.Development = cfg.Log.Development
	logCfg = logging.ApplyEnv(logCfg)
	if o.logLevel != "" {
		logCfg.Level = o.logLevel
	}

	return logging.NewLogger(logCfg, cmd.ErrOrStderr())
}
