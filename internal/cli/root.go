package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "scrabblesolver",
		Short: "Find the best scoring placements for a rack",
		Long: `scrabblesolver searches a word game board for every placement of a
dictionary word that can be played from a rack, and ranks them by score.

The solve, score and locales commands run locally against a word list.
The session and health commands talk to a scrabblesolver server.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: SCRABBLESOLVER_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.DictionaryDir, "dict-dir", cfg.DictionaryDir, "Directory of <locale>.txt word lists (env: SCRABBLESOLVER_DICTIONARY_DIR)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log search details to stderr")

	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newLocalesCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// logger returns a stderr logger when verbose output is on
func logger(cmd *cobra.Command) *slog.Logger {
	if !cfg.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
