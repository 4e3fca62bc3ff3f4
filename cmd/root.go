package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"bookshelf/config"
)

// options holds the flags shared by every command.
type options struct {
	file    string
	storage string
	stderr  io.Writer
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the bookshelf command tree. Without a subcommand it
// serves the shell.
func NewRootCommand() *cobra.Command {
	opts := &options{stderr: os.Stderr}

	root := &cobra.Command{
		Use:          "bookshelf",
		Short:        "Personal library manager",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.file, "file", "", "library file (overrides BOOKSHELF_FILE)")
	root.PersistentFlags().StringVar(&opts.storage, "storage", "", "storage backend, json or sqlite (overrides BOOKSHELF_STORAGE)")

	root.AddCommand(
		newServeCommand(opts),
		newStatsCommand(opts),
		newExportCommand(opts),
		newImportCommand(opts),
	)
	return root
}

// loadConfig reads the environment, applies flags on top and validates.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.File = opts.file
	}
	if flags.Changed("storage") {
		cfg.Storage = opts.storage
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
