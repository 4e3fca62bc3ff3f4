package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newStatsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the number of books and how many have been read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			library, err := cfg.OpenLibrary(cmd.Context(), cfg.NewLogger(opts.stderr))
			if err != nil {
				return err
			}
			defer library.Close()

			stats := library.Statistics()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total books: %d\n", stats.Total)
			fmt.Fprintf(out, "Percentage read: %s%%\n", stats.Percent())
			return nil
		},
	}
}

func newExportCommand(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the library as a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			library, err := cfg.OpenLibrary(cmd.Context(), cfg.NewLogger(opts.stderr))
			if err != nil {
				return err
			}
			defer library.Close()

			data, err := library.Export()
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(output, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func newImportCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the library with the books in a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			library, err := cfg.OpenLibrary(cmd.Context(), cfg.NewLogger(opts.stderr))
			if err != nil {
				return err
			}
			defer library.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			if err := library.Import(cmd.Context(), f); err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Library imported successfully! %d books.\n", library.Len())
			return nil
		},
	}
}
