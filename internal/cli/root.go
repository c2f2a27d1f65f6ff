// Package cli wires the cobra command tree for the todoapp binary.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MoyaiAJ/ToDoApp/internal/config"
	"github.com/MoyaiAJ/ToDoApp/internal/logging"
	"github.com/MoyaiAJ/ToDoApp/internal/printers"
	"github.com/MoyaiAJ/ToDoApp/internal/store"
	"github.com/MoyaiAJ/ToDoApp/internal/ui"
)

// New builds the root command. Running it opens the to-do screen; positional
// args become the first items of a fresh session.
func New() *cobra.Command {
	var (
		theme     string
		noSummary bool
		logFile   string
	)

	cmd := &cobra.Command{
		Use:   "todoapp [label ...]",
		Short: "A single-screen to-do list for one sitting.",
		Long: `todoapp keeps one in-memory to-do list on one screen: add items, check
them off, remove them. Nothing is written to disk. When the screen closes,
a summary of both partitions is printed so the session is not lost with it.`,
		Example: `
todoapp
todoapp "Buy milk" "Walk the dog"
todoapp --theme neon
`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Flags beat file and environment.
			if theme != "" {
				cfg.Theme = theme
			}
			if noSummary {
				cfg.Summary = false
			}
			if logFile != "" {
				cfg.LogFile = logFile
			}

			logger := logging.Discard()
			if cfg.LogFile != "" {
				opts := logging.DefaultOptions()
				opts.Level = logging.ParseLevel(cfg.LogLevel)
				fileLogger, closer, err := logging.ToFile(cfg.LogFile, opts)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer closer.Close()
				logger = fileLogger
			}

			tm := ui.ByName(cfg.Theme)
			items, err := ui.Run(cmd.Context(), ui.Options{
				Theme:  tm,
				Seed:   args,
				Logger: logger,
			})
			if err != nil {
				return err
			}

			if cfg.Summary {
				final := store.New(items...)
				pp := &printers.PrettyPrint{
					Checked:   tm.BoxChecked,
					Unchecked: tm.BoxUnchecked,
				}
				pp.Summary(final.Active(), final.Completed())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Theme: classic, neon or mono.")
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, "Skip the closing summary.")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write a debug log to this file.")

	addVersion(cmd)
	return cmd
}
