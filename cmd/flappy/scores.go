package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and run history",
	Long: `Display the best score and the top runs.

In a terminal this opens an interactive table (tab switches between top
and recent runs). With --plain, or when stdout is not a terminal, it
prints a plain list instead.

--clear deletes the run history. The best score is kept.

Examples:
  flappy scores
  flappy scores --plain --limit 5
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history, keeping the best score")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		return clearRuns(cmd.OutOrStdout(), store)
	}

	fd := int(os.Stdout.Fd())
	if flagPlain || !term.IsTerminal(fd) {
		return tui.WriteScoreboard(cmd.OutOrStdout(), store, flagLimit)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width, height = w, h
	}
	if err := tui.RunScoreboard(store, width, height); err != nil {
		return fmt.Errorf("scoreboard: %w", err)
	}
	return nil
}

func clearRuns(w io.Writer, store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if err := store.ClearRuns(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d runs. The best score is kept.\n", stats.Runs)
	return nil
}
