package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zjrosen/textscope/internal/log"
	"github.com/zjrosen/textscope/internal/ui/inspector"
	"github.com/zjrosen/textscope/internal/watcher"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Interactively explore text objects in a file",
	Long: `Opens a read-only view of the file. Motion keys move the cursor and
object keys run selectors; the computed range is highlighted in place. The
buffer reloads automatically when the file changes on disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("no-auto-reload", false,
		"disable automatic reload when the file changes")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	noReload, _ := cmd.Flags().GetBool("no-auto-reload")

	var changes <-chan struct{}
	if cfg.AutoReload && !noReload {
		w, err := watcher.New(watcher.DefaultConfig(path))
		if err != nil {
			return fmt.Errorf("creating watcher: %w", err)
		}
		changes, err = w.Start()
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer func() { _ = w.Stop() }()
		log.Info(log.CatWatcher, "watching file", "path", path)
	}

	m := inspector.New(path, string(data), cfg, changes)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running inspector: %w", err)
	}
	return nil
}
