package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/batball/internal/app"
	"github.com/spf13/cobra"
)

// logFileName sits next to the database while the TUI owns the terminal.
const logFileName = "batball.log"

// runApp opens the store, builds the controller, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := peekDBPath(cmd)
	if err != nil {
		return err
	}
	logFile, err := os.OpenFile(filepath.Join(filepath.Dir(dbPath), logFileName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	s, err := openSession(cmd, logFile)
	if err != nil {
		return err
	}
	defer s.Close()

	return app.Run(cmd.Context(), app.Options{
		Game:        s.ctrl,
		Rounds:      s.store.RoundRepo(),
		RevealDelay: s.cfg.RevealDelay,
	})
}
