package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/abhisek/batball/internal/config"
	"github.com/abhisek/batball/internal/logging"
	"github.com/abhisek/batball/internal/opponent"
	"github.com/abhisek/batball/internal/round"
	"github.com/abhisek/batball/internal/store"
	"github.com/spf13/cobra"
)

// session bundles what every game command needs.
type session struct {
	cfg    config.Config
	dbPath string
	store  *store.Store
	log    *slog.Logger
	ctrl   *round.Controller
}

func (s *session) Close() error {
	return s.store.Close()
}

// openStore loads config and opens the database without building a
// controller.
func openStore(cmd *cobra.Command) (config.Config, string, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, "", nil, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return config.Config{}, "", nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return config.Config{}, "", nil, fmt.Errorf("open store: %w", err)
	}
	return cfg, dbPath, st, nil
}

// openSession opens the store and builds a round controller whose logs go
// to logOut. A nil logOut uses the command's stderr.
func openSession(cmd *cobra.Command, logOut io.Writer) (*session, error) {
	cfg, dbPath, st, err := openStore(cmd)
	if err != nil {
		return nil, err
	}

	if logOut == nil {
		logOut = cmd.ErrOrStderr()
	}
	logger, err := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("build logger: %w", err)
	}

	gen, err := opponent.NewSeeded(cfg.Seed)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("seed opponent: %w", err)
	}

	ctrl, err := round.New(cmd.Context(), round.Options{
		Scores:      st.ScoreRepo(),
		Rounds:      st.RoundRepo(),
		Generator:   gen,
		ComboWindow: cfg.ComboWindow,
		Logger:      logger,
	})
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("start game: %w", err)
	}

	logger.Debug("session opened", "db", dbPath, "session_id", ctrl.SessionID())
	return &session{cfg: cfg, dbPath: dbPath, store: st, log: logger, ctrl: ctrl}, nil
}
