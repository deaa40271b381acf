package commands

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nowhereuri/smartMoneyPlanner/internal/config"
	"github.com/nowhereuri/smartMoneyPlanner/internal/gitops"
	"github.com/nowhereuri/smartMoneyPlanner/internal/ledger"
	"github.com/nowhereuri/smartMoneyPlanner/internal/logger"
	"github.com/nowhereuri/smartMoneyPlanner/internal/store"
)

// globalOptions carries the persistent root flags into subcommands.
type globalOptions struct {
	configPath *string
	verbose    *bool
}

// app bundles the wired-up services a command needs.
type app struct {
	cfg    *config.Config
	store  *store.Store
	ledger *ledger.Service
	log    zerolog.Logger
}

// loadApp reads the config and wires the store and ledger service.
func loadApp(opts *globalOptions) (*app, error) {
	cfg, err := config.Load(*opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading %s (run 'smp init' first?): %w", *opts.configPath, err)
	}

	log := logger.New(*opts.verbose)
	st := store.New(cfg.Data.Dir)
	return &app{
		cfg:    cfg,
		store:  st,
		ledger: ledger.NewService(st, log),
		log:    log,
	}, nil
}

// backup commits the data directory when auto-backup is enabled. A
// clean tree or disabled backup is a no-op.
func (a *app) backup(message string) error {
	if !a.cfg.Backup.AutoCommit {
		return nil
	}
	dir := a.store.Root()
	if !gitops.IsRepo(dir) {
		return nil
	}

	hash, err := gitops.CommitAll(dir, message, a.cfg.Backup.AuthorName, a.cfg.Backup.AuthorEmail)
	if err != nil {
		return fmt.Errorf("auto-backup: %w", err)
	}
	if hash != "" {
		a.log.Debug().Str("commit", hash).Msg("data directory backed up")
	}
	return nil
}

// parseDate parses a YYYY-MM-DD flag value, defaulting to today.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	d, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", value, err)
	}
	return d, nil
}
