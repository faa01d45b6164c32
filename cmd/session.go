package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/sadopc/petpal/internal/config"
	"github.com/sadopc/petpal/internal/kv"
	"github.com/sadopc/petpal/internal/logging"
	"github.com/sadopc/petpal/internal/store"
	"github.com/spf13/cobra"
)

// session is everything a command needs: resolved config, a logger and an
// unloaded store over the configured backend.
type session struct {
	cfg   *config.Config
	log   *log.Logger
	store *store.Store

	logCloser io.Closer
}

func openSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, opts, cfg)
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Prefix: "petpal",
	})
	if err != nil {
		return nil, err
	}

	backend, err := openBackend(cmd.Context(), cfg)
	if err != nil {
		logger.Error("open backend", "backend", cfg.Backend, "err", err)
		closer.Close()
		return nil, err
	}
	logger.Debug("backend ready", "backend", cfg.Backend, "db", cfg.DBPath)

	return &session{
		cfg:       cfg,
		log:       logger,
		store:     store.New(backend, logger),
		logCloser: closer,
	}, nil
}

// applyFlags copies only the flags the user actually set, so unset flags do
// not clobber file or environment values.
func applyFlags(cmd *cobra.Command, opts *rootOptions, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = opts.backend
	}
	if flags.Changed("db") {
		cfg.DBPath = opts.dbPath
	}
	if flags.Changed("redis-url") {
		cfg.RedisURL = opts.redisURL
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
}

func openBackend(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return kv.NewSQLite(cfg.DBPath)
	case config.BackendRedis:
		return kv.NewRedis(ctx, cfg.RedisURL, kv.WithPrefix(cfg.RedisPrefix))
	case config.BackendMemory:
		return kv.NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// load reads every collection and fails on the first broken document.
func (s *session) load(ctx context.Context) error {
	if err := s.store.Load(ctx); err != nil {
		return fmt.Errorf("loading data: %w", err)
	}
	return nil
}

func (s *session) Close() error {
	return errors.Join(s.store.Close(), s.logCloser.Close())
}
