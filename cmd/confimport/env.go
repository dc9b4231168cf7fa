package main

import (
	"context"
	"io"
	"os"

	"github.com/confimport/confimport/document"
	"github.com/confimport/confimport/metrics"
	"github.com/confimport/confimport/object"
	"github.com/confimport/confimport/plan"
	"github.com/confimport/confimport/repository"
	"github.com/confimport/confimport/storage"
	"github.com/confimport/confimport/storage/kvbackend"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// runEnv holds everything a single command run needs.
type runEnv struct {
	settings *settings
	logger   *zap.Logger
	metrics  *metrics.Metrics
	repo     *repository.Repository
	closer   io.Closer
}

func newRunEnv(cmd *cobra.Command) (*runEnv, error) {
	s, err := readSettings(cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := logCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	logger = logger.With(zap.String("run_id", ksuid.New().String()))

	e := &runEnv{
		settings: s,
		logger:   logger,
		metrics:  metrics.New(),
	}

	var backend storage.KVBackend
	if s.Memory {
		backend = &kvbackend.Memory{}
	} else {
		bolt, err := kvbackend.NewBolt(s.State)
		if err != nil {
			return nil, errors.Wrap(err, "open state")
		}
		backend = bolt
		e.closer = bolt
		logger.Debug("Opened state", zap.String("file", s.State))
	}

	e.repo = repository.New(backend, repository.NewCache())
	e.repo.Logger = logger.Named("repository")
	e.repo.Metrics = e.metrics
	return e, nil
}

// Close writes metrics and releases the backend.
func (e *runEnv) Close() {
	if e.settings.MetricsFile != "" {
		if err := e.metrics.WriteFile(e.settings.MetricsFile); err != nil {
			e.logger.Error("Could not write metrics", zap.Error(err))
		}
	}
	if e.closer != nil {
		if err := e.closer.Close(); err != nil {
			e.logger.Error("Could not close state", zap.Error(err))
		}
	}
	_ = e.logger.Sync()
}

// load reads the documents into a configuration.
func (e *runEnv) load(ctx context.Context, files []string) (*object.Configuration, error) {
	vars, err := e.settings.variables()
	if err != nil {
		return nil, err
	}
	loader := &document.Loader{
		Variables: vars,
		Logger:    e.logger.Named("document"),
	}
	return loader.Load(ctx, files...)
}

// plan loads the documents and computes the import plan.
func (e *runEnv) plan(ctx context.Context, files []string) (*plan.Plan, error) {
	cfg, err := e.load(ctx, files)
	if err != nil {
		return nil, err
	}
	if err := e.repo.Prefetch(ctx, object.KindFolder); err != nil {
		return nil, err
	}
	planner := &plan.Planner{
		Repository: e.repo,
		Logger:     e.logger.Named("plan"),
		Metrics:    e.metrics,
	}
	return planner.Plan(ctx, cfg)
}

// isTerminal reports whether w is a terminal.
func isTerminal(w interface{}) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
