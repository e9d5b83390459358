package cli

import (
	"fmt"
	"io"
	"os"

	"gorm.io/gorm"

	"github.com/andrescamacho/infrast-go/internal/adapters/logging"
	"github.com/andrescamacho/infrast-go/internal/adapters/metrics"
	"github.com/andrescamacho/infrast-go/internal/adapters/persistence"
	"github.com/andrescamacho/infrast-go/internal/adapters/planfile"
	"github.com/andrescamacho/infrast-go/internal/application/common"
	"github.com/andrescamacho/infrast-go/internal/application/infrast"
	"github.com/andrescamacho/infrast-go/internal/application/mediator"
	"github.com/andrescamacho/infrast-go/internal/infrastructure/config"
	"github.com/andrescamacho/infrast-go/internal/infrastructure/database"
)

// app wires one compile session with its logger, metrics and mediator
type app struct {
	cfg      *config.Config
	session  *infrast.Session
	mediator mediator.Mediator
	logger   common.SessionLogger
	db       *gorm.DB
	closers  []func() error
}

// newApp builds the application from configuration. sessionLog forces
// compile logs to be persisted regardless of compiler.persist_logs.
func newApp(cfg *config.Config, sessionLog bool) (*app, error) {
	a := &app{cfg: cfg}

	out, closeOut, err := logOutput(cfg.Logging)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closeOut)

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	loggers := logging.Tee{logging.NewSlogLogger(level, cfg.Logging.Format, out)}

	var recorder infrast.CompileRecorder
	var commandCollector *metrics.CommandMetricsCollector
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		compileCollector := metrics.NewCompileMetricsCollector()
		if err := compileCollector.Register(); err != nil {
			return nil, fmt.Errorf("failed to register compile metrics: %w", err)
		}
		commandCollector = metrics.NewCommandMetricsCollector()
		if err := commandCollector.Register(); err != nil {
			return nil, fmt.Errorf("failed to register command metrics: %w", err)
		}
		recorder = compileCollector
	}

	a.session = infrast.NewSession(planfile.NewLoader(), cfg.Compiler.PlanDir, infrast.WithRecorder(recorder))

	if sessionLog || cfg.Compiler.PersistLogs {
		db, err := a.openDB()
		if err != nil {
			return nil, err
		}
		repo := persistence.NewGormCompileLogRepository(db, nil)
		loggers = append(loggers, persistence.NewRepositoryLogger(repo, a.session.ID(), func(err error) {
			fmt.Fprintf(os.Stderr, "Warning: failed to persist compile log: %v\n", err)
		}))
	}
	a.logger = loggers

	a.mediator = mediator.NewMediator()
	a.mediator.RegisterMiddleware(metrics.PrometheusMiddleware(commandCollector))
	if err := mediator.RegisterHandler[*infrast.CompileInfrastCommand](a.mediator, infrast.NewCompileInfrastHandler(a.session)); err != nil {
		return nil, fmt.Errorf("failed to register CompileInfrast handler: %w", err)
	}

	return a, nil
}

// openDB connects and migrates the compile log database once
func (a *app) openDB() (*gorm.DB, error) {
	if a.db != nil {
		return a.db, nil
	}

	db, err := database.NewConnection(&a.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	a.db = db
	a.closers = append(a.closers, func() error { return database.Close(db) })
	return db, nil
}

// flushMetrics writes the metrics registry to the configured textfile
func (a *app) flushMetrics() error {
	if err := metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
}

func logOutput(cfg config.LoggingConfig) (io.Writer, func() error, error) {
	switch cfg.Output {
	case "stdout":
		return os.Stdout, func() error { return nil }, nil
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return f, f.Close, nil
	}
	return os.Stderr, func() error { return nil }, nil
}

// loadConfig loads configuration, falling back to defaults with a warning
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config: %v\nUsing default configuration.\n", err)
		return config.LoadConfigOrDefault("")
	}
	return cfg
}
