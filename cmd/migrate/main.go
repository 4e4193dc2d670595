// Command migrate manages the versioned Postgres schema under migrations/.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schoolms/backend/internal/infrastructure/config"
	"github.com/schoolms/backend/internal/infrastructure/logger"
	"github.com/schoolms/backend/internal/infrastructure/migration"
	"go.uber.org/zap"
)

const defaultMigrationsDir = "migrations"

func main() {
	dirFlag := flag.String("path", "", "migrations directory (default ./migrations)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Usage = func() { printUsage(flag.CommandLine.Output()) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log, err := logger.New(&logger.Config{
		Level:      *logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync(log) }()

	dir, err := filepath.Abs(resolveMigrationsDir(*dirFlag))
	if err != nil {
		log.Fatal("Failed to resolve migrations directory", zap.Error(err))
	}

	e := &env{
		dir: dir,
		log: log,
		out: os.Stdout,
		open: func() (schemaMigrator, func(), error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, nil, fmt.Errorf("load configuration: %w", err)
			}
			m, err := migration.Open(context.Background(), &cfg.Database, dir, log)
			if errors.Is(err, migration.ErrUnsupportedDriver) {
				return nil, nil, fmt.Errorf("%w; the server creates the sqlite schema on startup", err)
			}
			if err != nil {
				return nil, nil, err
			}
			return m, func() {
				if err := m.Close(); err != nil {
					log.Warn("Failed to close migrator", zap.Error(err))
				}
			}, nil
		},
	}

	name := flag.Arg(0)
	log.Info("Migration CLI started", zap.String("command", name), zap.String("migrations_path", dir))
	if err := e.run(name, flag.Args()[1:]); err != nil {
		if errors.Is(err, errUnknownCommand) {
			printUsage(os.Stderr)
		}
		log.Fatal("Migration command failed", zap.String("command", name), zap.Error(err))
	}
}

// resolveMigrationsDir prefers an explicit flag, then ./migrations, then the
// repository layout relative to a binary under bin/<name>.
func resolveMigrationsDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if _, err := os.Stat(defaultMigrationsDir); err == nil {
		return defaultMigrationsDir
	}
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "..", "..", defaultMigrationsDir)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return defaultMigrationsDir
}
