package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/config"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/migration"
	repository "github.com/aaravmahajanofficial/inventory-catalog/internal/repositories"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		slog.Error("❌ Migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	defaultPath := os.Getenv("CONFIG_PATH")
	if defaultPath == "" {
		defaultPath = config.DefaultConfigPath
	}

	configPath := flag.String("config", defaultPath, "path to the config file")
	up := flag.Bool("up", false, "apply all pending migrations")
	down := flag.Bool("down", false, "roll back all migrations")
	steps := flag.Int("steps", 0, "run N migration steps (positive=up, negative=down)")
	version := flag.Bool("version", false, "print the current migration version")
	force := flag.Int("force", -1, "force the recorded migration version")
	flag.Parse()

	actions := 0
	for _, set := range []bool{*up, *down, *steps != 0, *version, *force >= 0} {
		if set {
			actions++
		}
	}

	switch {
	case actions == 0:
		flag.Usage()
		return errors.New("no action specified, use one of -up, -down, -steps N, -version, -force V")
	case actions > 1:
		return errors.New("specify only one action at a time")
	}

	cfg, err := config.LoadConfigFromPath(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	repos, err := repository.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer repos.Close()

	migrator, err := migration.NewMigrator(repos.SQL, logger)
	if err != nil {
		return err
	}

	switch {
	case *up:
		err = migrator.Up()
	case *down:
		err = migrator.Down()
	case *steps != 0:
		err = migrator.Steps(*steps)
	case *force >= 0:
		err = migrator.Force(*force)
	}

	if err != nil {
		return err
	}

	v, dirty, err := migrator.Version()
	if err != nil {
		logger.Warn("could not determine migration version", slog.String("error", err.Error()))
		return nil
	}

	logger.Info("current migration version", slog.Uint64("version", uint64(v)), slog.Bool("dirty", dirty))
	return nil
}
