package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"weather-dashboard/config"
	"weather-dashboard/internal/database"
	"weather-dashboard/pkg/logger"
)

func main() {
	command := flag.String("command", "up", "Migration command: up, down, or version")
	flag.Parse()

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load configuration:", err)
		os.Exit(1)
	}

	l := logger.NewZapLoggerWithOptions(cnf.App.Name+"-migrate", logger.Options{
		AppEnv: cnf.App.Env,
		Level:  cnf.Log.Level,
	})
	defer l.Stop()

	db, err := database.Connect(context.Background(), cnf.Storage)
	if err != nil {
		l.Fatal("failed to connect to database", map[string]any{"err": err})
	}

	m, err := database.NewMigrator(db, cnf.Storage.Driver)
	if err != nil {
		l.Fatal("failed to create migration instance", map[string]any{"err": err})
	}
	defer m.Close()

	switch *command {
	case "up":
		l.Info("running migrations up", map[string]any{"driver": cnf.Storage.Driver})
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			l.Fatal("migration up failed", map[string]any{"err": err})
		}
	case "down":
		l.Info("running migrations down", map[string]any{"driver": cnf.Storage.Driver})
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			l.Fatal("migration down failed", map[string]any{"err": err})
		}
	case "version":
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			l.Fatal("failed to get version", map[string]any{"err": err})
		}
		l.Info("migration version", map[string]any{"version": v, "dirty": dirty})
	default:
		l.Fatal("unknown command", map[string]any{"command": *command})
	}

	l.Info("migration command completed successfully")
}
