package main

import (
	"fmt"
	"log"
	"os"

	"quiz-zone/internal/config"
	"quiz-zone/internal/database"
	"quiz-zone/internal/logger"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	flags := pflag.NewFlagSet("migrate", pflag.ExitOnError)
	direction := flags.StringP("direction", "d", string(database.MigrateUp), "up or down")
	steps := flags.IntP("steps", "n", 0, "number of migrations to roll back with --direction=down (0 = all)")
	_ = flags.Parse(os.Args[1:])

	dir := database.MigrationDirection(*direction)
	if dir != database.MigrateUp && dir != database.MigrateDown {
		fmt.Fprintf(os.Stderr, "invalid --direction %q\n", *direction)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	l := logger.Get()
	defer logger.Sync()

	// DB connection
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN(), database.Options{MaxOpenConns: 1})
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db.DB, dir, *steps, l); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
}
