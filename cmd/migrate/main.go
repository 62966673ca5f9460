package main

import (
	"database/sql"
	"flag"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/tu-usuario/storefront-admin/pkg/config"
	"github.com/tu-usuario/storefront-admin/pkg/logger"
)

// Runner de migraciones con goose. Uso:
//
//	go run ./cmd/migrate [-dir ./migrations] [up|down|status|version ...]
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./migrations", "directorio con los archivos de migración")
	flag.Parse()

	db, err := sql.Open("pgx", cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión a PostgreSQL")
	}
	defer db.Close()

	goose.SetLogger(log)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("dialecto goose")
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("migración fallida")
	}
	log.Info().Str("command", command).Msg("migración aplicada")
}
