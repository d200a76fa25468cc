package main

import (
	"github.com/jhoicas/holdings-api/internal/infrastructure/postgres"
	"github.com/jhoicas/holdings-api/pkg/config"
	"github.com/jhoicas/holdings-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().Str("db", cfg.DB.DBName).Msg("aplicando migraciones")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones fallaron")
	}

	log.Info().Msg("migraciones aplicadas")
}
