package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/holdings-api/internal/application/auth"
	"github.com/jhoicas/holdings-api/internal/application/report"
	"github.com/jhoicas/holdings-api/internal/application/usecase"
	"github.com/jhoicas/holdings-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/holdings-api/internal/infrastructure/pdf"
	"github.com/jhoicas/holdings-api/internal/infrastructure/postgres"
	"github.com/jhoicas/holdings-api/internal/infrastructure/remote"
	httpRouter "github.com/jhoicas/holdings-api/internal/interfaces/http"
	"github.com/jhoicas/holdings-api/pkg/config"
	"github.com/jhoicas/holdings-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("todo_backend", cfg.Todo.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)

	// El almacén de tareas puede vivir en la tabla kv_store local o en el
	// servicio key/value alojado; ambos comparten el formato de registro.
	var todoRepo repository.TodoRepository
	switch cfg.Todo.Backend {
	case "remote":
		todoRepo = remote.NewTodoClient(cfg.Todo.RemoteURL, cfg.Todo.RemoteAPIKey)
	default:
		todoRepo = postgres.NewTodoRepository(pool)
	}

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.Config{
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		CEORegistrationCode: cfg.Auth.CEORegistrationCode,
		DefaultCompanyID:    cfg.Auth.DefaultCompanyID,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	todoUC := usecase.NewTodoUseCase(todoRepo, userRepo, companyRepo, log)
	reportUC := report.NewReportUseCase(todoUC, infrapdf.NewMarotoReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Holdings API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		CompanyUC: companyUC,
		TodoUC:    todoUC,
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
