package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/holdings-api/internal/application/auth"
	"github.com/jhoicas/holdings-api/internal/application/report"
	"github.com/jhoicas/holdings-api/internal/application/usecase"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	CompanyUC *usecase.CompanyUseCase
	TodoUC    *usecase.TodoUseCase
	ReportUC  *report.ReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/register-ceo", authHandler.RegisterCEO)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies (protegido, acotado a visibilidad)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.UserUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)

	// Todos (protegido, acotado a visibilidad)
	todos := protected.Group("/todos")
	todoHandler := NewTodoHandler(deps.TodoUC, deps.ReportUC, deps.UserUC)
	todos.Get("/", todoHandler.List)
	todos.Get("/scope", todoHandler.Scope)
	todos.Get("/report", todoHandler.Report)
	todos.Post("/", todoHandler.Create)
	todos.Post("/:id/complete", todoHandler.Complete)

	// Users (protegido, solo CEO: aprobación de registros)
	users := protected.Group("/users", RequireRole(entity.RoleCEO))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/pending", userHandler.ListPending)
	users.Post("/:id/approve", userHandler.Approve)
	users.Post("/:id/reject", userHandler.Reject)
	users.Delete("/:id", userHandler.Delete)
}
