package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/holdings-api/internal/application/dto"
	"github.com/jhoicas/holdings-api/internal/application/report"
	"github.com/jhoicas/holdings-api/internal/application/usecase"
	"github.com/jhoicas/holdings-api/internal/domain"
)

// TodoHandler expone el tablero de tareas: listado filtrado, alcance de
// asignación, creación, completado y reporte PDF.
type TodoHandler struct {
	uc      *usecase.TodoUseCase
	reports *report.ReportUseCase
	users   *usecase.UserUseCase
}

// NewTodoHandler construye el handler de tareas.
func NewTodoHandler(uc *usecase.TodoUseCase, reports *report.ReportUseCase, users *usecase.UserUseCase) *TodoHandler {
	return &TodoHandler{uc: uc, reports: reports, users: users}
}

// List godoc
// @Summary      Listar tareas visibles
// @Description  Devuelve pendientes y completadas según la visibilidad del usuario, con filtros en AND.
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        company_id  query  string  false  "filtrar por empresa"
// @Param        priority    query  string  false  "high, medium o low"
// @Param        overdue     query  bool    false  "solo vencidas (aplica a pendientes)"
// @Param        mine        query  bool    false  "solo asignadas a mí"
// @Param        completed   query  bool    false  "true solo completadas, false solo pendientes"
// @Success      200  {object}  dto.TodoListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/todos [get]
func (h *TodoHandler) List(c *fiber.Ctx) error {
	requester, ok := currentUser(c, h.users)
	if !ok {
		return nil
	}
	var in dto.TodoFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.uc.List(c.Context(), requester, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Scope godoc
// @Summary      Alcance de asignación
// @Description  Empresas y usuarios a los que el solicitante puede dirigir una tarea nueva.
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AssignmentScopeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/todos/scope [get]
func (h *TodoHandler) Scope(c *fiber.Ctx) error {
	requester, ok := currentUser(c, h.users)
	if !ok {
		return nil
	}
	out, err := h.uc.Scope(requester)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear tarea
// @Description  El rol Secretary no crea tareas; empresa y asignado deben estar en el alcance del creador.
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTodoRequest  true  "title, description, due_date, assigned_to_id, company_id opcional"
// @Success      201  {object}  dto.TodoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/todos [post]
func (h *TodoHandler) Create(c *fiber.Ctx) error {
	creator, ok := currentUser(c, h.users)
	if !ok {
		return nil
	}
	var in dto.CreateTodoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.Description == "" || in.AssignedToID == "" || in.DueDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title, description, due_date y assigned_to_id son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), creator, in)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "empresa o asignado fuera de tu alcance"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Complete godoc
// @Summary      Completar tarea
// @Description  Solo el asignado puede completar su propia tarea; la transición es terminal.
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la tarea"
// @Success      200  {object}  dto.TodoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/todos/{id}/complete [post]
func (h *TodoHandler) Complete(c *fiber.Ctx) error {
	requester, ok := currentUser(c, h.users)
	if !ok {
		return nil
	}
	out, err := h.uc.Complete(c.Context(), requester, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "TODO_NOT_FOUND", Message: "tarea no encontrada"})
		}
		if errors.Is(err, domain.ErrAlreadyCompleted) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_COMPLETED", Message: "la tarea ya está completada"})
		}
		if errors.Is(err, domain.ErrNotAssignee) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NOT_ASSIGNEE", Message: "solo el asignado puede completar la tarea"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Descargar reporte PDF de tareas
// @Description  Genera el PDF con las mismas tareas y filtros que el listado.
// @Tags         todos
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        company_id  query  string  false  "filtrar por empresa"
// @Param        priority    query  string  false  "high, medium o low"
// @Param        overdue     query  bool    false  "solo vencidas"
// @Param        mine        query  bool    false  "solo asignadas a mí"
// @Success      200  {file}  binary
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/todos/report [get]
func (h *TodoHandler) Report(c *fiber.Ctx) error {
	requester, ok := currentUser(c, h.users)
	if !ok {
		return nil
	}
	var in dto.TodoFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	pdfBytes, filename, err := h.reports.DownloadTaskReport(c.Context(), requester, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
