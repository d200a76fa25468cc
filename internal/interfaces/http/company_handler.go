package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/holdings-api/internal/application/dto"
	"github.com/jhoicas/holdings-api/internal/application/usecase"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
)

// CompanyHandler expone el directorio de empresas acotado a la visibilidad
// del usuario autenticado.
type CompanyHandler struct {
	uc    *usecase.CompanyUseCase
	users *usecase.UserUseCase
}

// NewCompanyHandler construye el handler de empresas.
func NewCompanyHandler(uc *usecase.CompanyUseCase, users *usecase.UserUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc, users: users}
}

// List godoc
// @Summary      Listar empresas visibles
// @Description  Todas para el CEO; la propia para usuarios de empresa; ninguna para la Secretary del CEO.
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CompanyListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	viewer, ok := currentUser(c, h.users)
	if !ok {
		return nil
	}
	out, err := h.uc.ListVisible(viewer)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una empresa
// @Description  Solo dentro de la visibilidad del usuario; fuera de ella responde 404.
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	viewer, ok := currentUser(c, h.users)
	if !ok {
		return nil
	}
	out, err := h.uc.GetVisibleByID(viewer, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "COMPANY_NOT_FOUND", Message: "empresa no encontrada"})
	}
	return c.JSON(out)
}

// currentUser resuelve la entidad del usuario autenticado desde el claim del
// token. El claim solo lleva el ID; rol y estado se leen de la DB para que
// una cuenta aprobada y luego eliminada no siga operando con un token viejo.
// Si devuelve ok=false la respuesta de error ya fue escrita y el handler
// debe retornar nil.
func currentUser(c *fiber.Ctx, users *usecase.UserUseCase) (*entity.User, bool) {
	id := GetUserID(c)
	if id == "" {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "sesión requerida"})
		return nil, false
	}
	user, err := users.GetEntity(id)
	if err != nil {
		_ = c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		return nil, false
	}
	if user == nil || !user.IsApproved() {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "cuenta no habilitada"})
		return nil, false
	}
	return user, true
}
