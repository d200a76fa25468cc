package usecase

import (
	"time"

	"github.com/jhoicas/holdings-api/internal/application/auth"
	"github.com/jhoicas/holdings-api/internal/application/dto"
	"github.com/jhoicas/holdings-api/internal/domain"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
	"github.com/jhoicas/holdings-api/internal/domain/repository"
)

// UserUseCase aplica el flujo de aprobación de registros y las consultas de
// usuarios. Aprobar y rechazar son acciones explícitas del aprobador; una
// cuenta aprobada nunca revierte sola.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetEntity obtiene la entidad usuario por ID (para resolver el usuario
// autenticado a partir del claim del token).
func (uc *UserUseCase) GetEntity(id string) (*entity.User, error) {
	return uc.repo.GetByID(id)
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return auth.ToUserResponse(user), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toUserList(list, limit, offset), nil
}

// ListPending lista los registros a la espera de aprobación.
func (uc *UserUseCase) ListPending(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.ListByStatus(entity.StatusPending, limit, offset)
	if err != nil {
		return nil, err
	}
	return toUserList(list, limit, offset), nil
}

// Approve pasa un usuario a approved. Es idempotente sobre cuentas ya
// aprobadas; devuelve ErrUserNotFound si el ID no existe.
func (uc *UserUseCase) Approve(id string) (*dto.UserResponse, error) {
	return uc.setStatus(id, entity.StatusApproved)
}

// Reject pasa un usuario a rejected. Una cuenta ya aprobada no se puede
// rechazar por esta vía (approved nunca revierte): devuelve ErrConflict.
func (uc *UserUseCase) Reject(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Status == entity.StatusApproved {
		return nil, domain.ErrConflict
	}
	return uc.applyStatus(user, entity.StatusRejected)
}

// Delete elimina un usuario de forma explícita e irreversible.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *UserUseCase) setStatus(id, status string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Status == status {
		return auth.ToUserResponse(user), nil
	}
	return uc.applyStatus(user, status)
}

func (uc *UserUseCase) applyStatus(user *entity.User, status string) (*dto.UserResponse, error) {
	user.Status = status
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

func toUserList(list []*entity.User, limit, offset int) *dto.UserListResponse {
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}
