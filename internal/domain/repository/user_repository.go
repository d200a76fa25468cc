package repository

import "github.com/jhoicas/holdings-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	ListByStatus(status string, limit, offset int) ([]*entity.User, error)
	ListApproved() ([]*entity.User, error)
	// GetCEO devuelve el CEO canónico (primer usuario con rol CEO), o nil.
	GetCEO() (*entity.User, error)
	Delete(id string) error
}
