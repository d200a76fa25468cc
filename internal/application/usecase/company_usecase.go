package usecase

import (
	"github.com/jhoicas/holdings-api/internal/application/dto"
	"github.com/jhoicas/holdings-api/internal/domain/access"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
	"github.com/jhoicas/holdings-api/internal/domain/repository"
)

// CompanyUseCase expone el directorio de empresas del portafolio, acotado a
// la visibilidad del usuario que consulta. El alta de empresas vive en el
// seed; la API solo lee.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// ListVisible lista las empresas que viewer puede recorrer: todas para el
// CEO, la propia para usuarios de empresa, ninguna para la Secretary.
// La denegación es silenciosa: lista vacía, no error.
func (uc *CompanyUseCase) ListVisible(viewer *entity.User) (*dto.CompanyListResponse, error) {
	all, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	visible := access.VisibleCompanies(viewer, all)
	items := make([]dto.CompanyResponse, 0, len(visible))
	for _, c := range visible {
		items = append(items, *ToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Total: len(items)},
	}, nil
}

// GetVisibleByID obtiene una empresa por ID solo si viewer puede verla;
// fuera de su visibilidad responde como inexistente.
func (uc *CompanyUseCase) GetVisibleByID(viewer *entity.User, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	for _, c := range access.VisibleCompanies(viewer, []*entity.Company{company}) {
		if c.ID == id {
			return ToCompanyResponse(c), nil
		}
	}
	return nil, nil
}

// ToCompanyResponse mapea la entidad al DTO de salida.
func ToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		LogoURL:   c.LogoURL,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
