package repository

import "github.com/jhoicas/holdings-api/internal/domain/entity"

// CompanyRepository define el puerto de lectura del directorio de empresas.
// Las empresas son data de referencia: el núcleo solo las lista y consulta;
// el alta vive en el seed, no en la API.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
	ListAll() ([]*entity.Company, error)
}
