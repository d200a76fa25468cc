package entity

import "time"

// Company representa una empresa del portafolio del holding. Es data de
// referencia: el núcleo no crea ni destruye empresas, solo las lista y las
// usa para aislar visibilidad de tareas y usuarios.
type Company struct {
	ID        string
	Name      string
	LogoURL   string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoldingsName es el nombre mostrado para tareas sin empresa (CompanyID vacío),
// dirigidas al CEO en lugar de a una empresa del portafolio.
const HoldingsName = "Holdings"
