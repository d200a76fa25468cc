package entity

import "time"

// Role es el conjunto cerrado de roles del sistema. Las reglas de visibilidad
// hacen switch exhaustivo sobre estos valores; cualquier cargo libre de una
// empresa del portafolio se normaliza a RoleUser.
type Role string

const (
	RoleCEO          Role = "CEO"
	RoleCEOSecretary Role = "CEO's Secretary"
	RoleManager      Role = "Manager"
	RoleSecretary    Role = "Secretary"
	RoleUser         Role = "User"
)

// ParseRole normaliza un rol en texto al enum cerrado. Títulos desconocidos
// (ej. "Developer", "CFO") se tratan como RoleUser.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleCEO, RoleCEOSecretary, RoleManager, RoleSecretary, RoleUser:
		return Role(s)
	default:
		return RoleUser
	}
}

// Estados del ciclo de vida de un usuario. Un usuario nace pending y solo un
// aprobador lo pasa a approved o rejected; approved nunca revierte solo.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Niveles de permiso administrativo.
const (
	PermissionAdmin   = "admin"
	PermissionManager = "manager"
	PermissionUser    = "user"
)

// User representa una cuenta del sistema. CompanyID vacío significa nivel
// holding (el CEO, su Secretary personal o la CEO's Secretary), no una
// empresa del portafolio.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	Status       string // pending, approved, rejected
	Permission   string // admin, manager, user
	CompanyID    string // vacío = nivel holding
	RegisteredAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName devuelve el nombre para mostrar ("Nombre Apellido").
// Las tareas lo desnormalizan con fines de presentación; la autorización
// usa el ID estable, no este string.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsApproved indica si el usuario puede autenticarse.
func (u *User) IsApproved() bool {
	return u.Status == StatusApproved
}

// IsHoldingLevel indica si el usuario no está ligado a ninguna empresa del portafolio.
func (u *User) IsHoldingLevel() bool {
	return u.CompanyID == ""
}
