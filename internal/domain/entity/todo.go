package entity

import "time"

// Priority de una tarea.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ParsePriority normaliza una prioridad en texto. Valores desconocidos o
// vacíos se tratan como PriorityMedium (regla de defaulting del store).
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(s)
	default:
		return PriorityMedium
	}
}

// Attachment metadatos de un archivo adjunto a una tarea. El contenido del
// archivo vive fuera del sistema; aquí solo viaja la referencia.
type Attachment struct {
	ID   string
	Name string
	Type string // MIME type
	Size int64
	URL  string // opcional
}

// Todo representa una tarea asignada dentro del holding.
//
// La asignación lleva ID estable y nombre desnormalizado: AssignedToID es la
// identidad para autorización; AssignedTo solo se muestra. Registros antiguos
// del store pueden venir sin IDs, en cuyo caso la comparación cae al nombre.
// CompanyID vacío = tarea de nivel holding ("Holdings").
type Todo struct {
	ID           string
	Title        string
	Description  string
	Priority     Priority
	DueDate      time.Time
	CreatedAt    time.Time
	AssignedByID string
	AssignedBy   string // nombre para mostrar
	AssignedToID string
	AssignedTo   string // nombre para mostrar
	CompanyID    string // vacío = Holdings
	CompanyName  string
	Attachments  []Attachment

	Completed     bool
	CompletedAt   *time.Time // solo si Completed
	CompletedByID string
	CompletedBy   string
}

// IsOverdue indica si la tarea venció antes del instante de referencia.
// Toda una pasada de filtrado debe usar el mismo `now` para no producir
// flags de vencimiento inconsistentes dentro de un mismo listado.
func (t *Todo) IsOverdue(now time.Time) bool {
	return !t.DueDate.IsZero() && t.DueDate.Before(now)
}

// IsAssignedTo indica si la tarea está asignada al usuario dado.
// Compara por ID estable; si el registro no trae ID (dato legado del
// store key/value) compara por nombre completo.
func (t *Todo) IsAssignedTo(u *User) bool {
	if u == nil {
		return false
	}
	if t.AssignedToID != "" {
		return t.AssignedToID == u.ID
	}
	return t.AssignedTo == u.FullName()
}

// Complete marca la tarea como completada por el usuario dado, estampando
// fecha y autor. Es transición terminal: una tarea completada no cambia.
// El guard de autorización (solo el asignado completa) vive en el use case.
func (t *Todo) Complete(by *User, at time.Time) {
	t.Completed = true
	t.CompletedAt = &at
	t.CompletedByID = by.ID
	t.CompletedBy = by.FullName()
}
