package dto

import "time"

// CreateTodoRequest entrada para crear una tarea. El asignado se referencia
// por ID estable; el nombre se desnormaliza en el servidor.
type CreateTodoRequest struct {
	Title        string              `json:"title" validate:"required,min=1,max=200"`
	Description  string              `json:"description" validate:"required"`
	Priority     string              `json:"priority" validate:"omitempty,oneof=high medium low"`
	DueDate      time.Time           `json:"due_date" validate:"required"`
	CompanyID    string              `json:"company_id"` // vacío = tarea de nivel holding
	AssignedToID string              `json:"assigned_to_id" validate:"required"`
	Attachments  []AttachmentRequest `json:"attachments" validate:"omitempty,dive"`
}

// AttachmentRequest metadatos de un adjunto (el archivo vive fuera del sistema).
type AttachmentRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type"`
	Size int64  `json:"size" validate:"min=0"`
	URL  string `json:"url"`
}

// TodoFilterRequest filtros del listado; todos opcionales, se componen en AND.
type TodoFilterRequest struct {
	CompanyID string `query:"company_id"`
	Priority  string `query:"priority"`
	Overdue   bool   `query:"overdue"`
	Mine      bool   `query:"mine"`
	Completed *bool  `query:"completed"` // nil = ambas pestañas
}

// AttachmentResponse salida de un adjunto.
type AttachmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	URL  string `json:"url,omitempty"`
}

// TodoResponse salida de una tarea.
type TodoResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Priority     string               `json:"priority"`
	DueDate      time.Time            `json:"due_date"`
	CreatedAt    time.Time            `json:"created_at"`
	AssignedByID string               `json:"assigned_by_id,omitempty"`
	AssignedBy   string               `json:"assigned_by"`
	AssignedToID string               `json:"assigned_to_id,omitempty"`
	AssignedTo   string               `json:"assigned_to"`
	CompanyID    string               `json:"company_id,omitempty"` // vacío = Holdings
	CompanyName  string               `json:"company_name"`
	Attachments  []AttachmentResponse `json:"attachments"`
	Completed    bool                 `json:"completed"`
	CompletedAt  *time.Time           `json:"completed_at,omitempty"`
	CompletedBy  string               `json:"completed_by,omitempty"`
	Overdue      bool                 `json:"overdue"`
}

// TodoListResponse listado con la separación pendientes/completadas que
// consume el dashboard.
type TodoListResponse struct {
	Pending   []TodoResponse `json:"pending"`
	Completed []TodoResponse `json:"completed"`
}

// AssignmentScopeResponse empresas y usuarios a los que el creador puede
// dirigir una tarea nueva (alimenta los pickers del formulario).
type AssignmentScopeResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Assignees []UserResponse    `json:"assignees"`
}
