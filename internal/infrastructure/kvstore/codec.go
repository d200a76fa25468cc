// Package kvstore define el formato de registro del almacén de tareas
// key/value: {key: "todo_<id>", value: <tarea JSON>}. Tanto el adaptador de
// PostgreSQL como el cliente del servicio remoto comparten este codec, de
// modo que las reglas de defaulting viven en un solo lugar.
package kvstore

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jhoicas/holdings-api/internal/domain/entity"
)

// KeyPrefix es el namespace de tareas dentro de la tabla key/value.
// Entradas con otras claves se ignoran.
const KeyPrefix = "todo_"

// Record es una entrada cruda de la tabla key/value.
type Record struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// IsTodo indica si el registro pertenece al namespace de tareas.
func (r Record) IsTodo() bool {
	return strings.HasPrefix(r.Key, KeyPrefix)
}

// Key devuelve la clave del registro para la tarea dada.
func Key(todoID string) string {
	return KeyPrefix + todoID
}

// todoValue es la forma en el wire de una tarea. Los campos *_id pueden
// faltar en registros legados; los campos opcionales se omiten si están vacíos.
type todoValue struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Priority      string            `json:"priority,omitempty"`
	DueDate       *time.Time        `json:"due_date,omitempty"`
	CreatedAt     time.Time         `json:"created_at,omitempty"`
	AssignedByID  string            `json:"assigned_by_id,omitempty"`
	AssignedBy    string            `json:"assigned_by"`
	AssignedToID  string            `json:"assigned_to_id,omitempty"`
	AssignedTo    string            `json:"assigned_to"`
	CompanyID     string            `json:"company_id,omitempty"`
	CompanyName   string            `json:"company_name,omitempty"`
	Attachments   []attachmentValue `json:"attachments,omitempty"`
	Completed     *bool             `json:"completed,omitempty"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
	CompletedByID string            `json:"completed_by_id,omitempty"`
	CompletedBy   string            `json:"completed_by,omitempty"`
}

type attachmentValue struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Size int64  `json:"size,omitempty"`
	URL  string `json:"url,omitempty"`
}

// DecodeTodo interpreta el value de un registro como tarea, con defaulting
// explícito: priority ausente → medium, arrays ausentes → vacíos, completed
// ausente → false. No falla por campos faltantes; sí por JSON malformado.
func DecodeTodo(value json.RawMessage) (*entity.Todo, error) {
	var v todoValue
	if err := json.Unmarshal(value, &v); err != nil {
		return nil, err
	}
	todo := &entity.Todo{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		Priority:     entity.ParsePriority(v.Priority),
		CreatedAt:    v.CreatedAt,
		AssignedByID: v.AssignedByID,
		AssignedBy:   v.AssignedBy,
		AssignedToID: v.AssignedToID,
		AssignedTo:   v.AssignedTo,
		CompanyID:    v.CompanyID,
		CompanyName:  v.CompanyName,
		Attachments:  make([]entity.Attachment, 0, len(v.Attachments)),
	}
	if v.DueDate != nil {
		todo.DueDate = *v.DueDate
	}
	if todo.CompanyName == "" && todo.CompanyID == "" {
		todo.CompanyName = entity.HoldingsName
	}
	for _, a := range v.Attachments {
		todo.Attachments = append(todo.Attachments, entity.Attachment{
			ID: a.ID, Name: a.Name, Type: a.Type, Size: a.Size, URL: a.URL,
		})
	}
	if v.Completed != nil && *v.Completed {
		todo.Completed = true
		todo.CompletedAt = v.CompletedAt
		todo.CompletedByID = v.CompletedByID
		todo.CompletedBy = v.CompletedBy
	}
	return todo, nil
}

// EncodeTodo serializa la tarea completa como value de registro. Siempre es
// el registro entero (merge-duplicates por clave): un upsert parcial podría
// perder adjuntos o metadatos en el store.
func EncodeTodo(todo *entity.Todo) (Record, error) {
	v := todoValue{
		ID:           todo.ID,
		Title:        todo.Title,
		Description:  todo.Description,
		Priority:     string(todo.Priority),
		CreatedAt:    todo.CreatedAt,
		AssignedByID: todo.AssignedByID,
		AssignedBy:   todo.AssignedBy,
		AssignedToID: todo.AssignedToID,
		AssignedTo:   todo.AssignedTo,
		CompanyID:    todo.CompanyID,
		CompanyName:  todo.CompanyName,
	}
	for _, a := range todo.Attachments {
		v.Attachments = append(v.Attachments, attachmentValue{
			ID: a.ID, Name: a.Name, Type: a.Type, Size: a.Size, URL: a.URL,
		})
	}
	if !todo.DueDate.IsZero() {
		due := todo.DueDate
		v.DueDate = &due
	}
	completed := todo.Completed
	v.Completed = &completed
	if todo.Completed {
		v.CompletedAt = todo.CompletedAt
		v.CompletedByID = todo.CompletedByID
		v.CompletedBy = todo.CompletedBy
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return Record{}, err
	}
	return Record{Key: Key(todo.ID), Value: raw}, nil
}
