package access

import (
	"time"

	"github.com/jhoicas/holdings-api/internal/domain/entity"
)

// TodoFilter es una conjunción de predicados independientes sobre una lista
// de tareas ya filtrada por visibilidad. Cada campo en cero es pass-through.
// Los predicados son conmutativos y sin efectos: aplicar {priority, overdue}
// en cualquier orden produce el mismo resultado.
type TodoFilter struct {
	CompanyID   string          // "" = sin filtro de empresa
	Priority    entity.Priority // "" = sin filtro de prioridad
	OverdueOnly bool            // solo tareas vencidas respecto a Now
	AssigneeID  string          // "" = sin filtro "solo yo"; el nombre queda de respaldo
	Assignee    string          // nombre completo, respaldo para registros sin ID
	Now         time.Time       // instante de referencia único para toda la pasada
}

// Match indica si la tarea satisface todos los predicados activos.
func (f TodoFilter) Match(t *entity.Todo) bool {
	if t == nil {
		return false
	}
	if f.CompanyID != "" && t.CompanyID != f.CompanyID {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.OverdueOnly && !t.IsOverdue(f.Now) {
		return false
	}
	if f.AssigneeID != "" || f.Assignee != "" {
		if !f.matchAssignee(t) {
			return false
		}
	}
	return true
}

// matchAssignee replica la semántica "solo yo": para tareas pendientes compara
// contra el asignado; para completadas también cuenta quien la completó.
func (f TodoFilter) matchAssignee(t *entity.Todo) bool {
	if matchRef(t.AssignedToID, t.AssignedTo, f.AssigneeID, f.Assignee) {
		return true
	}
	if t.Completed && matchRef(t.CompletedByID, t.CompletedBy, f.AssigneeID, f.Assignee) {
		return true
	}
	return false
}

func matchRef(refID, refName, id, name string) bool {
	if refID != "" && id != "" {
		return refID == id
	}
	return refName != "" && refName == name
}

// Apply filtra todos por visibilidad de user y luego por f, en ese orden.
// Ambos pasos preservan el orden relativo de entrada.
func Apply(user *entity.User, todos []*entity.Todo, ceo CEORef, f TodoFilter) []*entity.Todo {
	visible := VisibleTodos(user, todos, ceo)
	out := make([]*entity.Todo, 0, len(visible))
	for _, t := range visible {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
