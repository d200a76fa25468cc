package access_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/holdings-api/internal/domain/access"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
)

var filterNow = time.Date(2025, 9, 18, 0, 0, 0, 0, time.UTC)

func filterFixtures() []*entity.Todo {
	day := func(d int) time.Time { return time.Date(2025, 9, d, 0, 0, 0, 0, time.UTC) }
	return []*entity.Todo{
		{ID: "f1", CompanyID: "1", Priority: entity.PriorityHigh, DueDate: day(16), AssignedToID: "u-dev", AssignedTo: "Alex Thompson"},
		{ID: "f2", CompanyID: "1", Priority: entity.PriorityLow, DueDate: day(30), AssignedToID: "u-qa", AssignedTo: "Amanda Lee"},
		{ID: "f3", CompanyID: "2", Priority: entity.PriorityHigh, DueDate: day(20), AssignedToID: "u-cfo", AssignedTo: "Michael Roberts"},
		{ID: "f4", CompanyID: "2", Priority: entity.PriorityMedium, DueDate: day(14), AssignedToID: "u-dev", AssignedTo: "Alex Thompson"},
	}
}

func idsOf(todos []*entity.Todo) []string {
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}
	return out
}

// Cada predicado en cero es pass-through: el filtro vacío no descarta nada.
func TestTodoFilter_VacioEsPassThrough(t *testing.T) {
	f := access.TodoFilter{Now: filterNow}
	for _, todo := range filterFixtures() {
		assert.True(t, f.Match(todo), "el filtro vacío debe aceptar %s", todo.ID)
	}
}

// Conjunción: una tarea debe satisfacer TODOS los predicados activos.
func TestTodoFilter_Conjuncion(t *testing.T) {
	f := access.TodoFilter{
		CompanyID: "1",
		Priority:  entity.PriorityHigh,
		Now:       filterNow,
	}
	var matched []string
	for _, todo := range filterFixtures() {
		if f.Match(todo) {
			matched = append(matched, todo.ID)
		}
	}
	assert.Equal(t, []string{"f1"}, matched,
		"solo f1 es de la empresa 1 Y de prioridad alta")
}

// Conmutatividad: {priority=high, overdue=true} produce el mismo conjunto
// que {overdue=true, priority=high}; los predicados no dependen del orden.
func TestTodoFilter_Conmutatividad(t *testing.T) {
	todos := filterFixtures()

	ab := access.TodoFilter{Priority: entity.PriorityHigh, OverdueOnly: true, Now: filterNow}
	// El mismo filtro construido "en otro orden" textual; Match evalúa una
	// conjunción pura, así que el resultado debe ser idéntico.
	ba := access.TodoFilter{OverdueOnly: true, Priority: entity.PriorityHigh, Now: filterNow}

	var first, second []string
	for _, todo := range todos {
		if ab.Match(todo) {
			first = append(first, todo.ID)
		}
		if ba.Match(todo) {
			second = append(second, todo.ID)
		}
	}
	assert.Equal(t, first, second, "los filtros deben conmutar")
	assert.Equal(t, []string{"f1"}, first, "solo f1 es alta Y vencida al 18 de septiembre")
}

// Vencimiento contra un único instante de referencia para toda la pasada.
func TestTodoFilter_OverdueUsaUnSoloNow(t *testing.T) {
	f := access.TodoFilter{OverdueOnly: true, Now: filterNow}
	var matched []string
	for _, todo := range filterFixtures() {
		if f.Match(todo) {
			matched = append(matched, todo.ID)
		}
	}
	assert.Equal(t, []string{"f1", "f4"}, matched,
		"vencidas al 2025-09-18: f1 (16) y f4 (14)")
}

// "Solo yo": compara por ID estable del asignado.
func TestTodoFilter_SoloYo(t *testing.T) {
	f := access.TodoFilter{AssigneeID: "u-dev", Assignee: "Alex Thompson", Now: filterNow}
	var matched []string
	for _, todo := range filterFixtures() {
		if f.Match(todo) {
			matched = append(matched, todo.ID)
		}
	}
	assert.Equal(t, []string{"f1", "f4"}, matched)
}

// Para tareas completadas, "solo yo" también acepta a quien la completó.
func TestTodoFilter_SoloYoIncluyeCompletadasPorMi(t *testing.T) {
	qa := &entity.User{ID: "u-qa", FirstName: "Amanda", LastName: "Lee"}
	todo := &entity.Todo{ID: "fc", CompanyID: "1", Priority: entity.PriorityLow,
		AssignedToID: "u-dev", AssignedTo: "Alex Thompson"}
	todo.Complete(qa, filterNow)

	f := access.TodoFilter{AssigneeID: "u-qa", Assignee: qa.FullName(), Now: filterNow}
	assert.True(t, f.Match(todo),
		"una tarea completada por mí debe pasar el filtro 'solo yo'")
}

// Apply encadena visibilidad y filtros: un manager de la empresa 2 con filtro
// de prioridad alta solo recibe las tareas altas de su empresa.
func TestApply_VisibilidadMasFiltros(t *testing.T) {
	mgr := &entity.User{ID: "u-mgr-2", FirstName: "M", LastName: "R", Role: entity.RoleManager, CompanyID: "2"}
	ref := access.CEORef{ID: "u-ceo", FullName: "John Smith"}

	out := access.Apply(mgr, filterFixtures(), ref, access.TodoFilter{
		Priority: entity.PriorityHigh,
		Now:      filterNow,
	})
	require.Equal(t, []string{"f3"}, idsOf(out))
}
