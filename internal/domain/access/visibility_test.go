package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/holdings-api/internal/domain/access"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func ceoUser() *entity.User {
	return &entity.User{ID: "u-ceo", FirstName: "John", LastName: "Smith", Role: entity.RoleCEO, Status: entity.StatusApproved}
}

func secretaryUser() *entity.User {
	return &entity.User{ID: "u-sec", FirstName: "Lisa", LastName: "Martinez", Role: entity.RoleSecretary, Status: entity.StatusApproved, CompanyID: "2"}
}

func managerUser(companyID string) *entity.User {
	return &entity.User{ID: "u-mgr-" + companyID, FirstName: "Mike", LastName: "Chen", Role: entity.RoleManager, Status: entity.StatusApproved, CompanyID: companyID}
}

func sampleTodos() []*entity.Todo {
	return []*entity.Todo{
		{ID: "t1", Title: "Reporte financiero Q4", CompanyID: "2", AssignedByID: "u-sec2", AssignedBy: "Sarah Johnson", AssignedToID: "u-cfo", AssignedTo: "Michael Roberts"},
		{ID: "t2", Title: "Protocolos de seguridad", CompanyID: "1", AssignedByID: "u-mgr-1", AssignedBy: "Mike Chen", AssignedToID: "u-dev", AssignedTo: "Alex Thompson"},
		{ID: "t3", Title: "Preparar junta directiva", CompanyID: "", AssignedByID: "u-analyst", AssignedBy: "Robert Thompson", AssignedToID: "u-ceo", AssignedTo: "John Smith"},
		{ID: "t4", Title: "Revisión de alianzas", CompanyID: "2", AssignedByID: "u-ceo", AssignedBy: "John Smith", AssignedToID: "u-cfo", AssignedTo: "Michael Roberts"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CanView
// ──────────────────────────────────────────────────────────────────────────────

// El CEO ve todas las tareas, sin importar empresa ni nivel holding.
func TestCanView_CEOVeTodo(t *testing.T) {
	ceo := ceoUser()
	ref := access.CEORefFrom(ceo)
	for _, todo := range sampleTodos() {
		assert.True(t, access.CanView(ceo, todo, ref),
			"el CEO debe ver la tarea %s", todo.ID)
	}
}

// La Secretary solo ve tareas asignadas al CEO o creadas por él,
// nunca las de su propia empresa.
func TestCanView_SecretaryScopeadaAlCEO(t *testing.T) {
	sec := secretaryUser()
	ref := access.CEORefFrom(ceoUser())
	todos := sampleTodos()

	assert.False(t, access.CanView(sec, todos[0], ref), "t1 no involucra al CEO")
	assert.False(t, access.CanView(sec, todos[1], ref), "t2 no involucra al CEO")
	assert.True(t, access.CanView(sec, todos[2], ref), "t3 está asignada al CEO")
	assert.True(t, access.CanView(sec, todos[3], ref), "t4 fue creada por el CEO")
}

// La CEO's Secretary no hereda la regla de la Secretary: su visibilidad es
// el aislamiento por empresa. Sin empresa (nivel holding) no ve tareas,
// ni siquiera las asignadas al CEO; su acceso total al portafolio existe
// solo en el alcance de asignación (ver scope_test).
func TestCanView_CEOSecretaryAislamientoPorEmpresa(t *testing.T) {
	ref := access.CEORefFrom(ceoUser())

	holding := &entity.User{ID: "u-csec", FirstName: "Emily", LastName: "Carter", Role: entity.RoleCEOSecretary, Status: entity.StatusApproved}
	for _, todo := range sampleTodos() {
		assert.False(t, access.CanView(holding, todo, ref),
			"a nivel holding la CEO's Secretary no debe ver la tarea %s", todo.ID)
	}

	conEmpresa := &entity.User{ID: "u-csec-2", FirstName: "Emily", LastName: "Carter", Role: entity.RoleCEOSecretary, Status: entity.StatusApproved, CompanyID: "2"}
	for _, todo := range sampleTodos() {
		assert.Equal(t, todo.CompanyID == "2", access.CanView(conEmpresa, todo, ref),
			"con empresa rige el aislamiento en la tarea %s", todo.ID)
	}
}

// Para la Secretary, CanView == (assignedTo==CEO || assignedBy==CEO).
func TestCanView_SecretaryEquivalencia(t *testing.T) {
	sec := secretaryUser()
	ceo := ceoUser()
	ref := access.CEORefFrom(ceo)
	for _, todo := range sampleTodos() {
		expected := todo.AssignedToID == ceo.ID || todo.AssignedByID == ceo.ID
		assert.Equal(t, expected, access.CanView(sec, todo, ref),
			"equivalencia rota en la tarea %s", todo.ID)
	}
}

// Aislamiento estricto por empresa: un usuario con CompanyID=c ve exactamente
// las tareas con esa empresa (ni Holdings ni otras empresas).
func TestCanView_AislamientoPorEmpresa(t *testing.T) {
	mgr := managerUser("1")
	ref := access.CEORefFrom(ceoUser())
	for _, todo := range sampleTodos() {
		assert.Equal(t, todo.CompanyID == "1", access.CanView(mgr, todo, ref),
			"aislamiento roto en la tarea %s", todo.ID)
	}
}

// Usuario sin empresa y sin rol elevado: no ve ninguna tarea.
func TestCanView_SinEmpresaSinRolElevado_NoVeNada(t *testing.T) {
	u := &entity.User{ID: "u-x", FirstName: "Jane", LastName: "Doe", Role: entity.RoleUser, Status: entity.StatusApproved}
	ref := access.CEORefFrom(ceoUser())
	visible := access.VisibleTodos(u, sampleTodos(), ref)
	assert.Empty(t, visible, "un usuario sin empresa ni rol elevado no debe ver tareas")
}

// Sin usuario autenticado: denegado siempre.
func TestCanView_SinUsuario_Denegado(t *testing.T) {
	ref := access.CEORefFrom(ceoUser())
	for _, todo := range sampleTodos() {
		assert.False(t, access.CanView(nil, todo, ref))
	}
}

// El CEO ve tanto {companyId:"1"} como {companyId:null};
// un Manager de la empresa 1 solo ve la primera.
func TestCanView_EscenarioCEOvsManager(t *testing.T) {
	todos := []*entity.Todo{
		{ID: "a", CompanyID: "1"},
		{ID: "b", CompanyID: ""},
	}
	ref := access.CEORefFrom(ceoUser())

	visiblesCEO := access.VisibleTodos(ceoUser(), todos, ref)
	require.Len(t, visiblesCEO, 2, "el CEO debe ver ambas tareas")

	visiblesMgr := access.VisibleTodos(managerUser("1"), todos, ref)
	require.Len(t, visiblesMgr, 1, "el manager solo debe ver la de su empresa")
	assert.Equal(t, "a", visiblesMgr[0].ID)
}

// Registros legados sin IDs: la Secretary debe seguir viendo tareas del CEO
// comparando por nombre completo.
func TestCanView_RegistroLegadoSinIDs_ComparaPorNombre(t *testing.T) {
	sec := secretaryUser()
	ref := access.CEORefFrom(ceoUser())
	legacy := &entity.Todo{ID: "t-old", CompanyID: "3", AssignedTo: "John Smith"}
	assert.True(t, access.CanView(sec, legacy, ref),
		"registro sin IDs debe resolverse por nombre del CEO")
}

// Una tarea completada sigue siendo visible para su asignado original.
func TestCanView_CompletadaSigueVisible(t *testing.T) {
	mgr := managerUser("1")
	ref := access.CEORefFrom(ceoUser())
	todo := &entity.Todo{ID: "t-done", CompanyID: "1", AssignedToID: mgr.ID, AssignedTo: mgr.FullName()}
	todo.Complete(mgr, todo.DueDate)
	assert.True(t, access.CanView(mgr, todo, ref),
		"completar una tarea no debe sacarla de la visibilidad del asignado")
}

// ──────────────────────────────────────────────────────────────────────────────
// VisibleCompanies
// ──────────────────────────────────────────────────────────────────────────────

func sampleCompanies() []*entity.Company {
	return []*entity.Company{
		{ID: "1", Name: "TechVision Inc"},
		{ID: "2", Name: "Global Finance Corp"},
		{ID: "3", Name: "Retail Solutions Ltd"},
		{ID: "4", Name: "Manufacturing Pro"},
	}
}

func TestVisibleCompanies_PorRol(t *testing.T) {
	companies := sampleCompanies()

	assert.Len(t, access.VisibleCompanies(ceoUser(), companies), 4,
		"el CEO ve todo el portafolio")
	assert.Empty(t, access.VisibleCompanies(secretaryUser(), companies),
		"la Secretary no gestiona empresas")

	mine := access.VisibleCompanies(managerUser("3"), companies)
	require.Len(t, mine, 1)
	assert.Equal(t, "3", mine[0].ID)

	assert.Empty(t, access.VisibleCompanies(nil, companies))
	holdingUser := &entity.User{ID: "u-h", Role: entity.RoleUser}
	assert.Empty(t, access.VisibleCompanies(holdingUser, companies),
		"usuario sin empresa ni rol elevado no ve empresas")
}
