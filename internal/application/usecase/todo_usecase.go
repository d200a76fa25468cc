package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/holdings-api/internal/application/auth"
	"github.com/jhoicas/holdings-api/internal/application/dto"
	"github.com/jhoicas/holdings-api/internal/domain"
	"github.com/jhoicas/holdings-api/internal/domain/access"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
	"github.com/jhoicas/holdings-api/internal/domain/repository"
	"github.com/jhoicas/holdings-api/pkg/logger"
)

// TodoUseCase implementa el ciclo de vida de tareas con la política de
// consistencia documentada: la caché local es autoritativa durante la
// sesión, el store remoto es best-effort.
//
//   - Lecturas: se intenta refrescar desde el store; si falla se sirve la
//     caché (sembrada con el dataset de demostración si está vacía) y se
//     registra el error. La UI nunca se queda sin datos.
//   - Escrituras: la mutación se aplica primero en la caché y luego se
//     empuja al store. Un fallo remoto se registra pero no revierte el
//     estado local. Sin reintentos ni backoff: última escritura gana.
type TodoUseCase struct {
	todoRepo    repository.TodoRepository
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	log         *logger.Logger

	mu    sync.RWMutex
	cache map[string]*entity.Todo
}

// NewTodoUseCase construye el caso de uso de tareas.
func NewTodoUseCase(
	todoRepo repository.TodoRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	log *logger.Logger,
) *TodoUseCase {
	return &TodoUseCase{
		todoRepo:    todoRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		log:         log,
		cache:       make(map[string]*entity.Todo),
	}
}

// List devuelve las tareas visibles para requester, filtradas y separadas en
// pendientes y completadas. Todo el listado se juzga contra un único instante
// de referencia para que los flags de vencimiento sean consistentes.
func (uc *TodoUseCase) List(ctx context.Context, requester *entity.User, in dto.TodoFilterRequest) (*dto.TodoListResponse, error) {
	todos := uc.snapshot(ctx)
	ceo := uc.ceoRef()
	now := time.Now()

	base := access.TodoFilter{
		CompanyID: in.CompanyID,
		Priority:  parseFilterPriority(in.Priority),
		Now:       now,
	}
	if in.Mine && requester != nil {
		base.AssigneeID = requester.ID
		base.Assignee = requester.FullName()
	}

	// El filtro de vencidas solo aplica a pendientes: una tarea completada
	// ya no está vencida para el tablero.
	pendingFilter := base
	pendingFilter.OverdueOnly = in.Overdue

	out := &dto.TodoListResponse{
		Pending:   []dto.TodoResponse{},
		Completed: []dto.TodoResponse{},
	}
	for _, t := range access.Apply(requester, todos, ceo, base) {
		if t.Completed {
			if in.Completed == nil || *in.Completed {
				out.Completed = append(out.Completed, *toTodoResponse(t, now))
			}
			continue
		}
		if in.Completed != nil && *in.Completed {
			continue
		}
		if pendingFilter.Match(t) {
			out.Pending = append(out.Pending, *toTodoResponse(t, now))
		}
	}
	return out, nil
}

// Create crea una tarea en estado pendiente. El rol Secretary no crea tareas;
// empresa y asignado deben estar dentro del alcance de asignación del creador.
func (uc *TodoUseCase) Create(ctx context.Context, creator *entity.User, in dto.CreateTodoRequest) (*dto.TodoResponse, error) {
	if creator == nil {
		return nil, domain.ErrUnauthorized
	}
	if creator.Role == entity.RoleSecretary {
		return nil, domain.ErrForbidden
	}

	companies, err := uc.companyRepo.ListAll()
	if err != nil {
		return nil, err
	}
	companyName := entity.HoldingsName
	if in.CompanyID != "" {
		assignable := access.AssignableCompanies(creator, companies)
		found := false
		for _, c := range assignable {
			if c.ID == in.CompanyID {
				companyName = c.Name
				found = true
				break
			}
		}
		if !found {
			return nil, domain.ErrForbidden
		}
	} else if creator.Role != entity.RoleCEO && creator.Role != entity.RoleCEOSecretary {
		// Solo los roles de nivel holding crean tareas "Holdings".
		return nil, domain.ErrForbidden
	}

	assignee, err := uc.resolveAssignee(creator, in.AssignedToID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	todo := &entity.Todo{
		ID:           uuid.New().String(),
		Title:        in.Title,
		Description:  in.Description,
		Priority:     entity.ParsePriority(in.Priority),
		DueDate:      in.DueDate,
		CreatedAt:    now,
		AssignedByID: creator.ID,
		AssignedBy:   creator.FullName(),
		AssignedToID: assignee.ID,
		AssignedTo:   assignee.FullName(),
		CompanyID:    in.CompanyID,
		CompanyName:  companyName,
		Attachments:  toAttachments(in.Attachments),
		Completed:    false,
	}

	uc.store(ctx, todo)
	return toTodoResponse(todo, now), nil
}

// Complete marca una tarea como completada. Solo el asignado puede completar
// su propia tarea (ni siquiera el CEO puede completar la de otro por esta
// vía); la transición es terminal y estampa fecha y autor. Si el guard falla
// la tarea queda intacta.
func (uc *TodoUseCase) Complete(ctx context.Context, requester *entity.User, todoID string) (*dto.TodoResponse, error) {
	if requester == nil {
		return nil, domain.ErrUnauthorized
	}
	uc.refresh(ctx)

	uc.mu.Lock()
	todo, ok := uc.cache[todoID]
	if !ok {
		uc.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	if todo.Completed {
		uc.mu.Unlock()
		return nil, domain.ErrAlreadyCompleted
	}
	if !todo.IsAssignedTo(requester) {
		uc.mu.Unlock()
		return nil, domain.ErrNotAssignee
	}
	now := time.Now()
	todo.Complete(requester, now)
	snapshot := *todo
	uc.mu.Unlock()

	// Upsert del registro completo (no parche parcial) para no perder
	// adjuntos ni metadatos en el merge remoto.
	uc.push(ctx, &snapshot)
	return toTodoResponse(&snapshot, now), nil
}

// Scope devuelve empresas y candidatos a asignado para el formulario de
// creación de creator. Sin usuario: conjuntos vacíos.
func (uc *TodoUseCase) Scope(creator *entity.User) (*dto.AssignmentScopeResponse, error) {
	out := &dto.AssignmentScopeResponse{
		Companies: []dto.CompanyResponse{},
		Assignees: []dto.UserResponse{},
	}
	if creator == nil {
		return out, nil
	}
	companies, err := uc.companyRepo.ListAll()
	if err != nil {
		return nil, err
	}
	for _, c := range access.AssignableCompanies(creator, companies) {
		out.Companies = append(out.Companies, *ToCompanyResponse(c))
	}
	approved, err := uc.userRepo.ListApproved()
	if err != nil {
		return nil, err
	}
	for _, u := range access.AssignableUsers(creator, approved) {
		out.Assignees = append(out.Assignees, *auth.ToUserResponse(u))
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Sincronización caché local / store remoto
// ──────────────────────────────────────────────────────────────────────────────

// snapshot refresca la caché desde el store y devuelve su contenido.
func (uc *TodoUseCase) snapshot(ctx context.Context) []*entity.Todo {
	uc.refresh(ctx)
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]*entity.Todo, 0, len(uc.cache))
	for _, t := range uc.cache {
		copied := *t
		out = append(out, &copied)
	}
	sortTodos(out)
	return out
}

// refresh intenta traer el listado remoto. En fallo conserva la caché actual;
// si además la caché está vacía, la siembra con el dataset de demostración
// para que el tablero siga siendo usable sin red.
func (uc *TodoUseCase) refresh(ctx context.Context) {
	remote, err := uc.todoRepo.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("listado remoto de tareas falló, usando caché local")
		uc.mu.Lock()
		if len(uc.cache) == 0 {
			for _, t := range fallbackTodos() {
				uc.cache[t.ID] = t
			}
		}
		uc.mu.Unlock()
		return
	}
	uc.mu.Lock()
	for _, t := range remote {
		// La caché manda durante la sesión: una mutación local no
		// confirmada no se pisa con el estado remoto anterior.
		if local, ok := uc.cache[t.ID]; ok && local.Completed && !t.Completed {
			continue
		}
		uc.cache[t.ID] = t
	}
	uc.mu.Unlock()
}

// store aplica la mutación en caché y la empuja al store (best-effort).
func (uc *TodoUseCase) store(ctx context.Context, todo *entity.Todo) {
	uc.mu.Lock()
	copied := *todo
	uc.cache[todo.ID] = &copied
	uc.mu.Unlock()
	uc.push(ctx, todo)
}

// push escribe en el store remoto sin bloquear la mutación local: un fallo
// se registra y la sesión continúa con la caché como fuente de verdad.
func (uc *TodoUseCase) push(ctx context.Context, todo *entity.Todo) {
	if err := uc.todoRepo.Upsert(ctx, todo); err != nil {
		uc.log.Error().Err(err).Str("todo_id", todo.ID).Msg("escritura remota de tarea falló, se conserva el estado local")
	}
}

func (uc *TodoUseCase) ceoRef() access.CEORef {
	ceo, err := uc.userRepo.GetCEO()
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo resolver el CEO canónico")
		return access.CEORef{}
	}
	return access.CEORefFrom(ceo)
}

func (uc *TodoUseCase) resolveAssignee(creator *entity.User, assigneeID string) (*entity.User, error) {
	approved, err := uc.userRepo.ListApproved()
	if err != nil {
		return nil, err
	}
	for _, u := range access.AssignableUsers(creator, approved) {
		if u.ID == assigneeID {
			return u, nil
		}
	}
	return nil, domain.ErrForbidden
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeos
// ──────────────────────────────────────────────────────────────────────────────

func parseFilterPriority(s string) entity.Priority {
	if s == "" {
		return ""
	}
	return entity.ParsePriority(s)
}

func toAttachments(in []dto.AttachmentRequest) []entity.Attachment {
	out := make([]entity.Attachment, 0, len(in))
	for _, a := range in {
		out = append(out, entity.Attachment{
			ID:   uuid.New().String(),
			Name: a.Name,
			Type: a.Type,
			Size: a.Size,
			URL:  a.URL,
		})
	}
	return out
}

func toTodoResponse(t *entity.Todo, now time.Time) *dto.TodoResponse {
	atts := make([]dto.AttachmentResponse, 0, len(t.Attachments))
	for _, a := range t.Attachments {
		atts = append(atts, dto.AttachmentResponse{ID: a.ID, Name: a.Name, Type: a.Type, Size: a.Size, URL: a.URL})
	}
	companyName := t.CompanyName
	if companyName == "" && t.CompanyID == "" {
		companyName = entity.HoldingsName
	}
	return &dto.TodoResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Priority:     string(t.Priority),
		DueDate:      t.DueDate,
		CreatedAt:    t.CreatedAt,
		AssignedByID: t.AssignedByID,
		AssignedBy:   t.AssignedBy,
		AssignedToID: t.AssignedToID,
		AssignedTo:   t.AssignedTo,
		CompanyID:    t.CompanyID,
		CompanyName:  companyName,
		Attachments:  atts,
		Completed:    t.Completed,
		CompletedAt:  t.CompletedAt,
		CompletedBy:  t.CompletedBy,
		Overdue:      !t.Completed && t.IsOverdue(now),
	}
}
