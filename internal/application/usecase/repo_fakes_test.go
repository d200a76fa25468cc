package usecase_test

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/holdings-api/internal/domain"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
	"github.com/jhoicas/holdings-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(seed ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range seed {
		copied := *u
		r.users[u.ID] = &copied
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	return r.sorted(func(*entity.User) bool { return true }), nil
}

func (r *fakeUserRepo) ListByStatus(status string, limit, offset int) ([]*entity.User, error) {
	return r.sorted(func(u *entity.User) bool { return u.Status == status }), nil
}

func (r *fakeUserRepo) ListApproved() ([]*entity.User, error) {
	return r.sorted(func(u *entity.User) bool { return u.IsApproved() }), nil
}

func (r *fakeUserRepo) GetCEO() (*entity.User, error) {
	for _, u := range r.sorted(func(u *entity.User) bool { return u.Role == entity.RoleCEO && u.IsApproved() }) {
		return u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) sorted(keep func(*entity.User) bool) []*entity.User {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		if keep(u) {
			copied := *u
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeCompanyRepo struct {
	companies []*entity.Company
}

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: companies}
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.companies = append(r.companies, c)
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	return r.companies, nil
}

func (r *fakeCompanyRepo) ListAll() ([]*entity.Company, error) {
	return r.companies, nil
}

// fakeTodoRepo simula el almacén de tareas con fallos inyectables para
// ejercitar la política de consistencia local-primero.
type fakeTodoRepo struct {
	records  map[string]*entity.Todo
	failList bool
	failUp   bool
	upserts  int
}

func newFakeTodoRepo(seed ...*entity.Todo) *fakeTodoRepo {
	r := &fakeTodoRepo{records: make(map[string]*entity.Todo)}
	for _, t := range seed {
		copied := *t
		r.records[t.ID] = &copied
	}
	return r
}

func (r *fakeTodoRepo) List(ctx context.Context) ([]*entity.Todo, error) {
	if r.failList {
		return nil, errors.New("servicio de tareas no disponible")
	}
	out := make([]*entity.Todo, 0, len(r.records))
	for _, t := range r.records {
		copied := *t
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTodoRepo) Upsert(ctx context.Context, todo *entity.Todo) error {
	r.upserts++
	if r.failUp {
		return errors.New("escritura remota falló")
	}
	copied := *todo
	r.records[todo.ID] = &copied
	return nil
}
