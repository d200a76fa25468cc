package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/holdings-api/internal/application/auth"
	"github.com/jhoicas/holdings-api/internal/application/dto"
	"github.com/jhoicas/holdings-api/internal/domain"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User

	// failGetByEmail simula un fallo transitorio de la DB en la
	// verificación de unicidad del email.
	failGetByEmail error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
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
	if r.failGetByEmail != nil {
		return nil, r.failGetByEmail
	}
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) ListByStatus(status string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Status == status {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListApproved() ([]*entity.User, error) {
	return r.ListByStatus(entity.StatusApproved, 0, 0)
}

func (r *fakeUserRepo) GetCEO() (*entity.User, error) {
	for _, u := range r.users {
		if u.Role == entity.RoleCEO && u.IsApproved() {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo(ids ...string) *fakeCompanyRepo {
	r := &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
	for _, id := range ids {
		r.companies[id] = &entity.Company{ID: id, Name: "Empresa " + id, Status: "active"}
	}
	return r
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	if c, ok := r.companies[id]; ok {
		return c, nil
	}
	return nil, nil
}

func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	return r.ListAll()
}

func (r *fakeCompanyRepo) ListAll() ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

func newAuthUC(users *fakeUserRepo, companies *fakeCompanyRepo, ceoCode string) *auth.AuthUseCase {
	return auth.NewAuthUseCase(users, companies, auth.Config{
		JWT: auth.JWTConfig{
			Secret:     "test-secret",
			ExpMinutes: 60,
			Issuer:     "holdings-api-test",
		},
		CEORegistrationCode: ceoCode,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_QuedaPendiente(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAuthUC(users, newFakeCompanyRepo("1"), "")

	out, err := uc.RegisterUser(dto.RegisterRequest{
		FirstName: "Ana", LastName: "García",
		Email: "ana@techvision.com", Password: "secreta123", CompanyID: "1",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.StatusPending, out.Status, "el registro nace pendiente de aprobación")
	assert.Equal(t, "User", out.Role)
	assert.Equal(t, "Ana García", out.FullName)

	// El password se guarda hasheado con bcrypt, nunca en claro.
	stored, _ := users.GetByEmail("ana@techvision.com")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestRegisterUser_EmailDuplicadoNoCreaCuenta(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAuthUC(users, newFakeCompanyRepo("1"), "")

	_, err := uc.RegisterUser(dto.RegisterRequest{
		FirstName: "Ana", LastName: "García",
		Email: "ana@techvision.com", Password: "secreta123", CompanyID: "1",
	})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{
		FirstName: "Otra", LastName: "Persona",
		Email: "ana@techvision.com", Password: "diferente456", CompanyID: "1",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Len(t, users.users, 1, "el duplicado no debe crear segunda cuenta")
}

func TestRegisterUser_FalloDeDBNoSeLeeComoEmailLibre(t *testing.T) {
	users := newFakeUserRepo()
	users.failGetByEmail = errors.New("conexión perdida")
	uc := newAuthUC(users, newFakeCompanyRepo("1"), "")

	_, err := uc.RegisterUser(dto.RegisterRequest{
		FirstName: "Ana", LastName: "García",
		Email: "ana@techvision.com", Password: "secreta123", CompanyID: "1",
	})
	require.Error(t, err, "un fallo al verificar unicidad debe propagarse, no tratarse como email libre")
	assert.NotErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, users.users, "no se debe crear cuenta con la verificación caída")
}

func TestRegisterCEO_FalloDeDBSePropaga(t *testing.T) {
	users := newFakeUserRepo()
	users.failGetByEmail = errors.New("conexión perdida")
	uc := newAuthUC(users, newFakeCompanyRepo(), "codigo-ceo")

	_, err := uc.RegisterCEO(dto.RegisterCEORequest{
		Code: "codigo-ceo", FirstName: "John", LastName: "Smith",
		Email: "john@holdings.com", Password: "secreta123",
	})
	require.Error(t, err)
	assert.Empty(t, users.users)
}

func TestRegisterUser_EmpresaInexistente(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo(), newFakeCompanyRepo("1"), "")

	_, err := uc.RegisterUser(dto.RegisterRequest{
		FirstName: "Ana", LastName: "García",
		Email: "ana@x.com", Password: "secreta123", CompanyID: "99",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de CEO
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterCEO_CodigoCorrectoQuedaAprobadoConToken(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAuthUC(users, newFakeCompanyRepo(), "codigo-ceo-2025")

	out, err := uc.RegisterCEO(dto.RegisterCEORequest{
		Code: "codigo-ceo-2025", FirstName: "John", LastName: "Smith",
		Email: "john@holdings.com", Password: "secreta123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token, "el CEO entra con sesión iniciada")
	assert.Equal(t, "CEO", out.User.Role)
	assert.Equal(t, entity.StatusApproved, out.User.Status, "el CEO no pasa por aprobación")
	assert.Empty(t, out.User.CompanyID, "el CEO es de nivel holding")
	assert.Equal(t, entity.PermissionAdmin, out.User.Permission)
}

func TestRegisterCEO_CodigoIncorrecto(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo(), newFakeCompanyRepo(), "codigo-ceo-2025")

	_, err := uc.RegisterCEO(dto.RegisterCEORequest{
		Code: "adivinanza", FirstName: "John", LastName: "Smith",
		Email: "john@holdings.com", Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCEOCode)
}

func TestRegisterCEO_DeshabilitadoSinCodigoConfigurado(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo(), newFakeCompanyRepo(), "")

	// Sin código en el servidor nadie se registra como CEO, ni con code vacío.
	_, err := uc.RegisterCEO(dto.RegisterCEORequest{
		Code: "", FirstName: "John", LastName: "Smith",
		Email: "john@holdings.com", Password: "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCEOCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func seedUser(t *testing.T, users *fakeUserRepo, email, password, status string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(&entity.User{
		ID: "u-" + email, FirstName: "Test", LastName: "User",
		Email: email, PasswordHash: string(hash),
		Role: entity.RoleUser, Status: status, Permission: entity.PermissionUser,
		CompanyID: "1",
	}))
}

func TestLogin_AprobadoRecibeToken(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "ana@techvision.com", "secreta123", entity.StatusApproved)
	uc := newAuthUC(users, newFakeCompanyRepo("1"), "")

	out, err := uc.Login(dto.LoginRequest{Email: "ana@techvision.com", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@techvision.com", out.User.Email)
}

func TestLogin_PendienteBloqueado(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "ana@techvision.com", "secreta123", entity.StatusPending)
	uc := newAuthUC(users, newFakeCompanyRepo("1"), "")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@techvision.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrPendingApproval)
}

func TestLogin_RechazadoBloqueado(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "ana@techvision.com", "secreta123", entity.StatusRejected)
	uc := newAuthUC(users, newFakeCompanyRepo("1"), "")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@techvision.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrRejected)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "ana@techvision.com", "secreta123", entity.StatusApproved)
	uc := newAuthUC(users, newFakeCompanyRepo("1"), "")

	_, err := uc.Login(dto.LoginRequest{Email: "ana@techvision.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo(), newFakeCompanyRepo(), "")

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@x.com", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
