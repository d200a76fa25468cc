package auth

import (
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/holdings-api/internal/application/dto"
	"github.com/jhoicas/holdings-api/internal/domain"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
	"github.com/jhoicas/holdings-api/internal/domain/repository"
	"github.com/jhoicas/holdings-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Config opciones del flujo de registro.
type Config struct {
	JWT JWTConfig
	// CEORegistrationCode habilita el registro directo de CEO. Vacío = deshabilitado.
	CEORegistrationCode string
	// DefaultCompanyID empresa asignada a registros regulares que no indican empresa.
	DefaultCompanyID string
}

// AuthUseCase casos de uso de autenticación: registro, registro de CEO y login.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	cfg         Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, cfg Config) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, companyRepo: companyRepo, cfg: cfg}
}

// RegisterUser crea un usuario en estado pending: hashea password con bcrypt
// y persiste. El usuario no puede autenticarse hasta que el CEO lo apruebe.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado (no se crea cuenta).
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	companyID := in.CompanyID
	if companyID == "" {
		companyID = uc.cfg.DefaultCompanyID
	}
	if companyID != "" {
		company, err := uc.companyRepo.GetByID(companyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrNotFound // empresa no existe
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
		Status:       entity.StatusPending,
		Permission:   entity.PermissionUser,
		CompanyID:    companyID,
		RegisteredAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// RegisterCEO crea un CEO aprobado de inmediato, previa verificación del
// código de registro. El CEO queda a nivel holding (sin empresa) con
// permiso admin, y se le emite token para auto-login.
func (uc *AuthUseCase) RegisterCEO(in dto.RegisterCEORequest) (*dto.LoginResponse, error) {
	if uc.cfg.CEORegistrationCode == "" ||
		subtle.ConstantTimeCompare([]byte(in.Code), []byte(uc.cfg.CEORegistrationCode)) != 1 {
		return nil, domain.ErrInvalidCEOCode
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleCEO,
		Status:       entity.StatusApproved,
		Permission:   entity.PermissionAdmin,
		RegisteredAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	token, err := uc.tokenFor(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// Login verifica email/password y el estado de la cuenta, genera JWT y
// retorna token + usuario. Cuentas pending y rejected no pueden entrar.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	switch user.Status {
	case entity.StatusApproved:
		// ok
	case entity.StatusPending:
		return nil, domain.ErrPendingApproval
	case entity.StatusRejected:
		return nil, domain.ErrRejected
	default:
		return nil, domain.ErrForbidden
	}
	token, err := uc.tokenFor(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

func (uc *AuthUseCase) tokenFor(u *entity.User) (string, error) {
	return jwt.Generate(uc.cfg.JWT.Secret, u.ID, u.CompanyID, string(u.Role), uc.cfg.JWT.Issuer, uc.cfg.JWT.ExpMinutes)
}

// ToUserResponse mapea la entidad al DTO de salida (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		FullName:     u.FullName(),
		Email:        u.Email,
		Role:         string(u.Role),
		Status:       u.Status,
		Permission:   u.Permission,
		CompanyID:    u.CompanyID,
		RegisteredAt: u.RegisteredAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
