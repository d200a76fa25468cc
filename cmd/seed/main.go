// Comando seed: carga el dataset de demostración (empresas del portafolio y
// usuarios aprobados) para levantar un entorno funcional sin registro manual.
// Es idempotente a nivel de fila: las filas existentes no se duplican.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/holdings-api/internal/domain"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
	"github.com/jhoicas/holdings-api/internal/infrastructure/postgres"
	"github.com/jhoicas/holdings-api/pkg/config"
	"github.com/jhoicas/holdings-api/pkg/logger"
)

// demoPassword es la contraseña de todos los usuarios sembrados. Solo para
// entornos de demostración; SEED_PASSWORD la reemplaza.
const demoPassword = "holdings123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	now := time.Now()
	for _, c := range demoCompanies(now) {
		if err := companyRepo.Create(c); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				continue
			}
			log.Fatal().Err(err).Str("company", c.Name).Msg("sembrar empresa")
		}
		log.Info().Str("company", c.Name).Msg("empresa creada")
	}

	password := demoPassword
	if p := os.Getenv("SEED_PASSWORD"); p != "" {
		password = p
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña de seed")
	}

	for _, u := range demoUsers(now, string(hash)) {
		if err := userRepo.Create(u); err != nil {
			if errors.Is(err, domain.ErrEmailAlreadyExists) {
				continue
			}
			log.Fatal().Err(err).Str("email", u.Email).Msg("sembrar usuario")
		}
		log.Info().Str("email", u.Email).Str("role", string(u.Role)).Msg("usuario creado")
	}

	log.Info().Msg("seed completado")
}

func demoCompanies(now time.Time) []*entity.Company {
	company := func(id, name, logo string) *entity.Company {
		return &entity.Company{
			ID: id, Name: name, LogoURL: logo, Status: "active",
			CreatedAt: now, UpdatedAt: now,
		}
	}
	return []*entity.Company{
		company("1", "TechVision Inc", "https://images.unsplash.com/photo-1746046936818-8d432ebd3d0e?w=1080"),
		company("2", "Global Finance Corp", "https://images.unsplash.com/photo-1684128169771-f4ff82dffbb5?w=1080"),
		company("3", "Retail Solutions Ltd", "https://images.unsplash.com/photo-1590764095558-abd89de9db5f?w=1080"),
		company("4", "Manufacturing Pro", "https://images.unsplash.com/photo-1717386255773-1e3037c81788?w=1080"),
	}
}

func demoUsers(now time.Time, hash string) []*entity.User {
	user := func(id, first, last, email string, role entity.Role, permission, companyID string) *entity.User {
		return &entity.User{
			ID: id, FirstName: first, LastName: last, Email: email,
			PasswordHash: hash, Role: role, Status: entity.StatusApproved,
			Permission: permission, CompanyID: companyID,
			RegisteredAt: now, CreatedAt: now, UpdatedAt: now,
		}
	}
	return []*entity.User{
		// Nivel holding. Sarah es la Secretary personal del CEO: su tablero
		// se limita a las tareas dirigidas al CEO o creadas por él.
		user("ceo", "John", "Smith", "john@holdings.com", entity.RoleCEO, entity.PermissionAdmin, ""),
		user("secretary", "Sarah", "Johnson", "sarah@holdings.com", entity.RoleSecretary, entity.PermissionManager, ""),

		// TechVision Inc
		user("tv1", "Mike", "Chen", "mike@techvision.com", entity.RoleManager, entity.PermissionManager, "1"),
		user("tv2", "Alex", "Thompson", "alex@techvision.com", entity.RoleUser, entity.PermissionUser, "1"),
		user("tv3", "Emily", "Davis", "emily@techvision.com", entity.RoleUser, entity.PermissionUser, "1"),
		user("tv4", "Amanda", "Lee", "amanda@techvision.com", entity.RoleUser, entity.PermissionUser, "1"),

		// Global Finance Corp
		user("gfc1", "Michael", "Roberts", "michael@globalfinance.com", entity.RoleUser, entity.PermissionUser, "2"),
		user("gfc2", "Robert", "Thompson", "robert@globalfinance.com", entity.RoleUser, entity.PermissionUser, "2"),
		user("gfc3", "Lisa", "Martinez", "lisa@globalfinance.com", entity.RoleUser, entity.PermissionUser, "2"),

		// Retail Solutions Ltd
		user("rsl1", "Lisa", "Rodriguez", "lisa@retailsolutions.com", entity.RoleManager, entity.PermissionManager, "3"),
		user("rsl2", "Jennifer", "Kim", "jennifer@retailsolutions.com", entity.RoleUser, entity.PermissionUser, "3"),
		user("rsl3", "Tom", "Wilson", "tom@retailsolutions.com", entity.RoleUser, entity.PermissionUser, "3"),
		user("rsl4", "Carlos", "Anderson", "carlos@retailsolutions.com", entity.RoleUser, entity.PermissionUser, "3"),
		user("rsl5", "Amanda", "Rodriguez", "amanda.r@retailsolutions.com", entity.RoleUser, entity.PermissionUser, "3"),

		// Manufacturing Pro
		user("mp1", "David", "Park", "david@manufacturingpro.com", entity.RoleManager, entity.PermissionManager, "4"),
		user("mp2", "Robert", "Martinez", "robert@manufacturingpro.com", entity.RoleUser, entity.PermissionUser, "4"),
		user("mp3", "David", "Martinez", "david.m@manufacturingpro.com", entity.RoleUser, entity.PermissionUser, "4"),
	}
}
