package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/holdings-api/internal/application/usecase"
	"github.com/jhoicas/holdings-api/internal/domain"
	"github.com/jhoicas/holdings-api/internal/domain/entity"
)

func pendingUser(id, email string) *entity.User {
	return &entity.User{
		ID: id, FirstName: "Test", LastName: "User", Email: email,
		Role: entity.RoleUser, Status: entity.StatusPending,
		Permission: entity.PermissionUser, CompanyID: "1",
	}
}

func TestApprove_PendientePasaAAprobado(t *testing.T) {
	repo := newFakeUserRepo(pendingUser("u-1", "ana@techvision.com"))
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Approve("u-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, out.Status)

	stored, _ := repo.GetByID("u-1")
	assert.Equal(t, entity.StatusApproved, stored.Status)
}

func TestApprove_IdempotenteSobreAprobado(t *testing.T) {
	repo := newFakeUserRepo(pendingUser("u-1", "ana@techvision.com"))
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Approve("u-1")
	require.NoError(t, err)
	out, err := uc.Approve("u-1")
	require.NoError(t, err, "aprobar dos veces no es error")
	assert.Equal(t, entity.StatusApproved, out.Status)
}

func TestApprove_UsuarioInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Approve("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestReject_PendientePasaARechazado(t *testing.T) {
	repo := newFakeUserRepo(pendingUser("u-1", "ana@techvision.com"))
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.Reject("u-1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, out.Status)
}

func TestReject_AprobadoNoRevierte(t *testing.T) {
	repo := newFakeUserRepo(pendingUser("u-1", "ana@techvision.com"))
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Approve("u-1")
	require.NoError(t, err)

	_, err = uc.Reject("u-1")
	assert.ErrorIs(t, err, domain.ErrConflict, "una cuenta aprobada no se rechaza")

	stored, _ := repo.GetByID("u-1")
	assert.Equal(t, entity.StatusApproved, stored.Status, "el estado no debe cambiar")
}

func TestDelete_EsExplicitoEIrreversible(t *testing.T) {
	repo := newFakeUserRepo(pendingUser("u-1", "ana@techvision.com"))
	uc := usecase.NewUserUseCase(repo)

	require.NoError(t, uc.Delete("u-1"))

	stored, _ := repo.GetByID("u-1")
	assert.Nil(t, stored)

	assert.ErrorIs(t, uc.Delete("u-1"), domain.ErrUserNotFound)
}

func TestListPending_SoloPendientes(t *testing.T) {
	approved := pendingUser("u-2", "luis@techvision.com")
	approved.Status = entity.StatusApproved
	repo := newFakeUserRepo(pendingUser("u-1", "ana@techvision.com"), approved)
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.ListPending(20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "u-1", out.Items[0].ID)
	assert.Equal(t, entity.StatusPending, out.Items[0].Status)
}
