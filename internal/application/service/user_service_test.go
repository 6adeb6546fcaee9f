package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/enum"
)

func TestSetRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(
		&entity.UserProfile{UID: "admin-1", Email: "admin@elesfuerzo.com", Role: enum.UserRoleAdmin},
		&entity.UserProfile{UID: "u1", Email: "caja@elesfuerzo.com", Role: enum.UserRoleCashier},
	))
	ctx := context.Background()

	updated, err := svc.SetRole(ctx, "admin-1", "u1", enum.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, enum.UserRoleAdmin, updated.Role)

	_, err = svc.SetRole(ctx, "admin-1", "u1", "gerente")
	require.Error(t, err)

	_, err = svc.SetRole(ctx, "admin-1", "missing", enum.UserRoleCashier)
	require.Error(t, err)
}

func TestSetRoleBlocksSelfDemotion(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(
		&entity.UserProfile{UID: "admin-1", Email: "admin@elesfuerzo.com", Role: enum.UserRoleAdmin},
	))

	_, err := svc.SetRole(context.Background(), "admin-1", "admin-1", enum.UserRoleCashier)
	require.Error(t, err)
}

func TestListUsers(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(
		&entity.UserProfile{UID: "u1", Email: "a@b.cl", Role: enum.UserRoleCashier},
		&entity.UserProfile{UID: "u2", Email: "c@d.cl", Role: enum.UserRoleAdmin},
	))

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
