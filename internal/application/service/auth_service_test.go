package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/enum"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
	"github.com/elesfuerzo/pos-api/pkg/utils"
)

func authFixture(users ...*entity.UserProfile) (*AuthService, *fakeIdentity, *fakeUserRepo, *fakeMailer) {
	identity := newFakeIdentity()
	userRepo := newFakeUserRepo(users...)
	mailer := newFakeMailer()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(identity, userRepo, jwtManager, mailer, "admin@elesfuerzo.com")
	return svc, identity, userRepo, mailer
}

func TestLoginIssuesTokens(t *testing.T) {
	svc, identity, _, _ := authFixture(
		&entity.UserProfile{UID: "u1", Email: "caja@elesfuerzo.com", Role: enum.UserRoleCashier},
	)
	identity.tokens["good-token"] = "u1"

	result, err := svc.Login(context.Background(), "good-token")
	require.NoError(t, err)

	assert.Equal(t, enum.UserRoleCashier, result.Profile.Role)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
}

func TestLoginRejectsInvalidToken(t *testing.T) {
	svc, _, _, _ := authFixture()

	_, err := svc.Login(context.Background(), "bogus")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestLoginRejectsMissingProfile(t *testing.T) {
	svc, identity, _, _ := authFixture()
	identity.tokens["good-token"] = "u1"

	_, err := svc.Login(context.Background(), "good-token")
	assert.ErrorIs(t, err, apperror.ErrProfileIncomplete)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	svc, identity, _, _ := authFixture(
		&entity.UserProfile{UID: "u1", Email: "x@y.cl", Role: "gerente"},
	)
	identity.tokens["good-token"] = "u1"

	_, err := svc.Login(context.Background(), "good-token")
	assert.ErrorIs(t, err, apperror.ErrUnknownRole)
}

func TestRegisterAssignsRoles(t *testing.T) {
	svc, _, userRepo, mailer := authFixture()
	ctx := context.Background()

	admin, err := svc.Register(ctx, &RegisterInput{Email: "Admin@ElEsfuerzo.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, enum.UserRoleAdmin, admin.Role)
	assert.Equal(t, "admin@elesfuerzo.com", admin.Email)

	cashier, err := svc.Register(ctx, &RegisterInput{Email: "caja@elesfuerzo.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, enum.UserRoleCashier, cashier.Role)

	stored, err := userRepo.GetByUID(ctx, cashier.UID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Contains(t, mailer.links, "caja@elesfuerzo.com")
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _, _ := authFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "", Password: "secret1"})
	require.Error(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Email: "x@y.cl", Password: "123"})
	require.Error(t, err)
}

func TestRefreshTokenRotatesPair(t *testing.T) {
	svc, identity, userRepo, _ := authFixture(
		&entity.UserProfile{UID: "u1", Email: "caja@elesfuerzo.com", Role: enum.UserRoleCashier},
	)
	identity.tokens["good-token"] = "u1"

	login, err := svc.Login(context.Background(), "good-token")
	require.NoError(t, err)

	// A role change lands on the next rotation.
	require.NoError(t, userRepo.UpdateRole(context.Background(), "u1", enum.UserRoleAdmin))

	refreshed, err := svc.RefreshToken(context.Background(), login.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, enum.UserRoleAdmin, refreshed.Profile.Role)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc, identity, _, _ := authFixture(
		&entity.UserProfile{UID: "u1", Email: "caja@elesfuerzo.com", Role: enum.UserRoleCashier},
	)
	identity.tokens["good-token"] = "u1"

	login, err := svc.Login(context.Background(), "good-token")
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), login.Tokens.AccessToken)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestForgotPasswordSendsLink(t *testing.T) {
	svc, _, _, mailer := authFixture()

	require.NoError(t, svc.ForgotPassword(context.Background(), "caja@elesfuerzo.com"))
	assert.Contains(t, mailer.links, "caja@elesfuerzo.com")
}
