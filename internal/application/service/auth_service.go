package service

import (
	"context"
	"log"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/domain/enum"
	"github.com/elesfuerzo/pos-api/internal/domain/repository"
	"github.com/elesfuerzo/pos-api/pkg/apperror"
	"github.com/elesfuerzo/pos-api/pkg/utils"
)

// IdentityProvider is the slice of the Firebase Auth client the service
// needs. Satisfied by *auth.Client; faked in tests.
type IdentityProvider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
	CreateUser(ctx context.Context, user *fbauth.UserToCreate) (*fbauth.UserRecord, error)
	EmailVerificationLink(ctx context.Context, email string) (string, error)
	PasswordResetLink(ctx context.Context, email string) (string, error)
}

// LinkMailer delivers account emails carrying an action link.
type LinkMailer interface {
	SendVerificationEmail(toEmail, verifyLink string) error
	SendPasswordResetEmail(toEmail, resetLink string) error
}

var _ IdentityProvider = (*fbauth.Client)(nil)

// AuthService exchanges Firebase credentials for API tokens. Passwords never
// touch this service; Firebase Auth holds them.
type AuthService struct {
	identity   IdentityProvider
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	mailer     LinkMailer
	adminEmail string
}

// NewAuthService creates a new auth service. adminEmail is the address that
// is granted the admin role at registration.
func NewAuthService(
	identity IdentityProvider,
	userRepo repository.UserRepository,
	jwtManager *utils.JWTManager,
	mailer LinkMailer,
	adminEmail string,
) *AuthService {
	return &AuthService{
		identity:   identity,
		userRepo:   userRepo,
		jwtManager: jwtManager,
		mailer:     mailer,
		adminEmail: strings.ToLower(adminEmail),
	}
}

// TokenPair carries the issued API tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResult is the successful login payload.
type LoginResult struct {
	Profile *entity.UserProfile `json:"user"`
	Tokens  TokenPair           `json:"tokens"`
}

// Login verifies a Firebase ID token and exchanges it for an API token pair.
// The UID must have a role profile on file; accounts created outside the
// register flow are rejected until an admin completes them.
func (s *AuthService) Login(ctx context.Context, idToken string) (*LoginResult, error) {
	token, err := s.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	profile, err := s.userRepo.GetByUID(ctx, token.UID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.ErrProfileIncomplete
	}
	if !profile.Role.Valid() {
		return nil, apperror.ErrUnknownRole
	}

	return s.issueTokens(profile)
}

// RegisterInput represents the registration input.
type RegisterInput struct {
	Email    string
	Password string
}

// Register creates the Firebase account and its role profile. The configured
// store admin address receives the admin role; everyone else starts as a
// cashier. A verification link is mailed best effort.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.UserProfile, error) {
	emailAddr := strings.ToLower(strings.TrimSpace(input.Email))
	if emailAddr == "" {
		return nil, apperror.NewBadRequestError("Email is required")
	}
	if len(input.Password) < 6 {
		return nil, apperror.NewBadRequestError("Password must be at least 6 characters")
	}

	userToCreate := (&fbauth.UserToCreate{}).
		Email(emailAddr).
		Password(input.Password)

	record, err := s.identity.CreateUser(ctx, userToCreate)
	if err != nil {
		if strings.Contains(err.Error(), "EMAIL_EXISTS") {
			return nil, apperror.NewConflictError("Email already registered")
		}
		return nil, apperror.NewBadRequestError("Account creation failed")
	}

	role := enum.UserRoleCashier
	if emailAddr == s.adminEmail {
		role = enum.UserRoleAdmin
	}

	profile := &entity.UserProfile{
		UID:   record.UID,
		Email: emailAddr,
		Role:  role,
	}
	if err := s.userRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	if link, err := s.identity.EmailVerificationLink(ctx, emailAddr); err != nil {
		log.Printf("auth: verification link for %s failed: %v", emailAddr, err)
	} else if err := s.mailer.SendVerificationEmail(emailAddr, link); err != nil {
		log.Printf("auth: verification email to %s failed: %v", emailAddr, err)
	}

	return profile, nil
}

// RefreshToken exchanges a refresh token for a fresh pair. The profile is
// reloaded so role changes take effect at rotation.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error) {
	uid, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	profile, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.ErrProfileIncomplete
	}
	if !profile.Role.Valid() {
		return nil, apperror.ErrUnknownRole
	}

	return s.issueTokens(profile)
}

// ForgotPassword mails a password reset link. It reports success even when
// the address is unknown so the endpoint leaks no account existence.
func (s *AuthService) ForgotPassword(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))
	if emailAddr == "" {
		return apperror.NewBadRequestError("Email is required")
	}

	link, err := s.identity.PasswordResetLink(ctx, emailAddr)
	if err != nil {
		log.Printf("auth: reset link for %s failed: %v", emailAddr, err)
		return nil
	}
	if err := s.mailer.SendPasswordResetEmail(emailAddr, link); err != nil {
		log.Printf("auth: reset email to %s failed: %v", emailAddr, err)
	}
	return nil
}

func (s *AuthService) issueTokens(profile *entity.UserProfile) (*LoginResult, error) {
	access, err := s.jwtManager.GenerateAccessToken(profile.UID, profile.Email, profile.Role.String())
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(profile.UID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Profile: profile,
		Tokens:  TokenPair{AccessToken: access, RefreshToken: refresh},
	}, nil
}
