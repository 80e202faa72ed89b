package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/course-catalog/internal/core/auth"
	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/ports"
)

const resetTokenTTL = time.Hour

// AuthService implements signup, login, privileged account creation, and
// the password lifecycle operations.
type AuthService struct {
	repo   ports.UserRepository
	tokens *auth.TokenCodec
	resets ports.ResetTokenStore
	mailer ports.Mailer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *auth.TokenCodec, resets ports.ResetTokenStore, mailer ports.Mailer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, resets: resets, mailer: mailer, logger: logger}
}

// Signup creates a new account and issues a session token. The role is
// forced to student: whatever a caller put in the request payload never
// reaches this method. Privileged accounts exist only through
// CreatePrivilegedAccount.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (*domain.User, string, error) {
	email = normalizeEmail(email)

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleStudent,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Str("user_id", created.ID).Msg("account created")
	return created, token, nil
}

// Login verifies credentials and issues a token carrying the account's
// current stored role. Unknown email, inactive account, and wrong
// password all collapse into the same ErrInvalidCredentials so the
// response cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !user.Active {
		return nil, "", domain.ErrInvalidCredentials
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		// Corrupt stored hash is a server fault, never "wrong password".
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("stored credential unreadable")
		return nil, "", err
	}
	if !ok {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// CreatePrivilegedAccount creates a tutor or admin account. The actor's
// role is checked before anything touches the store.
func (s *AuthService) CreatePrivilegedAccount(ctx context.Context, actor domain.AuthContext, email, password, name string, role domain.Role) (*domain.User, error) {
	if !actor.Role.Satisfies(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	if role != domain.RoleTutor && role != domain.RoleAdmin {
		return nil, fmt.Errorf("role %q is not a privileged role", role)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        normalizeEmail(email),
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("user_id", created.ID).
		Str("role", string(role)).
		Str("created_by", actor.UserID).
		Msg("privileged account created")
	return created, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := auth.VerifyPassword(currentPassword, user.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, userID, hash)
}

// UpdateProfile changes the display name.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, name string) error {
	return s.repo.UpdateName(ctx, userID, name)
}

// RequestPasswordReset stores a single-use reset token and hands it to
// the mailer. It succeeds whether or not the email exists — the response
// must not reveal which.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	if err := s.resets.Save(ctx, token, user.ID, resetTokenTTL); err != nil {
		return err
	}
	if err := s.mailer.SendPasswordReset(ctx, user.Email, user.Name, token); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("reset notification failed")
	}
	return nil
}

// ResetPassword redeems a reset token and sets a new password. The token
// is consumed even if the subsequent update fails.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.resets.Consume(ctx, token)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, userID, hash)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// generateResetToken returns 32 random bytes as hex.
func generateResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
