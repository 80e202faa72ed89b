package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/learnhub/course-catalog/internal/core/domain"
	"github.com/learnhub/course-catalog/internal/core/ports"
)

// UserService implements the admin-only account management operations.
// Every mutating method re-checks the actor's privilege even though the
// routes are already gated, so the service is safe to call from any
// future entry point.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListAll(ctx)
}

func (s *UserService) ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	return s.repo.ListByRole(ctx, role)
}

// SetRole promotes an account. Only elevation is allowed: demoting an
// account would leave already-issued tokens carrying a higher role than
// the store, so it is rejected outright.
func (s *UserService) SetRole(ctx context.Context, actor domain.AuthContext, id string, role domain.Role) error {
	if !actor.Role.Satisfies(domain.RoleAdmin) {
		return domain.ErrForbidden
	}
	if !role.Valid() {
		return fmt.Errorf("unknown role %q", role)
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Role.Satisfies(role) {
		// Same role or a demotion.
		return domain.ErrForbidden
	}

	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return err
	}
	s.logger.Info().
		Str("user_id", id).
		Str("role", string(role)).
		Str("updated_by", actor.UserID).
		Msg("role elevated")
	return nil
}

// SetActive activates or deactivates an account. Inactive accounts
// cannot log in; tokens already in flight stay valid until expiry.
func (s *UserService) SetActive(ctx context.Context, actor domain.AuthContext, id string, active bool) error {
	if !actor.Role.Satisfies(domain.RoleAdmin) {
		return domain.ErrForbidden
	}
	if err := s.repo.UpdateActive(ctx, id, active); err != nil {
		return err
	}
	s.logger.Info().
		Str("user_id", id).
		Bool("active", active).
		Str("updated_by", actor.UserID).
		Msg("account status updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, actor domain.AuthContext, id string) error {
	if !actor.Role.Satisfies(domain.RoleAdmin) {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().
		Str("user_id", id).
		Str("deleted_by", actor.UserID).
		Msg("account deleted")
	return nil
}
