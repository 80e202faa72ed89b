package ports

import (
	"context"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Email uniqueness must be enforced atomically by the implementation;
// Insert reports a conflict as domain.ErrEmailTaken.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	ListAll(ctx context.Context) ([]*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateName(ctx context.Context, id, name string) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	UpdateActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
