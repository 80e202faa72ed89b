package ports

import (
	"context"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// UserService is the admin-facing account management surface.
type UserService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
	SetRole(ctx context.Context, actor domain.AuthContext, id string, role domain.Role) error
	SetActive(ctx context.Context, actor domain.AuthContext, id string, active bool) error
	Delete(ctx context.Context, actor domain.AuthContext, id string) error
}
