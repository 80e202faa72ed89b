package ports

import (
	"context"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// AuthService covers account creation and session issuance.
type AuthService interface {
	Signup(ctx context.Context, email, password, name string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	CreatePrivilegedAccount(ctx context.Context, actor domain.AuthContext, email, password, name string, role domain.Role) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	UpdateProfile(ctx context.Context, userID, name string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}
