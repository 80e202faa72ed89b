package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

func seedUser(t *testing.T, repo *stubUserRepo, email string, role domain.Role) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	user, err := repo.Insert(context.Background(), &domain.User{
		Email:     email,
		Name:      "seed",
		Role:      role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserService_SetRole_ElevationOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := domain.AuthContext{UserID: "a1", Role: domain.RoleAdmin}

	student := seedUser(t, repo, "s@x.com", domain.RoleStudent)
	if err := svc.SetRole(context.Background(), admin, student.ID, domain.RoleTutor); err != nil {
		t.Fatalf("elevation failed: %v", err)
	}
	got, _ := repo.FindByID(context.Background(), student.ID)
	if got.Role != domain.RoleTutor {
		t.Fatalf("role = %s, want tutor", got.Role)
	}

	// Demotion and no-op elevation are both rejected.
	if err := svc.SetRole(context.Background(), admin, student.ID, domain.RoleStudent); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for demotion, got %v", err)
	}
	if err := svc.SetRole(context.Background(), admin, student.ID, domain.RoleTutor); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for same-role update, got %v", err)
	}
}

func TestUserService_MutationsRequireAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	tutor := domain.AuthContext{UserID: "t1", Role: domain.RoleTutor}

	student := seedUser(t, repo, "s@x.com", domain.RoleStudent)

	if err := svc.SetRole(context.Background(), tutor, student.ID, domain.RoleTutor); err != domain.ErrForbidden {
		t.Fatalf("SetRole: expected ErrForbidden, got %v", err)
	}
	if err := svc.SetActive(context.Background(), tutor, student.ID, false); err != domain.ErrForbidden {
		t.Fatalf("SetActive: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), tutor, student.ID); err != domain.ErrForbidden {
		t.Fatalf("Delete: expected ErrForbidden, got %v", err)
	}
}

func TestUserService_SetActiveAndDelete(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	admin := domain.AuthContext{UserID: "a1", Role: domain.RoleAdmin}

	student := seedUser(t, repo, "s@x.com", domain.RoleStudent)

	if err := svc.SetActive(context.Background(), admin, student.ID, false); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	got, _ := repo.FindByID(context.Background(), student.ID)
	if got.Active {
		t.Fatalf("account still active")
	}

	if err := svc.Delete(context.Background(), admin, student.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), student.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}

func TestUserService_ListByRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	seedUser(t, repo, "s@x.com", domain.RoleStudent)
	seedUser(t, repo, "t1@x.com", domain.RoleTutor)
	seedUser(t, repo, "t2@x.com", domain.RoleTutor)

	tutors, err := svc.ListByRole(context.Background(), domain.RoleTutor)
	if err != nil {
		t.Fatalf("ListByRole failed: %v", err)
	}
	if len(tutors) != 2 {
		t.Fatalf("expected 2 tutors, got %d", len(tutors))
	}

	if _, err := svc.ListByRole(context.Background(), domain.Role("visitor")); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
