package domain

import "testing"

func TestRoleSatisfies(t *testing.T) {
	cases := []struct {
		held     Role
		required Role
		want     bool
	}{
		{RoleStudent, RoleStudent, true},
		{RoleStudent, RoleTutor, false},
		{RoleStudent, RoleAdmin, false},
		{RoleTutor, RoleStudent, true},
		{RoleTutor, RoleTutor, true},
		{RoleTutor, RoleAdmin, false},
		{RoleAdmin, RoleStudent, true},
		{RoleAdmin, RoleTutor, true},
		{RoleAdmin, RoleAdmin, true},
		{Role("visitor"), RoleStudent, false},
		{RoleAdmin, Role("visitor"), false},
	}

	for _, tc := range cases {
		if got := tc.held.Satisfies(tc.required); got != tc.want {
			t.Errorf("Satisfies(%s, %s) = %v, want %v", tc.held, tc.required, got, tc.want)
		}
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"student", "tutor", "admin"} {
		r, err := ParseRole(s)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", s, err)
		}
		if string(r) != s {
			t.Fatalf("ParseRole(%q) = %q", s, r)
		}
	}

	if _, err := ParseRole("superadmin"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
	if _, err := ParseRole(""); err == nil {
		t.Fatalf("expected error for empty role")
	}
}
