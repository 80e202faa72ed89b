package domain

import "fmt"

// Role is an element of the totally ordered privilege set
// student < tutor < admin.
type Role string

const (
	RoleStudent Role = "student"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"
)

// roleRank encodes the total order. Higher rank means more privilege.
var roleRank = map[Role]int{
	RoleStudent: 0,
	RoleTutor:   1,
	RoleAdmin:   2,
}

// ParseRole validates an inbound role string.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleRank[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Valid reports whether r is a member of the role set.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Satisfies reports whether a holder of r passes a gate requiring at
// least required. Unknown roles never satisfy anything.
func (r Role) Satisfies(required Role) bool {
	held, ok := roleRank[r]
	if !ok {
		return false
	}
	need, ok := roleRank[required]
	if !ok {
		return false
	}
	return held >= need
}
