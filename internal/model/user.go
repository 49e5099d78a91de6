package model

// Actor is the currently authenticated user as reported by the session
// collaborator. The store never looks at it.
type Actor struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role is a known role.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// RoleAtLeast checks if role meets or exceeds the minimum required role.
func RoleAtLeast(role, minimum string) bool {
	levels := map[string]int{
		RoleAdmin: 2,
		RoleUser:  1,
	}
	have, ok := levels[role]
	need, known := levels[minimum]
	return ok && known && have >= need
}
