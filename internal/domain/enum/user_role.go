package enum

// UserRole is the role of the operator using the dashboard.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleEmployee UserRole = "EMPLOYEE"
)

// Valid reports whether r is a recognized role.
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

func (r UserRole) String() string {
	return string(r)
}
