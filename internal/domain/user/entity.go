package user

type Role string

const (
	RoleEmployee Role = "Employee" // Logs daily hours
	RoleManager  Role = "Manager"  // Approves/rejects team submissions
	RoleAdmin    Role = "Admin"    // Manages reference data and exports
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEmployee, RoleManager, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
	// Password is a plain credential by product decision; it is compared
	// verbatim at login and is not a security mechanism.
	Password  string `json:"password,omitempty"`
	ManagerID *int64 `json:"managerId,omitempty"`
}

// IsManager checks if the user can approve submissions
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// IsAdmin checks if the user can manage reference data
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
