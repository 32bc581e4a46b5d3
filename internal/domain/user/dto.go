package user

import "strings"

type CreateUserRequest struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Password   string `json:"password"`
	ManagerID  *int64 `json:"manager_id,omitempty"`
}

func (r CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if _, ok := ParseRole(r.Role); !ok {
		return ErrInvalidRole
	}
	return nil
}

type UpdateUserRequest struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	ManagerID  *int64 `json:"manager_id,omitempty"`
}

func (r UpdateUserRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if _, ok := ParseRole(r.Role); !ok {
		return ErrInvalidRole
	}
	return nil
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// Public is the user shape returned to clients, without the credential.
type Public struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
	ManagerID  *int64 `json:"manager_id,omitempty"`
}

func (u User) ToPublic() Public {
	return Public{
		ID:         u.ID,
		Name:       u.Name,
		Role:       u.Role,
		Department: u.Department,
		ManagerID:  u.ManagerID,
	}
}
