package dto

// CreateUserRequest alta de usuario por un Admin dentro de su empresa.
type CreateUserRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Role      string  `json:"role"` // Employee, Manager, Admin
	ManagerID *string `json:"manager_id,omitempty"`
}

// UpdateUserRequest solo rol y manager son mutables (Admin).
type UpdateUserRequest struct {
	Role      string  `json:"role,omitempty"`
	ManagerID *string `json:"manager_id,omitempty"`
}
