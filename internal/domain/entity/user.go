package entity

import "time"

// Roles válidos para User. El rol es fijo por usuario; solo ManagerID es
// mutable (y únicamente por un Admin).
const (
	RoleEmployee = "Employee"
	RoleManager  = "Manager"
	RoleAdmin    = "Admin"
)

// User representa un usuario del sistema (pertenece a una Company).
// ManagerID es auto-referencial: forma un bosque con raíz en los usuarios sin manager.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string  // Employee, Manager, Admin
	ManagerID    *string // nil = sin manager
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin indica si el usuario tiene privilegio de override de aprobaciones.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
