package repository

import "github.com/jhoicas/Gastos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	ListByCompany(companyID string) ([]*entity.User, error)
	// ListByManager devuelve los reportes directos de un manager (para la
	// visibilidad de gastos del equipo).
	ListByManager(managerID string) ([]*entity.User, error)
}
