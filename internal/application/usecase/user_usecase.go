package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gastos-api/internal/application/auth"
	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios. Las operaciones de
// escritura están reservadas a Admin (lo garantiza RequireRole en el router).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario dentro de la empresa del Admin que lo invoca.
func (uc *UserUseCase) Create(companyID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Role != entity.RoleEmployee && in.Role != entity.RoleManager && in.Role != entity.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
		ManagerID:    in.ManagerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// ListByCompany lista los usuarios de la empresa.
func (uc *UserUseCase) ListByCompany(companyID string) ([]dto.UserResponse, error) {
	users, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// Update modifica rol y/o manager de un usuario de la misma empresa.
// El rol es fijo por diseño salvo intervención de Admin; el manager forma el
// bosque que consume el resolver de aprobadores, por eso el cambio surte
// efecto inmediato sobre gastos en vuelo.
func (uc *UserUseCase) Update(companyID, userID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Role != "" {
		if in.Role != entity.RoleEmployee && in.Role != entity.RoleManager && in.Role != entity.RoleAdmin {
			return nil, domain.ErrInvalidInput
		}
		user.Role = in.Role
	}
	if in.ManagerID != nil {
		if *in.ManagerID == "" {
			user.ManagerID = nil
		} else {
			user.ManagerID = in.ManagerID
		}
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}
