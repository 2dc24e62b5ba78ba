package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/application/ports"
	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	"github.com/jhoicas/Gastos-api/internal/domain/repository"
	"github.com/jhoicas/Gastos-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: signup (empresa + admin + regla
// por defecto), login y perfil.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	ruleRepo    repository.ApprovalRuleRepository
	countries   ports.CountryCurrencyResolver
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	ruleRepo repository.ApprovalRuleRepository,
	countries ports.CountryCurrencyResolver,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		ruleRepo:    ruleRepo,
		countries:   countries,
		jwtCfg:      jwtCfg,
	}
}

// Signup crea la empresa (divisa resuelta desde el país), el usuario Admin
// inicial y una regla de aprobación por defecto para que el flujo funcione
// sin configuración adicional: hybrid al 100% con el admin como aprobador
// designado y único de la lista base.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	currency, err := uc.countries.CurrencyForCountry(ctx, in.Country)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.CompanyName,
		Country:   in.Country,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.UserName,
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(admin); err != nil {
		return nil, err
	}

	adminID := admin.ID
	rule := &entity.ApprovalRule{
		ID:                 uuid.New().String(),
		CompanyID:          company.ID,
		Kind:               entity.RuleKindHybrid,
		Percentage:         entity.DefaultPercentage,
		SpecificApproverID: &adminID,
		IsManagerApprover:  false,
		Approvers:          []string{admin.ID},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.ruleRepo.Create(rule); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, company.ID, admin.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *ToUserResponse(admin)}, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// Me devuelve el usuario autenticado con su empresa.
func (uc *AuthUseCase) Me(userID string) (*dto.MeResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	company, err := uc.companyRepo.GetByID(user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.MeResponse{
		User: *ToUserResponse(user),
		Company: dto.CompanyResponse{
			ID:        company.ID,
			Name:      company.Name,
			Country:   company.Country,
			Currency:  company.Currency,
			CreatedAt: company.CreatedAt,
		},
	}, nil
}

// ToUserResponse mapea la entidad a su representación pública (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		ManagerID: u.ManagerID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
