package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gastos-api/internal/application/auth"
	"github.com/jhoicas/Gastos-api/internal/application/dto"
	"github.com/jhoicas/Gastos-api/internal/domain"
	"github.com/jhoicas/Gastos-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Gastos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: map[string]*entity.User{}} }

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, other := range r.users {
		if other.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) ListByCompany(companyID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *fakeUserRepo) ListByManager(managerID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.ManagerID != nil && *u.ManagerID == managerID {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	if r.companies == nil {
		r.companies = map[string]*entity.Company{}
	}
	r.companies[c.ID] = c
	return nil
}
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) { return r.companies[id], nil }

type fakeRuleRepo struct {
	rules []*entity.ApprovalRule
}

func (r *fakeRuleRepo) Create(rule *entity.ApprovalRule) error {
	r.rules = append(r.rules, rule)
	return nil
}
func (r *fakeRuleRepo) Update(rule *entity.ApprovalRule) error { return nil }
func (r *fakeRuleRepo) GetByID(id string) (*entity.ApprovalRule, error) {
	return nil, nil
}
func (r *fakeRuleRepo) FirstByCompany(companyID string) (*entity.ApprovalRule, error) {
	for _, rule := range r.rules {
		if rule.CompanyID == companyID {
			return rule, nil
		}
	}
	return nil, nil
}
func (r *fakeRuleRepo) ListByCompany(companyID string) ([]*entity.ApprovalRule, error) {
	return r.rules, nil
}

// fakeCountries resuelve un conjunto fijo de países.
type fakeCountries struct{}

func (fakeCountries) CurrencyForCountry(_ context.Context, name string) (string, error) {
	switch name {
	case "Colombia":
		return "COP", nil
	case "United States":
		return "USD", nil
	}
	return "", domain.ErrUnknownCountry
}

func newAuthFixture() (*auth.AuthUseCase, *fakeUserRepo, *fakeCompanyRepo, *fakeRuleRepo) {
	users := newFakeUserRepo()
	companies := &fakeCompanyRepo{}
	rules := &fakeRuleRepo{}
	uc := auth.NewAuthUseCase(users, companies, rules, fakeCountries{}, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "gastos-api-test",
	})
	return uc, users, companies, rules
}

func signupRequest() dto.SignupRequest {
	return dto.SignupRequest{
		CompanyName: "Acme",
		Country:     "Colombia",
		UserName:    "Ana",
		Email:       "ana@acme.co",
		Password:    "super-secreta",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

// El signup deja el flujo funcional sin configuración extra: empresa con la
// divisa del país, usuario Admin y regla hybrid por defecto con el admin como
// designado.
func TestSignup_CreaEmpresaAdminYReglaPorDefecto(t *testing.T) {
	uc, users, companies, rules := newAuthFixture()

	out, err := uc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	assert.NotEmpty(t, out.Token)

	// Empresa con divisa resuelta del país.
	company, _ := companies.GetByID(out.User.CompanyID)
	require.NotNil(t, company)
	assert.Equal(t, "COP", company.Currency)

	// El hash nunca viaja en la respuesta y no es el password en claro.
	stored, _ := users.GetByID(out.User.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "super-secreta", stored.PasswordHash)

	// Regla por defecto: hybrid al 100% con el admin designado y como única base.
	rule, _ := rules.FirstByCompany(company.ID)
	require.NotNil(t, rule)
	assert.Equal(t, entity.RuleKindHybrid, rule.Kind)
	assert.True(t, rule.Percentage.Equal(entity.DefaultPercentage))
	require.NotNil(t, rule.SpecificApproverID)
	assert.Equal(t, out.User.ID, *rule.SpecificApproverID)
	assert.Equal(t, []string{out.User.ID}, rule.Approvers)

	// El token lleva los claims correctos.
	userID, companyID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, company.ID, companyID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestSignup_EmailDuplicado(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	_, err := uc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	_, err = uc.Signup(context.Background(), signupRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSignup_PaisDesconocido(t *testing.T) {
	uc, _, _, _ := newAuthFixture()

	in := signupRequest()
	in.Country = "Atlantis"
	_, err := uc.Signup(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrUnknownCountry)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Me
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidasEInvalidas(t *testing.T) {
	uc, _, _, _ := newAuthFixture()
	_, err := uc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@acme.co", Password: "super-secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@acme.co", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@acme.co", Password: "super-secreta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMe_DevuelveUsuarioYEmpresa(t *testing.T) {
	uc, _, _, _ := newAuthFixture()
	signedUp, err := uc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	me, err := uc.Me(signedUp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@acme.co", me.User.Email)
	assert.Equal(t, "Acme", me.Company.Name)
	assert.Equal(t, "COP", me.Company.Currency)

	_, err = uc.Me("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
