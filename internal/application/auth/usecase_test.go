package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stokly/insights-api/internal/application/auth"
	"github.com/stokly/insights-api/internal/application/dto"
	"github.com/stokly/insights-api/internal/domain"
	"github.com/stokly/insights-api/internal/domain/entity"
	pkgjwt "github.com/stokly/insights-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testJWT = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "stokly-insights-test",
}

// stubUserRepo repositorio de usuarios en memoria, indexado por email.
type stubUserRepo struct {
	byEmail map[string]*entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[user.Email] = user
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func registered(t *testing.T, repo *stubUserRepo, email, password, status string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.byEmail[email] = &entity.User{
		ID:           "user-1",
		CompanyID:    "company-1",
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Usuario",
		Status:       status,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

// Registro normaliza el email y nunca guarda la contraseña en claro.
func TestRegisterUser_OK(t *testing.T) {
	repo := newStubUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "  Ana@Stokly.COM ",
		Password:  "super-secreta",
		Name:      "Ana",
		CompanyID: "company-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@stokly.com", out.Email)
	assert.Equal(t, "active", out.Status)

	stored := repo.byEmail["ana@stokly.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "super-secreta", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("super-secreta")))
}

// Email repetido: ErrEmailAlreadyExists.
func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := newStubUserRepo()
	registered(t, repo, "ana@stokly.com", "super-secreta", "active")
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email:     "ana@stokly.com",
		Password:  "otra-clave",
		CompanyID: "company-1",
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Campos obligatorios ausentes: ErrInvalidInput.
func TestRegisterUser_CamposObligatorios(t *testing.T) {
	uc := auth.NewAuthUseCase(newStubUserRepo(), testJWT)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "a@b.com"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Login correcto: devuelve un JWT parseable con el user y company correctos.
func TestLogin_OK(t *testing.T) {
	repo := newStubUserRepo()
	registered(t, repo, "ana@stokly.com", "super-secreta", "active")
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "Ana@Stokly.com",
		Password: "super-secreta",
	})

	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, companyID, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "company-1", companyID)
}

// Contraseña incorrecta: ErrUnauthorized (indistinguible de usuario inexistente
// a nivel HTTP).
func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newStubUserRepo()
	registered(t, repo, "ana@stokly.com", "super-secreta", "active")
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@stokly.com",
		Password: "equivocada",
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Usuario inexistente: ErrUserNotFound.
func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newStubUserRepo(), testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@stokly.com",
		Password: "lo-que-sea",
	})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Cuenta suspendida: ErrForbidden aunque la contraseña sea correcta.
func TestLogin_CuentaSuspendida(t *testing.T) {
	repo := newStubUserRepo()
	registered(t, repo, "ana@stokly.com", "super-secreta", "suspended")
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@stokly.com",
		Password: "super-secreta",
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
