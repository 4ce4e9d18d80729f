package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdatePassword(userID, hash string) error {
	if u, ok := r.users[userID]; ok {
		u.PasswordHash = hash
	}
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

type fakeResetRepo struct {
	tokens map[string]*entity.PasswordResetToken // por valor del token
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: map[string]*entity.PasswordResetToken{}}
}

func (r *fakeResetRepo) Create(t *entity.PasswordResetToken) error {
	cp := *t
	r.tokens[t.Token] = &cp
	return nil
}

func (r *fakeResetRepo) GetByToken(token string) (*entity.PasswordResetToken, error) {
	if t, ok := r.tokens[token]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeResetRepo) MarkUsed(id string) error {
	for _, t := range r.tokens {
		if t.ID == id {
			t.IsUsed = true
		}
	}
	return nil
}

// fakeMailer captura el último correo "enviado".
type fakeMailer struct {
	lastTo   string
	lastLink string
	sent     int
}

func (m *fakeMailer) SendPasswordReset(to, resetLink string) error {
	m.lastTo = to
	m.lastLink = resetLink
	m.sent++
	return nil
}

const testResetURL = "http://localhost:3000/reset-password"

func newTestUseCase() (*auth.AuthUseCase, *fakeUserRepo, *fakeResetRepo, *fakeMailer) {
	userRepo := newFakeUserRepo()
	resetRepo := newFakeResetRepo()
	mailer := &fakeMailer{}
	uc := auth.NewAuthUseCase(userRepo, resetRepo, mailer, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "almacen-api-test",
	}, testResetURL)
	return uc, userRepo, resetRepo, mailer
}

func registerTestUser(t *testing.T, uc *auth.AuthUseCase) *dto.UserResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{
		Username: "almacenista",
		Email:    "almacenista@example.com",
		Password: "secreta-123",
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Register / Login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConHashBcrypt(t *testing.T) {
	uc, userRepo, _, _ := newTestUseCase()

	out := registerTestUser(t, uc)
	require.NotEmpty(t, out.ID)
	assert.Equal(t, "almacenista", out.Username)

	stored, err := userRepo.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta-123", stored.PasswordHash,
		"la contraseña nunca se guarda en plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(stored.PasswordHash), []byte("secreta-123")))
}

func TestRegister_UsernameDuplicado_RetornaError(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	registerTestUser(t, uc)

	_, err := uc.Register(dto.RegisterRequest{
		Username: "almacenista",
		Email:    "otro@example.com",
		Password: "secreta-123",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_EmailDuplicado_RetornaError(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	registerTestUser(t, uc)

	_, err := uc.Register(dto.RegisterRequest{
		Username: "otro",
		Email:    "almacenista@example.com",
		Password: "secreta-123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesValidas_RetornaToken(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	registerTestUser(t, uc)

	out, err := uc.Login(dto.LoginRequest{Username: "almacenista", Password: "secreta-123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "almacenista", out.User.Username)
}

func TestLogin_PasswordIncorrecta_RetornaUnauthorized(t *testing.T) {
	uc, _, _, _ := newTestUseCase()
	registerTestUser(t, uc)

	_, err := uc.Login(dto.LoginRequest{Username: "almacenista", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_RetornaUnauthorized(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	_, err := uc.Login(dto.LoginRequest{Username: "nadie", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reseteo de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestPasswordReset_EnviaEnlaceConToken(t *testing.T) {
	uc, _, resetRepo, mailer := newTestUseCase()
	registerTestUser(t, uc)

	err := uc.RequestPasswordReset(dto.PasswordResetRequest{Email: "almacenista@example.com"})
	require.NoError(t, err)

	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "almacenista@example.com", mailer.lastTo)
	require.True(t, strings.HasPrefix(mailer.lastLink, testResetURL+"/"),
		"el enlace debe construirse sobre la URL base configurada")

	// El token del enlace debe existir en el repositorio
	tokenValue := strings.TrimPrefix(mailer.lastLink, testResetURL+"/")
	stored, err := resetRepo.GetByToken(tokenValue)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.IsUsed)
}

// Email desconocido: éxito silencioso, sin correo, para no revelar cuentas.
func TestRequestPasswordReset_EmailDesconocido_NoEnviaNada(t *testing.T) {
	uc, _, _, mailer := newTestUseCase()

	err := uc.RequestPasswordReset(dto.PasswordResetRequest{Email: "fantasma@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 0, mailer.sent)
}

func TestConfirmPasswordReset_CambiaPasswordYConsumeToken(t *testing.T) {
	uc, _, resetRepo, mailer := newTestUseCase()
	registerTestUser(t, uc)

	require.NoError(t, uc.RequestPasswordReset(dto.PasswordResetRequest{Email: "almacenista@example.com"}))
	tokenValue := strings.TrimPrefix(mailer.lastLink, testResetURL+"/")

	err := uc.ConfirmPasswordReset(dto.PasswordResetConfirmRequest{
		Token:       tokenValue,
		NewPassword: "nueva-secreta-456",
	})
	require.NoError(t, err)

	// La nueva contraseña sirve para login; la anterior ya no
	_, err = uc.Login(dto.LoginRequest{Username: "almacenista", Password: "nueva-secreta-456"})
	assert.NoError(t, err)
	_, err = uc.Login(dto.LoginRequest{Username: "almacenista", Password: "secreta-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Un solo uso: reutilizar el token debe fallar
	err = uc.ConfirmPasswordReset(dto.PasswordResetConfirmRequest{
		Token:       tokenValue,
		NewPassword: "otra-mas-789",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	stored, _ := resetRepo.GetByToken(tokenValue)
	require.NotNil(t, stored)
	assert.True(t, stored.IsUsed)
}

func TestConfirmPasswordReset_TokenExpirado_RetornaInvalidToken(t *testing.T) {
	uc, _, resetRepo, _ := newTestUseCase()
	out := registerTestUser(t, uc)

	// Token creado hace 25 horas (vigencia: 24)
	expired := &entity.PasswordResetToken{
		ID:        "t-1",
		UserID:    out.ID,
		Token:     "token-viejo",
		CreatedAt: time.Now().Add(-25 * time.Hour),
	}
	require.NoError(t, resetRepo.Create(expired))

	err := uc.ConfirmPasswordReset(dto.PasswordResetConfirmRequest{
		Token:       "token-viejo",
		NewPassword: "nueva-secreta-456",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestConfirmPasswordReset_TokenInexistente_RetornaInvalidToken(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	err := uc.ConfirmPasswordReset(dto.PasswordResetConfirmRequest{
		Token:       "no-existe",
		NewPassword: "nueva-secreta-456",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
