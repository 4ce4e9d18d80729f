package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Mailer puerto de envío del correo de reseteo de contraseña.
type Mailer interface {
	SendPasswordReset(to, resetLink string) error
}

// AuthUseCase casos de uso de autenticación: registro, login y reseteo de contraseña.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	resetRepo repository.PasswordResetTokenRepository
	mailer    Mailer
	jwtCfg    JWTConfig
	resetURL  string // base del enlace que viaja en el correo
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	resetRepo repository.PasswordResetTokenRepository,
	mailer Mailer,
	jwtCfg JWTConfig,
	resetURL string,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		mailer:    mailer,
		jwtCfg:    jwtCfg,
		resetURL:  resetURL,
	}
}

// Register crea un usuario: valida unicidad de username y email, hashea la
// contraseña con bcrypt y persiste.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.userRepo.GetByUsername(in.Username); existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	if existing, _ := uc.userRepo.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return usecase.ToUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *usecase.ToUserResponse(user),
	}, nil
}

// RequestPasswordReset crea un token de 24h y envía el enlace por correo.
// Si el email no existe no hace nada; el llamador siempre responde éxito
// genérico para no revelar qué correos están registrados.
func (uc *AuthUseCase) RequestPasswordReset(in dto.PasswordResetRequest) error {
	if in.Email == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	token := &entity.PasswordResetToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     uuid.New().String(),
		CreatedAt: time.Now(),
	}
	if err := uc.resetRepo.Create(token); err != nil {
		return err
	}
	return uc.mailer.SendPasswordReset(user.Email, uc.resetURL+"/"+token.Token)
}

// ConfirmPasswordReset valida el token (no usado, menos de 24h), fija la nueva
// contraseña y marca el token como consumido.
func (uc *AuthUseCase) ConfirmPasswordReset(in dto.PasswordResetConfirmRequest) error {
	if in.Token == "" || in.NewPassword == "" {
		return domain.ErrInvalidInput
	}
	token, err := uc.resetRepo.GetByToken(in.Token)
	if err != nil {
		return err
	}
	if token == nil || !token.IsValid(time.Now()) {
		return domain.ErrInvalidToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(token.UserID, string(hash)); err != nil {
		return err
	}
	return uc.resetRepo.MarkUsed(token.ID)
}
