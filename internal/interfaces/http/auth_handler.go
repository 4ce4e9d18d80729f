package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// AuthHandler maneja registro, login y reseteo de contraseña (público),
// más el perfil del usuario autenticado (protegido).
type AuthHandler struct {
	uc     *auth.AuthUseCase
	userUC *usecase.UserUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase, userUC *usecase.UserUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, userUC: userUC}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username, email y password son requeridos"})
		}
		if err == domain.ErrUsernameTaken {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USERNAME_TAKEN", Message: "el nombre de usuario ya existe"})
		}
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_TAKEN", Message: "el email ya está registrado"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if err == domain.ErrUnauthorized || err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: "usuario o contraseña incorrectos"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// RequestPasswordReset godoc
// @Summary      Solicitar reseteo de contraseña
// @Description  Siempre responde 200 con mensaje genérico, exista o no el email.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PasswordResetRequest  true  "Email de la cuenta"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var in dto.PasswordResetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.RequestPasswordReset(in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email es requerido"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "si el email existe, recibirás un enlace de reseteo"})
}

// ConfirmPasswordReset godoc
// @Summary      Confirmar reseteo de contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PasswordResetConfirmRequest  true  "Token del correo y nueva contraseña"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var in dto.PasswordResetConfirmRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ConfirmPasswordReset(in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token y new_password son requeridos"})
		}
		if err == domain.ErrInvalidToken {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido, usado o expirado"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}

// GetProfile godoc
// @Summary      Perfil del usuario autenticado
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/profile [get]
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.userUC.GetProfile(userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil del usuario autenticado
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/profile [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.userUC.UpdateProfile(userID, in)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_TAKEN", Message: "el email ya está registrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}
