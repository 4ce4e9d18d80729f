package usecase

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UserUseCase perfil del usuario autenticado (consulta y edición parcial).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetProfile devuelve el perfil del usuario.
func (uc *UserUseCase) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

// UpdateProfile aplica un PATCH parcial sobre el perfil.
// Cambiar el email a uno ya registrado retorna ErrEmailAlreadyExists.
func (uc *UserUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil && *in.Email != user.Email {
		existing, _ := uc.repo.GetByEmail(*in.Email)
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ToUserResponse mapea un usuario al DTO de la API (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
