package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// PasswordResetTokenRepository define el puerto de persistencia para tokens de reseteo.
type PasswordResetTokenRepository interface {
	Create(token *entity.PasswordResetToken) error
	GetByToken(token string) (*entity.PasswordResetToken, error)
	MarkUsed(id string) error
}
