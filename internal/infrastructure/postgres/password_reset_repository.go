package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.PasswordResetTokenRepository = (*PasswordResetRepo)(nil)

// PasswordResetRepo implementación del puerto PasswordResetTokenRepository sobre PostgreSQL.
type PasswordResetRepo struct {
	q Querier
}

// NewPasswordResetRepository construye el adaptador de persistencia para tokens de reseteo.
func NewPasswordResetRepository(q Querier) *PasswordResetRepo {
	return &PasswordResetRepo{q: q}
}

// Create persiste un token de reseteo.
func (r *PasswordResetRepo) Create(token *entity.PasswordResetToken) error {
	query := `
		INSERT INTO password_reset_tokens (id, user_id, token, is_used, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		token.ID, token.UserID, token.Token, token.IsUsed, token.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert password reset token: %w", err)
	}
	return nil
}

// GetByToken obtiene un token por su valor opaco.
func (r *PasswordResetRepo) GetByToken(token string) (*entity.PasswordResetToken, error) {
	query := `
		SELECT id, user_id, token, is_used, created_at
		FROM password_reset_tokens WHERE token = $1`
	var t entity.PasswordResetToken
	err := r.q.QueryRow(context.Background(), query, token).Scan(
		&t.ID, &t.UserID, &t.Token, &t.IsUsed, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get password reset token: %w", err)
	}
	return &t, nil
}

// MarkUsed consume el token: un solo uso.
func (r *PasswordResetRepo) MarkUsed(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE password_reset_tokens SET is_used = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark password reset token used: %w", err)
	}
	return nil
}
