package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

const selectUser = `
	SELECT id, username, email, password_hash, first_name, last_name, created_at, updated_at
	FROM users`

func (r *UserRepo) scanOne(row pgx.Row, verb string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", verb, err)
	}
	return &u, nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	row := r.q.QueryRow(context.Background(), selectUser+` WHERE id = $1`, id)
	return r.scanOne(row, "get user")
}

// GetByUsername obtiene un usuario por username (login).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	row := r.q.QueryRow(context.Background(), selectUser+` WHERE username = $1`, username)
	return r.scanOne(row, "get user by username")
}

// GetByEmail obtiene un usuario por email (reseteo de contraseña).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	row := r.q.QueryRow(context.Background(), selectUser+` WHERE email = $1`, email)
	return r.scanOne(row, "get user by email")
}

// Update actualiza los datos de perfil del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET username = $2, email = $3, first_name = $4, last_name = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdatePassword reemplaza el hash de contraseña del usuario.
func (r *UserRepo) UpdatePassword(userID, passwordHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		userID, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	return nil
}

// Delete elimina un usuario. Sus asientos del libro quedan con created_by NULL (SET NULL).
func (r *UserRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
