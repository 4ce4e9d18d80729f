package entity

import "time"

// PasswordResetTokenTTL vigencia del token de reseteo.
const PasswordResetTokenTTL = 24 * time.Hour

// PasswordResetToken token de un solo uso para restablecer contraseña.
type PasswordResetToken struct {
	ID        string
	UserID    string
	Token     string // UUID opaco que viaja en el enlace del correo
	IsUsed    bool
	CreatedAt time.Time
}

// IsValid indica si el token puede usarse: no consumido y dentro de las 24 horas.
func (t PasswordResetToken) IsValid(now time.Time) bool {
	return !t.IsUsed && now.Before(t.CreatedAt.Add(PasswordResetTokenTTL))
}
