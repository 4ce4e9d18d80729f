package mail

import (
	"fmt"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"gopkg.in/gomail.v2"
)

var _ auth.Mailer = (*GomailSender)(nil)

// GomailSender envía correos transaccionales vía SMTP con gomail.
// Si la configuración no trae host SMTP, queda en modo deshabilitado y solo
// loggea el enlace (útil en desarrollo local sin servidor de correo).
type GomailSender struct {
	cfg config.MailConfig
	log *logger.Logger
}

// NewGomailSender construye el emisor de correo a partir de la configuración SMTP.
func NewGomailSender(cfg config.MailConfig, log *logger.Logger) *GomailSender {
	return &GomailSender{cfg: cfg, log: log}
}

// SendPasswordReset envía el correo con el enlace de restablecimiento de contraseña.
func (s *GomailSender) SendPasswordReset(to, resetLink string) error {
	if s.cfg.Host == "" {
		s.log.Info().Str("to", to).Str("reset_link", resetLink).
			Msg("SMTP deshabilitado, correo de reseteo no enviado")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Restablecimiento de contraseña")
	m.SetBody("text/html", fmt.Sprintf(`
		<p>Recibimos una solicitud para restablecer tu contraseña.</p>
		<p><a href="%s">Haz clic aquí para crear una nueva contraseña</a></p>
		<p>El enlace vence en 24 horas. Si no solicitaste el cambio, ignora este correo.</p>`,
		resetLink))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send password reset mail: %w", err)
	}
	s.log.Info().Str("to", to).Msg("Correo de reseteo enviado")
	return nil
}
