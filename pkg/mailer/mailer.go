package mailer

import (
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/EDT-ELT-DEPARTMENT/edt-udl-2026-sub000/config"
)

// Sender canal de remise des messages sortants.
// L'appelant ne distingue que succès/échec ; la politique de relance lui appartient.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender implémentation gomail du canal de remise
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewSMTPSender construit le canal SMTP.
// Retourne nil quand aucun hôte SMTP n'est configuré : le dispatcher
// dégradera alors toute remise en échec non bloquant.
func NewSMTPSender(cfg *config.MailConfig, logger *zap.Logger) *SMTPSender {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

// Send remet un message texte brut. Une seule tentative par appel.
func (s *SMTPSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Warn("échec de l'envoi SMTP", zap.String("to", to), zap.Error(err))
		return err
	}
	return nil
}
