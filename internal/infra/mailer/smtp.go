package mailer

import (
	"context"

	"roombook/internal/pkg/config"
	"roombook/internal/pkg/errs"

	"gopkg.in/gomail.v2"
)

// SMTPGateway sends transactional mail over SMTP. Sends are synchronous and
// never retried; a failure is returned to the caller to report as a
// partial-success condition.
type SMTPGateway struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPGateway(cfg config.SMTPConfig) *SMTPGateway {
	return &SMTPGateway{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (g *SMTPGateway) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", g.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := g.dialer.DialAndSend(msg); err != nil {
		return errs.Wrap(err, "smtp send failed")
	}
	return nil
}
