package mailer

import (
	"newsroom/config"

	"gopkg.in/gomail.v2"
)

// SMTP delivers mail through a gomail dialer. One message can carry any
// number of recipients; the notification pipeline calls it once per
// recipient so a bounced address cannot take down the rest of a fanout.
type SMTP struct {
	cfg config.SMTPConfig
}

func NewSMTP(cfg config.SMTPConfig) *SMTP {
	return &SMTP{cfg: cfg}
}

func (m *SMTP) Send(subject, body string, to []string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return d.DialAndSend(msg)
}
