package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	"text/template"
	"time"

	"soko/pkg/config"
)

type IMailService interface {
	Send(to, subject, body string) error
	SendPasswordReset(to, token string) error
}

// SMTPConfig holds the mail transport settings.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AppBaseURL string
}

type smtpMailService struct {
	cfg SMTPConfig
	tpl *template.Template
}

const resetMailTemplate = `Forgot your password?

Submit a request with your new password and password confirmation here:
{{.ResetURL}}

This link is valid for 10 minutes. If you didn't forget your password, please ignore this email.
`

func NewSMTPMailService(cfg *config.Config) IMailService {
	return &smtpMailService{
		cfg: SMTPConfig{
			Host:       cfg.SMTPHost,
			Port:       cfg.SMTPPort,
			Username:   cfg.SMTPUsername,
			Password:   cfg.SMTPPassword,
			From:       cfg.MailFrom,
			AppBaseURL: cfg.AppBaseURL,
		},
		tpl: template.Must(template.New("reset").Parse(resetMailTemplate)),
	}
}

func (s *smtpMailService) SendPasswordReset(to, token string) error {
	link := fmt.Sprintf("%s/api/v1/auth/resetPassword/%s",
		strings.TrimRight(s.cfg.AppBaseURL, "/"), url.PathEscape(token))

	var body bytes.Buffer
	if err := s.tpl.Execute(&body, map[string]string{"ResetURL": link}); err != nil {
		return err
	}
	return s.Send(to, "Your password reset token (valid for 10 min)", body.String())
}

func (s *smtpMailService) Send(to, subject, body string) error {
	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("\r\n")
	write("%s\r\n", body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err = c.Auth(auth); err != nil {
			return err
		}
	}
	if err = c.Mail(envelopeAddress(s.cfg.From)); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}

// envelopeAddress strips a display name like "Soko <no-reply@soko.app>" down
// to the bare address the MAIL FROM command wants.
func envelopeAddress(from string) string {
	if start := strings.IndexByte(from, '<'); start >= 0 {
		if end := strings.IndexByte(from[start:], '>'); end > 0 {
			return from[start+1 : start+end]
		}
	}
	return from
}
