package mail

import (
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
)

type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Sender    string
	Recipient string
}

// Mailer sends contact-form messages via SMTP.
type Mailer struct {
	cfg Config
}

func New(cfg Config) *Mailer {
	if cfg.Sender == "" {
		cfg.Sender = "no-reply@localhost"
	}
	return &Mailer{cfg: cfg}
}

// Send delivers a contact-form message to the configured recipient. The
// visitor's address goes into Reply-To so the operators can answer directly.
func (m *Mailer) Send(name, replyTo, message string) error {
	var auth smtp.Auth
	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	msg := m.buildMessage(name, replyTo, message)

	if err := smtp.SendMail(addr, auth, m.cfg.Sender, []string{m.cfg.Recipient}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (m *Mailer) buildMessage(name, replyTo, message string) []byte {
	// Form values end up inside headers, so line breaks must not pass
	// through: a CR or LF in the visitor's name would inject a header.
	name = stripLineBreaks(name)
	replyTo = stripLineBreaks(replyTo)

	return []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nReply-To: %s\r\nSubject: New message from %s\r\n",
			m.cfg.Sender, m.cfg.Recipient, replyTo, name) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n\r\n" +
			message,
	)
}

func stripLineBreaks(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}
