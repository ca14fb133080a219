package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/unigate/internal/common"
)

type Encryption string

const (
	EncNone     Encryption = "none"
	EncStartTLS Encryption = "starttls"
	EncTLS      Encryption = "tls"
)

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	Encryption Encryption
	Timeout    time.Duration
}

// SMTPDispatcher mails credentials as a plain-text message.
type SMTPDispatcher struct {
	cfg  SMTPConfig
	send func(ctx context.Context, to string, msg []byte) error
}

func NewSMTPDispatcher(cfg SMTPConfig) *SMTPDispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	switch Encryption(strings.ToLower(string(cfg.Encryption))) {
	case EncNone, EncTLS:
		cfg.Encryption = Encryption(strings.ToLower(string(cfg.Encryption)))
	default:
		cfg.Encryption = EncStartTLS
	}
	d := &SMTPDispatcher{cfg: cfg}
	d.send = d.sendMail
	return d
}

func (d *SMTPDispatcher) Deliver(ctx context.Context, address string, p Payload) Result {
	to, err := mail.ParseAddress(address)
	if err != nil {
		return Rejected("invalid address")
	}

	msg := d.buildMessage(to, p)
	defer common.WipeByteArray(msg)

	if err := d.send(ctx, to.Address, msg); err != nil {
		// 5xx replies are final; everything else may succeed later.
		if code := replyCode(err); code >= 500 && code < 600 {
			return Rejected(err.Error())
		}
		return Failed(err.Error())
	}
	return Delivered()
}

func replyCode(err error) int {
	var tp *textproto.Error
	if errors.As(err, &tp) {
		return tp.Code
	}
	return 0
}

func (d *SMTPDispatcher) buildMessage(to *mail.Address, p Payload) []byte {
	from := (&mail.Address{Name: d.cfg.FromName, Address: d.cfg.From}).String()

	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to.String())
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", "Your account at "+p.TenantID))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Hello %s,\r\n\r\n", p.DisplayName)
	b.WriteString("An account has been created for you.\r\n\r\n")
	fmt.Fprintf(&b, "Username: %s\r\n", p.Username)
	b.WriteString("Password: ")
	b.Write(p.Password)
	b.WriteString("\r\n\r\nPlease sign in and keep these credentials private.\r\n")
	return b.Bytes()
}

func (d *SMTPDispatcher) sendMail(ctx context.Context, to string, msg []byte) error {
	addr := net.JoinHostPort(d.cfg.Host, strconv.Itoa(d.cfg.Port))

	dialer := net.Dialer{Timeout: d.cfg.Timeout}
	var (
		conn net.Conn
		err  error
	)
	if d.cfg.Encryption == EncTLS {
		td := tls.Dialer{NetDialer: &dialer, Config: &tls.Config{ServerName: d.cfg.Host}}
		conn, err = td.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(d.cfg.Timeout))
	}

	c, err := smtp.NewClient(conn, d.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer c.Close()

	if d.cfg.Encryption == EncStartTLS {
		if ok, _ := c.Extension("STARTTLS"); !ok {
			return fmt.Errorf("smtp: server does not offer STARTTLS")
		}
		if err := c.StartTLS(&tls.Config{ServerName: d.cfg.Host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	if d.cfg.Username != "" {
		if err := c.Auth(smtp.PlainAuth("", d.cfg.Username, d.cfg.Password, d.cfg.Host)); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := c.Mail(d.cfg.From); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("smtp RCPT TO: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}
	return c.Quit()
}
