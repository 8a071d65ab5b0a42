package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// IMailService is the outbound notification contract. Sends are best-effort
// from the caller's point of view except the explicit invoice send, where
// the send itself is the requested operation.
type IMailService interface {
	SendInvoiceEmail(to string, inv InvoiceEmailData) error
	SendWelcomeEmail(to, fullName string) error
	SendMailToResetPassword(to, token string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseSSL   bool

	AppName    string
	AppBaseURL string
}

type InvoiceEmailData struct {
	SenderName     string
	BrandName      string
	Price          float64
	PaymentDetails string
	InvoiceID      string
}

// NewMailService returns the SMTP implementation, or the local simulated
// sender when no SMTP credential is configured. The simulation keeps deal
// and admission mutations working without email infrastructure.
func NewMailService(cfg SMTPConfig) IMailService {
	if cfg.Password == "" {
		log.Println("No SMTP credential configured, using simulated mail sender")
		return &mockMailService{appBaseURL: cfg.AppBaseURL}
	}
	return newSMTPMailService(cfg)
}

// ------------------- Simulated sender -------------------

type mockMailService struct {
	appBaseURL string
}

func (m *mockMailService) deliver(to, subject string) error {
	log.Printf("MOCK EMAIL SENT: to=%s subject=%q", to, subject)
	time.Sleep(time.Second)
	return nil
}

func (m *mockMailService) SendInvoiceEmail(to string, inv InvoiceEmailData) error {
	return m.deliver(to, fmt.Sprintf("Invoice: %s Campaign", inv.BrandName))
}

func (m *mockMailService) SendWelcomeEmail(to, fullName string) error {
	return m.deliver(to, "Access Granted")
}

func (m *mockMailService) SendMailToResetPassword(to, token string) error {
	return m.deliver(to, "Reset your password")
}

// ------------------- SMTP implementation -------------------

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func newSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("html").Parse(baseHTMLTemplate)),
		textTpl: template.Must(template.New("text").Parse(plainTextTemplate)),
	}
}

type emailData struct {
	Title     string
	Intro     string
	Highlight string
	Details   string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

func (s *smtpMailService) SendInvoiceEmail(to string, inv InvoiceEmailData) error {
	sender := inv.SenderName
	if sender == "" {
		sender = "Partner"
	}

	data := emailData{
		Title:     fmt.Sprintf("Invoice from %s", sender),
		Intro:     fmt.Sprintf("Please find details for the %s campaign invoice below.", inv.BrandName),
		Highlight: fmt.Sprintf("Amount Due: $%.2f", inv.Price),
		Details:   inv.PaymentDetails,
		ButtonURL: fmt.Sprintf("%s/invoices/%s", strings.TrimRight(s.cfg.AppBaseURL, "/"), inv.InvoiceID),
		ButtonTxt: "Review Full Invoice",
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	}
	return s.render(to, fmt.Sprintf("Invoice: %s Campaign", inv.BrandName), data)
}

func (s *smtpMailService) SendWelcomeEmail(to, fullName string) error {
	name := fullName
	if name == "" {
		name = "Operator"
	}

	data := emailData{
		Title:     "Access Granted.",
		Intro:     fmt.Sprintf("Hi %s, your application has been approved. You now have full access to your dashboard.", name),
		ButtonURL: fmt.Sprintf("%s/dashboard", strings.TrimRight(s.cfg.AppBaseURL, "/")),
		ButtonTxt: "Enter Dashboard",
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	}
	return s.render(to, fmt.Sprintf("Welcome to %s: Access Granted", s.cfg.AppName), data)
}

func (s *smtpMailService) SendMailToResetPassword(to, token string) error {
	data := emailData{
		Title:     "Reset your password",
		Intro:     "We received a request to reset your password. If you didn't request this, you can safely ignore this email.",
		Highlight: fmt.Sprintf("Reset code: %s", token),
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	}
	return s.render(to, "Reset your password", data)
}

func (s *smtpMailService) render(to, subject string, data emailData) error {
	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}
	return s.send(to, subject, hb.String(), tb.String())
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
</head>
<body style="margin:0;padding:0;background:#09090b;color:#ffffff;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;">
  <div style="max-width:600px;margin:0 auto;padding:40px;">
    <div style="font-weight:700;font-size:20px;color:#818cf8;margin-bottom:24px;">{{.AppName}}</div>
    <h1 style="font-size:30px;font-weight:800;letter-spacing:-0.03em;margin-bottom:16px;">{{.Title}}</h1>
    <p style="font-size:16px;color:#a1a1aa;line-height:1.6;">{{.Intro}}</p>
    {{if .Highlight}}
      <div style="background:#18181b;padding:20px;border-radius:8px;margin:20px 0;">
        <p style="margin:0;font-size:22px;font-weight:700;color:#ffffff;">{{.Highlight}}</p>
      </div>
    {{end}}
    {{if .Details}}
      <div style="border:1px solid #27272a;padding:20px;border-radius:8px;margin:20px 0;">
        <p style="margin:0 0 8px 0;font-weight:700;">Payment Details:</p>
        <p style="white-space:pre-line;margin:0;color:#a1a1aa;">{{.Details}}</p>
      </div>
    {{end}}
    {{if .ButtonURL}}
      <a href="{{.ButtonURL}}" style="display:inline-block;background:#ffffff;color:#09090b;padding:14px 28px;border-radius:9999px;font-weight:700;text-decoration:none;">{{.ButtonTxt}}</a>
    {{end}}
    <p style="margin-top:40px;font-size:13px;color:#52525b;">© {{.Year}} {{.AppName}}. All rights reserved.</p>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}
{{if .Highlight}}
{{.Highlight}}
{{end}}{{if .Details}}
Payment details:
{{.Details}}
{{end}}{{if .ButtonURL}}
Open this link:
{{.ButtonURL}}
{{end}}
- {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	fromHeader := s.cfg.From
	if name := strings.TrimSpace(s.cfg.FromName); name != "" {
		fromHeader = fmt.Sprintf("%s <%s>", name, s.cfg.From)
	}

	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var (
		c   *smtp.Client
		err error
	)

	if s.cfg.UseSSL {
		// SMTPS, usually port 465
		conn, dialErr := tls.Dial("tcp", addr, tlsCfg)
		if dialErr != nil {
			return dialErr
		}
		defer conn.Close()

		c, err = smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
	} else {
		// STARTTLS, usually port 587
		dialer := &net.Dialer{Timeout: 10 * time.Second}
		conn, dialErr := dialer.Dial("tcp", addr)
		if dialErr != nil {
			return dialErr
		}
		defer conn.Close()

		c, err = smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}

		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else {
			return fmt.Errorf("server does not support STARTTLS")
		}
	}
	defer c.Quit()

	if err = c.Auth(auth); err != nil {
		return err
	}
	if err = c.Mail(s.cfg.From); err != nil {
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
