package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"os"

	"acme_shop/internal/domain/entities"
	"acme_shop/internal/usecase/interfaces"

	"github.com/jordan-wright/email"
)

// SMTPMailer sends transactional email over SMTP.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

var _ interfaces.IMailSender = (*SMTPMailer)(nil)

// NewSMTPMailerFromEnv reads SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD
// and MAIL_FROM. Returns nil when SMTP_HOST is unset so callers can run
// without a mail provider.
func NewSMTPMailerFromEnv() *SMTPMailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = user
	}

	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}
	return &SMTPMailer{
		addr: host + ":" + port,
		auth: auth,
		from: from,
	}
}

var verificationTmpl = template.Must(template.New("verification").Parse(`
<h2>Welcome, {{.Name}}!</h2>
<p>Your account is pending verification by our team.</p>
<p>Once verified, you can check your status here:</p>
<p><a href="{{.VerifyURL}}">{{.VerifyURL}}</a></p>
`))

var passwordResetTmpl = template.Must(template.New("password_reset").Parse(`
<h2>Password reset requested</h2>
<p>Click the link below to choose a new password. The link expires in one hour.</p>
<p><a href="{{.ResetURL}}">{{.ResetURL}}</a></p>
<p>If you did not request this, you can ignore this email.</p>
`))

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(`
<h2>Thanks for your order, {{.CustomerName}}!</h2>
<p>Order <strong>{{.ID}}</strong> was received and is being processed.</p>
<table>
{{range .Items}}<tr><td>{{.ProductName}}{{if .Size}} ({{.Size}}){{end}}</td><td>x{{.Quantity}}</td><td>${{printf "%.2f" .Price}}</td></tr>
{{end}}</table>
<p>Total: <strong>${{printf "%.2f" .TotalAmount}}</strong></p>
`))

func (m *SMTPMailer) SendVerificationEmail(ctx context.Context, u entities.User, verifyURL string) error {
	var body bytes.Buffer
	if err := verificationTmpl.Execute(&body, map[string]string{
		"Name":      u.Name,
		"VerifyURL": verifyURL,
	}); err != nil {
		return err
	}
	return m.send(u.Email, "Welcome! Your account is pending verification", body.Bytes())
}

func (m *SMTPMailer) SendPasswordResetEmail(ctx context.Context, to, resetURL string) error {
	var body bytes.Buffer
	if err := passwordResetTmpl.Execute(&body, map[string]string{
		"ResetURL": resetURL,
	}); err != nil {
		return err
	}
	return m.send(to, "Reset your password", body.Bytes())
}

func (m *SMTPMailer) SendOrderConfirmation(ctx context.Context, o entities.Order) error {
	var body bytes.Buffer
	if err := orderConfirmationTmpl.Execute(&body, o); err != nil {
		return err
	}
	subject := fmt.Sprintf("Order confirmation #%s", o.ID)
	return m.send(o.CustomerEmail, subject, body.Bytes())
}

func (m *SMTPMailer) send(to, subject string, htmlBody []byte) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.HTML = htmlBody
	return e.Send(m.addr, m.auth)
}
