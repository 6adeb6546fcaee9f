package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendPasswordResetEmail sends a password reset email with the given
// Firebase-generated reset link.
func (s *EmailService) SendPasswordResetEmail(toEmail, resetLink string) error {
	htmlContent, err := s.renderLinkEmail(linkEmailData{
		Title:      "Restablecer contraseña",
		Intro:      "Recibimos una solicitud para restablecer la contraseña de tu cuenta.",
		ButtonText: "Restablecer contraseña",
		Link:       resetLink,
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	message := s.buildEmail(toEmail, "Restablecer contraseña - El Esfuerzo", "text/html", htmlContent)
	return s.sendEmail(toEmail, message)
}

// SendVerificationEmail sends an account verification email with the given
// Firebase-generated verification link.
func (s *EmailService) SendVerificationEmail(toEmail, verifyLink string) error {
	htmlContent, err := s.renderLinkEmail(linkEmailData{
		Title:      "Verifica tu correo",
		Intro:      "Tu cuenta fue creada. Verifica tu correo para poder iniciar sesión.",
		ButtonText: "Verificar correo",
		Link:       verifyLink,
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	message := s.buildEmail(toEmail, "Verifica tu correo - El Esfuerzo", "text/html", htmlContent)
	return s.sendEmail(toEmail, message)
}

// SendPurchaseOrderEmail sends a plain-text restock order to a supplier.
func (s *EmailService) SendPurchaseOrderEmail(toEmail, body string) error {
	message := s.buildEmail(toEmail, "Pedido El Esfuerzo", "text/plain", body)
	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildEmail builds an email message with the given content type
func (s *EmailService) buildEmail(to, subject, contentType, body string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: %s; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
		contentType,
	)

	return []byte(headers + body)
}

type linkEmailData struct {
	Title      string
	Intro      string
	ButtonText string
	Link       string
}

// renderLinkEmail renders the shared single-action-link email template
func (s *EmailService) renderLinkEmail(data linkEmailData) (string, error) {
	tmpl, err := template.New("link_email").Parse(linkEmailTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

const linkEmailTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
</head>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 20px;">
  <div style="max-width: 520px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
    <h2 style="color: #222; margin-top: 0;">{{.Title}}</h2>
    <p style="color: #555;">{{.Intro}}</p>
    <p style="text-align: center; margin: 32px 0;">
      <a href="{{.Link}}" style="background: #2d6cdf; color: #ffffff; text-decoration: none; padding: 12px 28px; border-radius: 4px; display: inline-block;">{{.ButtonText}}</a>
    </p>
    <p style="color: #999; font-size: 12px;">Si no solicitaste este correo, puedes ignorarlo.</p>
    <p style="color: #999; font-size: 12px;">— Almacén El Esfuerzo</p>
  </div>
</body>
</html>`
