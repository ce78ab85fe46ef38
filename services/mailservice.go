package services

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"codewithbuder/model"

	"github.com/joho/godotenv"
)

type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

func LoadEmailConfig() (*EmailConfig, error) {
	// Load .env only when running locally.
	if os.Getenv("RENDER") == "" {
		if err := godotenv.Load(); err != nil {
			fmt.Println("Warning: .env file not loaded, fallback to OS env vars")
		}
	}

	config := &EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
	}

	if config.Host == "" || config.Port == "" || config.Username == "" || config.Password == "" {
		return nil, fmt.Errorf("missing required SMTP environment variables")
	}

	return config, nil
}

func SendingEmail(to, subject, body string) error {
	config, err := LoadEmailConfig()
	if err != nil {
		return fmt.Errorf("config loading error: %w", err)
	}

	addr := config.Host + ":" + config.Port
	auth := smtp.PlainAuth("", config.Username, config.Password, config.Host)

	from := config.Username
	mime := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\n\n"
	message := "From: " + from + "\n" +
		"To: " + to + "\n" +
		"Subject: " + subject + "\n" +
		mime + "\n" +
		body

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("SMTP send error: %w", err)
	}
	return nil
}

// SMSSender delivers phone verification codes.
type SMSSender interface {
	SendOTP(phone, otp, ref string) error
}

// SMTPGateway delivers OTPs through a carrier email-to-SMS gateway
// (<number>@<gateway domain>).
type SMTPGateway struct {
	GatewayDomain string
}

func NewSMTPGatewayFromEnv() *SMTPGateway {
	return &SMTPGateway{GatewayDomain: os.Getenv("SMS_GATEWAY_DOMAIN")}
}

func (g *SMTPGateway) SendOTP(phone, otp, ref string) error {
	if g.GatewayDomain == "" {
		return fmt.Errorf("SMS_GATEWAY_DOMAIN is not set")
	}
	to := strings.TrimPrefix(phone, "+") + "@" + g.GatewayDomain
	body := fmt.Sprintf("Your codewithbuder verification code is %s (ref %s). It expires in 15 minutes.", otp, ref)
	return SendingEmail(to, "Verification code", body)
}

// NotifyContactMessage emails a new contact submission to the configured
// admin address. Callers treat failures as best-effort.
func NotifyContactMessage(msg model.ContactMessage) error {
	to := os.Getenv("CONTACT_NOTIFY_EMAIL")
	if to == "" {
		return nil
	}

	subject := "New contact message"
	if msg.Subject != "" {
		subject = "New contact message: " + msg.Subject
	}
	body := fmt.Sprintf("From: %s <%s>\nPhone: %s\n\n%s", msg.Name, msg.Email, msg.Phone, msg.Message)
	return SendingEmail(to, subject, body)
}
