package service

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends over plain SMTP using the mail.* config section
type SMTPMailer struct {
	host    string
	port    int
	sender  string
	baseURL string
	dialer  *gomail.Dialer
}

func NewSMTPMailer() *SMTPMailer {
	host := viper.GetString("mail.host")
	port := viper.GetInt("mail.port")
	sender := viper.GetString("mail.sender")

	return &SMTPMailer{
		host:    host,
		port:    port,
		sender:  sender,
		baseURL: viper.GetString("host.base_url"),
		dialer:  gomail.NewDialer(host, port, viper.GetString("mail.username"), viper.GetString("mail.password")),
	}
}

func (m *SMTPMailer) send(to, subject, htmlBody string) bool {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		zap.L().Error("Failed to send mail", zap.Error(err), zap.String("to", to))
		return false
	}

	return true
}

func (m *SMTPMailer) SendVerification(email, token, orgName string) bool {
	verifLink := fmt.Sprintf("%s/auth/verify?token=%s", m.baseURL, token)

	body := fmt.Sprintf(
		"Thanks for registering with %s.<br><br>"+
			"Click <a href='%s'>here</a> to verify your email address.<br><br>"+
			"If you didn't register, you can ignore this message.",
		orgName, verifLink)

	return m.send(email, fmt.Sprintf("Verify your email for %s", orgName), body)
}

func (m *SMTPMailer) SendWelcome(email, orgName string) bool {
	body := fmt.Sprintf(
		"Your email has been verified.<br><br>"+
			"Welcome to %s, you can now log in and start working.",
		orgName)

	return m.send(email, fmt.Sprintf("Welcome to %s", orgName), body)
}
