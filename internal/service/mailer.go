// Package service holds the outbound collaborators sitting behind the API:
// mail transport and media object storage.
package service

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Mailer is the outbound-email collaborator. Implementations report plain
// success or failure and never panic past this boundary.
type Mailer interface {
	SendVerification(email, token, orgName string) bool
	SendWelcome(email, orgName string) bool
}

// NewMailer picks the SMTP transport when one is configured and otherwise
// falls back to logging the mail that would have gone out
func NewMailer() Mailer {
	if viper.GetString("mail.host") == "" {
		zap.L().Warn("No mail host configured, outgoing mail will only be logged")
		return &LogMailer{}
	}

	return NewSMTPMailer()
}

// LogMailer stands in for a real transport during development and tests
type LogMailer struct{}

func (*LogMailer) SendVerification(email, token, orgName string) bool {
	zap.L().Info("Verification mail (log transport)",
		zap.String("to", email),
		zap.String("org", orgName),
		zap.String("token", token),
	)
	return true
}

func (*LogMailer) SendWelcome(email, orgName string) bool {
	zap.L().Info("Welcome mail (log transport)",
		zap.String("to", email),
		zap.String("org", orgName),
	)
	return true
}
