package notification

import (
	"context"

	"dispatchly/utils"

	"go.uber.org/zap"
)

// LogEmailSender and LogSMSSender record outbound messages in the log instead
// of calling a provider. They stand in until an email/SMS gateway is wired.

type LogEmailSender struct{}

func (LogEmailSender) SendEmail(_ context.Context, to, subject, body string) error {
	utils.GetLogger().Info("outbound email",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("bodyBytes", len(body)))
	return nil
}

type LogSMSSender struct{}

func (LogSMSSender) SendSMS(_ context.Context, to, body string) error {
	utils.GetLogger().Info("outbound sms",
		zap.String("to", to),
		zap.Int("bodyBytes", len(body)))
	return nil
}
