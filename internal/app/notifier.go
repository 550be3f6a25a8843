// internal/app/notifier.go
package app

import (
	"github.com/sirupsen/logrus"

	"homework_status_bot/internal/domain/failure"
	domainTelegram "homework_status_bot/internal/domain/telegram" // Import from domain
)

// Notifier sends messages to the single configured chat.
type Notifier struct {
	telegramClient domainTelegram.Client
	chatID         string
	logger         *logrus.Entry
}

func NewNotifier(tc domainTelegram.Client, chatID string, logger *logrus.Entry) *Notifier {
	return &Notifier{
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger,
	}
}

// SendMessage delivers message and never fails: transport errors are logged and dropped
// so that a Telegram outage cannot stop the poll loop.
func (n *Notifier) SendMessage(message string) {
	n.logger.Info("Sending message")

	if err := n.telegramClient.SendMessage(n.chatID, message, nil); err != nil {
		n.logger.WithError(failure.Wrap(failure.KindNotificationDelivery, err, "failed to send message")).
			WithField("kind", failure.KindNotificationDelivery.String()).
			Error("Failed to send message")
		return
	}
	n.logger.WithField("text", message).Debug("Message sent")
}
