package notifier

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Sender is the part of *tele.Bot used for delivery
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Chat is a destination given either as a numeric id or as an @channel name
type Chat string

// Recipient implements tele.Recipient
func (c Chat) Recipient() string {
	return string(c)
}

// Telegram delivers text messages to a single chat
type Telegram struct {
	sender Sender
	chat   Chat
	logger *zap.Logger
}

// NewTelegram creates a notifier bound to chatID
func NewTelegram(sender Sender, chatID string, logger *zap.Logger) *Telegram {
	return &Telegram{
		sender: sender,
		chat:   Chat(chatID),
		logger: logger,
	}
}

// SendMessage sends text to the chat. Delivery errors are logged and dropped.
func (t *Telegram) SendMessage(text string) {
	if _, err := t.sender.Send(t.chat, text); err != nil {
		t.logger.Error("Failed to send Telegram message",
			zap.String("chat_id", string(t.chat)),
			zap.Error(err),
		)
		return
	}

	t.logger.Debug("Telegram message sent",
		zap.String("chat_id", string(t.chat)),
		zap.String("text", text),
	)
}
