package telegram

import (
	"errors"

	"gopkg.in/telebot.v3"
)

// ErrDeliveryFailed wraps any failure to hand a message to Telegram
// (auth failure, rate limit, network failure).
var ErrDeliveryFailed = errors.New("telegram delivery failed")

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
