package telegram

//go:generate mockgen -source=client.go -destination=mocks/mocks.go -package=mocks

import "gopkg.in/telebot.v3"

// Client defines an interface for sending messages via a Telegram bot.
// Chat identifiers stay opaque strings: a numeric chat ID or an @channel name.
type Client interface {
	SendMessage(chatID string, text string, options *telebot.SendOptions) error
}
