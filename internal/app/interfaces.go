package app

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
)

// HomeworkAPI fetches the raw homework status payload.
type HomeworkAPI interface {
	GetAPIAnswer(ctx context.Context, cursor int64) (any, error)
}

// MessageSender delivers a text to the user. Delivery is best effort.
type MessageSender interface {
	SendMessage(message string)
}

// Pacer blocks until the next poll tick.
type Pacer interface {
	Wait(ctx context.Context) error
}
