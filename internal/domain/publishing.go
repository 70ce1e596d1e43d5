package domain

import (
	"context"
	"io"
)

// ObjectStorage stores generated assets and exposes them by public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// ChannelPublisher posts content to the public messaging channel.
type ChannelPublisher interface {
	SendPhoto(ctx context.Context, photoURL, caption string) error
	SendMessage(ctx context.Context, text string) error
}

// CardRenderer draws share images as PNG.
type CardRenderer interface {
	RenderHoroscope(w io.Writer, h Horoscope) error
	RenderQuiz(w io.Writer, q Quiz) error
}
