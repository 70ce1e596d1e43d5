package telegram

import (
	"context"
	"errors"
	"testing"

	"quiz-zone/internal/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func TestPublisher_SendPhoto(t *testing.T) {
	bot := &fakeSender{}
	p := NewPublisher(bot, "@quizzone_club", zap.NewNop())

	require.NoError(t, p.SendPhoto(context.Background(), "https://cdn.example/leo.png", "*LEO*"))

	require.Len(t, bot.sent, 1)
	photo, ok := bot.sent[0].(tgbotapi.PhotoConfig)
	require.True(t, ok)
	assert.Equal(t, "@quizzone_club", photo.ChannelUsername)
	assert.Equal(t, "*LEO*", photo.Caption)
	assert.Equal(t, tgbotapi.ModeMarkdown, photo.ParseMode)
	assert.Equal(t, tgbotapi.FileURL("https://cdn.example/leo.png"), photo.File)
}

func TestPublisher_SendMessage(t *testing.T) {
	bot := &fakeSender{}
	p := NewPublisher(bot, "@quizzone_club", zap.NewNop())

	require.NoError(t, p.SendMessage(context.Background(), "hello"))

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, "hello", msg.Text)
	assert.True(t, msg.DisableWebPagePreview)
}

func TestPublisher_Errors(t *testing.T) {
	p := NewPublisher(&fakeSender{err: errors.New("chat not found")}, "@x", zap.NewNop())
	assert.True(t, domain.HasCode(p.SendMessage(context.Background(), "hi"), domain.CodePublish))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bot := &fakeSender{}
	p = NewPublisher(bot, "@x", zap.NewNop())
	assert.True(t, domain.HasCode(p.SendPhoto(ctx, "u", "c"), domain.CodePublish))
	assert.Empty(t, bot.sent)
}
