package telegram

import (
	"context"
	"fmt"

	"quiz-zone/internal/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender is the part of *tgbotapi.BotAPI used by Publisher.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Publisher posts Markdown messages and photos to one channel.
type Publisher struct {
	bot     Sender
	channel string
	logger  *zap.Logger
}

// NewBot authorises the bot token against the Telegram API.
func NewBot(token string) (*tgbotapi.BotAPI, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token cannot be empty")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return bot, nil
}

func NewPublisher(bot Sender, channel string, logger *zap.Logger) *Publisher {
	return &Publisher{bot: bot, channel: channel, logger: logger}
}

var _ domain.ChannelPublisher = (*Publisher)(nil)

func (p *Publisher) SendPhoto(ctx context.Context, photoURL, caption string) error {
	if err := ctx.Err(); err != nil {
		return domain.NewPublishError(err)
	}
	msg := tgbotapi.NewPhotoToChannel(p.channel, tgbotapi.FileURL(photoURL))
	msg.Caption = caption
	msg.ParseMode = tgbotapi.ModeMarkdown

	sent, err := p.bot.Send(msg)
	if err != nil {
		return domain.NewPublishError(fmt.Errorf("send photo to %s: %w", p.channel, err))
	}
	p.logger.Info("Posted photo to channel", zap.String("channel", p.channel), zap.Int("message_id", sent.MessageID))
	return nil
}

func (p *Publisher) SendMessage(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return domain.NewPublishError(err)
	}
	msg := tgbotapi.NewMessageToChannel(p.channel, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true

	sent, err := p.bot.Send(msg)
	if err != nil {
		return domain.NewPublishError(fmt.Errorf("send message to %s: %w", p.channel, err))
	}
	p.logger.Info("Posted message to channel", zap.String("channel", p.channel), zap.Int("message_id", sent.MessageID))
	return nil
}
