// Package consumer runs the background loops driven by Telegram updates and timers.
package consumer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finfine/internal/service"
)

const start = "start"

const (
	helpText     = "Open Settings in the dashboard to get your link code, then send /start <code> here."
	linkedText   = "Your chat is linked. Budget and goal alerts will arrive here."
	unknownText  = "This link code is unknown or has already been used."
	failureText  = "Something went wrong while linking your chat. Try again later."
	linkDeadline = 10 * time.Second
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Linker binds a chat to the dashboard user who was given code.
type Linker interface {
	Link(ctx context.Context, code string, chatID int64) (string, error)
}

// Bot links Telegram chats to dashboard users through /start <code>.
type Bot struct {
	bot         sender
	name        string
	updatesChan tgbotapi.UpdatesChannel
	chats       Linker
}

func NewBot(bot sender, name string, updatesChan tgbotapi.UpdatesChannel, chats Linker) *Bot {
	return &Bot{
		bot:         bot,
		name:        name,
		updatesChan: updatesChan,
		chats:       chats,
	}
}

func (b *Bot) Consume(ctx context.Context) {
	logrus.Infof("telegram bot %s started consuming", b.name)

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("bot consumer stopped: %v", ctx.Err())
			return

		case update, ok := <-b.updatesChan:
			if !ok {
				logrus.Info("bot consumer stopped: updates channel closed")
				return
			}
			if update.Message == nil {
				continue
			}
			if !update.Message.IsCommand() || update.Message.Command() != start {
				logrus.Debugf("recieved message: %s", update.Message.Text)
				if err := b.reply(update.Message, helpText); err != nil {
					logrus.Error(err)
				}
				continue
			}
			if err := b.handleStart(ctx, update.Message); err != nil {
				logrus.Errorf("start command error: %v", err)
			}
		}
	}
}

func (b *Bot) handleStart(ctx context.Context, message *tgbotapi.Message) error {
	code := strings.TrimSpace(message.CommandArguments())
	if code == "" {
		return b.reply(message, helpText)
	}

	newCtx, cancel := context.WithTimeout(ctx, linkDeadline)
	defer cancel()
	userID, err := b.chats.Link(newCtx, code, message.Chat.ID)
	switch {
	case errors.Is(err, service.ErrUnknownLinkCode):
		logrus.Infof("chat %d sent an unknown link code", message.Chat.ID)
		return b.reply(message, unknownText)
	case err != nil:
		if replyErr := b.reply(message, failureText); replyErr != nil {
			logrus.Error(replyErr)
		}
		return fmt.Errorf("couldn't link chat %d: %w", message.Chat.ID, err)
	}

	logrus.Infof("chat %d linked to user %s", message.Chat.ID, userID)
	return b.reply(message, linkedText)
}

func (b *Bot) reply(message *tgbotapi.Message, text string) error {
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyToMessageID = message.MessageID

	_, err := b.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("telegram bot couldn't send message: %v", err)
	}
	return nil
}
