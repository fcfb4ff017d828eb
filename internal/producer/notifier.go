// Package producer pushes dashboard alerts to the Telegram chats users linked.
package producer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/repository"
)

const (
	queueSize    = 64
	sendDeadline = 10 * time.Second
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// ChatFinder resolves the chat a user linked.
type ChatFinder interface {
	ChatOf(ctx context.Context, userID string) (int64, error)
}

type offer struct {
	userID        string
	notifications []model.Notification
}

// Notifier delivers each notification to a user at most once.
type Notifier struct {
	bot   sender
	chats ChatFinder
	queue chan offer

	mu sync.Mutex
	// key: user id + notification id
	sent map[string]struct{}
}

func NewNotifier(bot sender, chats ChatFinder) *Notifier {
	return &Notifier{
		bot:   bot,
		chats: chats,
		queue: make(chan offer, queueSize),
		sent:  make(map[string]struct{}),
	}
}

// Offer queues notifications for delivery without blocking the caller. Offers are
// dropped when the queue is full; the next summary offers them again.
func (n *Notifier) Offer(userID string, notifications []model.Notification) {
	if len(notifications) == 0 {
		return
	}
	select {
	case n.queue <- offer{userID: userID, notifications: notifications}:
	default:
		logrus.Warnf("notifier producer queue is full, dropped %d notifications for %s", len(notifications), userID)
	}
}

func (n *Notifier) Produce(ctx context.Context) {
	logrus.Info("notifier producer started produce")
	go n.waitOffers(ctx)
}

func (n *Notifier) waitOffers(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			logrus.Infof("notifier producer stopped: %v", ctx.Err())
			return
		case o := <-n.queue:
			if err := n.deliver(ctx, o); err != nil {
				logrus.Error(err)
			}
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, o offer) error {
	pending := n.unsent(o)
	if len(pending) == 0 {
		return nil
	}

	newCtx, cancel := context.WithTimeout(ctx, sendDeadline)
	defer cancel()
	chatID, err := n.chats.ChatOf(newCtx, o.userID)
	if errors.Is(err, repository.ErrChatNotFound) {
		logrus.Debugf("couldn't send alerts because user %s didn't link a chat", o.userID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("notifier producer couldn't find chat: %v", err)
	}

	for _, notification := range pending {
		message := tgbotapi.NewMessage(chatID, notification.Title+"\n"+notification.Message)
		if _, err = n.bot.Send(message); err != nil {
			return fmt.Errorf("notifier producer couldn't send alert: %v", err)
		}
		n.markSent(o.userID, notification.ID)
	}
	return nil
}

func (n *Notifier) unsent(o offer) []model.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []model.Notification
	for _, notification := range o.notifications {
		if _, ok := n.sent[o.userID+"/"+notification.ID]; !ok {
			out = append(out, notification)
		}
	}
	return out
}

func (n *Notifier) markSent(userID, notificationID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent[userID+"/"+notificationID] = struct{}{}
}
