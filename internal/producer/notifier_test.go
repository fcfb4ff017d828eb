package producer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"

	"github.com/chucky-1/finfine/internal/model"
	"github.com/chucky-1/finfine/internal/repository"
	"github.com/chucky-1/finfine/internal/service"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

var alerts = []model.Notification{
	{ID: "budget-b1-80", Title: "Budget Alert", Message: "You're approaching your monthly Groceries budget limit."},
	{ID: "goal-g1-50", Title: "Goal Achievement", Message: "Congratulations! You're 50% of the way to your Car goal."},
}

func TestNotifier_DeliverOnce(t *testing.T) {
	chatsRepo := repository.NewChatsLocalStorage()
	require.NoError(t, chatsRepo.Add(context.Background(), 42, "user-1"))
	s := &fakeSender{}
	n := NewNotifier(s, service.NewChats(chatsRepo))

	require.NoError(t, n.deliver(context.Background(), offer{userID: "user-1", notifications: alerts}))
	require.NoError(t, n.deliver(context.Background(), offer{userID: "user-1", notifications: alerts}))

	require.Equal(t, 2, s.count())
	require.Equal(t, int64(42), s.sent[0].ChatID)
	require.Equal(t, "Budget Alert\nYou're approaching your monthly Groceries budget limit.", s.sent[0].Text)
}

func TestNotifier_UnlinkedUser(t *testing.T) {
	s := &fakeSender{}
	n := NewNotifier(s, service.NewChats(repository.NewChatsLocalStorage()))

	require.NoError(t, n.deliver(context.Background(), offer{userID: "user-1", notifications: alerts}))
	require.Equal(t, 0, s.count())
}

func TestNotifier_FailedSendIsRetried(t *testing.T) {
	chatsRepo := repository.NewChatsLocalStorage()
	require.NoError(t, chatsRepo.Add(context.Background(), 42, "user-1"))
	s := &fakeSender{err: errors.New("telegram is down")}
	n := NewNotifier(s, service.NewChats(chatsRepo))

	require.Error(t, n.deliver(context.Background(), offer{userID: "user-1", notifications: alerts[:1]}))

	s.err = nil
	require.NoError(t, n.deliver(context.Background(), offer{userID: "user-1", notifications: alerts[:1]}))
	require.Equal(t, 1, s.count())
}

func TestNotifier_Produce(t *testing.T) {
	chatsRepo := repository.NewChatsLocalStorage()
	require.NoError(t, chatsRepo.Add(context.Background(), 42, "user-1"))
	s := &fakeSender{}
	n := NewNotifier(s, service.NewChats(chatsRepo))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	n.Produce(ctx)

	n.Offer("user-1", alerts)
	n.Offer("user-1", nil)
	require.Eventually(t, func() bool { return s.count() == 2 }, time.Second, 5*time.Millisecond)
}
