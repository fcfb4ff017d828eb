package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/chucky-1/finfine/internal/repository"
)

var ErrUnknownLinkCode = errors.New("unknown link code")

// Chats hands out one-time codes that link a Telegram chat to a dashboard user.
type Chats struct {
	repo repository.Chats

	mu     sync.Mutex
	codes  map[string]string // key: code, value: user id
	byUser map[string]string
}

func NewChats(repo repository.Chats) *Chats {
	return &Chats{
		repo:   repo,
		codes:  make(map[string]string),
		byUser: make(map[string]string),
	}
}

// LinkCode returns the pending code for userID, creating one if needed.
func (c *Chats) LinkCode(userID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if code, ok := c.byUser[userID]; ok {
		return code
	}
	code := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	c.codes[code] = userID
	c.byUser[userID] = code
	return code
}

// Link binds chatID to the user holding code. A code works once.
func (c *Chats) Link(ctx context.Context, code string, chatID int64) (string, error) {
	c.mu.Lock()
	userID, ok := c.codes[code]
	if ok {
		delete(c.codes, code)
		delete(c.byUser, userID)
	}
	c.mu.Unlock()
	if !ok {
		return "", ErrUnknownLinkCode
	}
	if err := c.repo.Add(ctx, chatID, userID); err != nil {
		return "", err
	}
	return userID, nil
}

func (c *Chats) ChatOf(ctx context.Context, userID string) (int64, error) {
	return c.repo.GetByUser(ctx, userID)
}

// Linked reports whether userID already has a chat.
func (c *Chats) Linked(ctx context.Context, userID string) bool {
	_, err := c.repo.GetByUser(ctx, userID)
	return err == nil
}
