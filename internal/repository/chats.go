package repository

import (
	"context"
	"errors"
	"sync"
)

var ErrChatNotFound = errors.New("telegram chat is not linked")

//go:generate mockery --name=Chats

// Chats links dashboard users to the Telegram chats their alerts go to.
type Chats interface {
	Add(ctx context.Context, chatID int64, userID string) error
	GetByUser(ctx context.Context, userID string) (int64, error)
}

type ChatsLocalStorage struct {
	mu sync.RWMutex
	m  map[string]int64
}

func NewChatsLocalStorage() *ChatsLocalStorage {
	return &ChatsLocalStorage{
		m: make(map[string]int64),
	}
}

func (l *ChatsLocalStorage) Add(_ context.Context, chatID int64, userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[userID] = chatID
	return nil
}

func (l *ChatsLocalStorage) GetByUser(_ context.Context, userID string) (int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.m[userID]
	if !ok {
		return 0, ErrChatNotFound
	}
	return v, nil
}
