package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/chucky-1/finfine/internal/model"
)

var ErrSessionNotFound = errors.New("session not found")

//go:generate mockery --name=Sessions

// Sessions persists token and user pairs so a visitor stays signed in across reloads and restarts.
type Sessions interface {
	Create(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteBefore(ctx context.Context, t time.Time) (int, error)
}

type SessionsLocalStorage struct {
	mu sync.RWMutex
	m  map[string]model.Session
}

func NewSessionsLocalStorage() *SessionsLocalStorage {
	return &SessionsLocalStorage{
		m: make(map[string]model.Session),
	}
}

func (l *SessionsLocalStorage) Create(_ context.Context, session *model.Session) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[session.ID] = *session
	return nil
}

func (l *SessionsLocalStorage) Get(_ context.Context, id string) (*model.Session, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.m[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &s, nil
}

func (l *SessionsLocalStorage) Delete(_ context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.m, id)
	return nil
}

func (l *SessionsLocalStorage) DeleteBefore(_ context.Context, t time.Time) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var n int
	for id, s := range l.m {
		if s.CreatedAt.Before(t) {
			delete(l.m, id)
			n++
		}
	}
	return n, nil
}
