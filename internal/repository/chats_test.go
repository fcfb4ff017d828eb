package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChatsLocalStorage_AddGet(t *testing.T) {
	s := NewChatsLocalStorage()

	chatID := int64(125)
	userID := "user-1"

	err := s.Add(context.Background(), chatID, userID)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 1, len(s.m))

	c, err := s.GetByUser(context.Background(), userID)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, chatID, c)

	_, err = s.GetByUser(context.Background(), "unknown")
	require.ErrorIs(t, err, ErrChatNotFound)
}

func TestChatsLocalStorage_Relink(t *testing.T) {
	s := NewChatsLocalStorage()
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, 1, "user-1"))
	require.NoError(t, s.Add(ctx, 2, "user-1"))

	c, err := s.GetByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, int64(2), c)
}
