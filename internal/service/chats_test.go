package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chucky-1/finfine/internal/repository"
)

func TestChats_Link(t *testing.T) {
	chats := NewChats(repository.NewChatsLocalStorage())
	ctx := context.Background()

	code := chats.LinkCode("user-1")
	require.Len(t, code, 10)
	require.Equal(t, code, chats.LinkCode("user-1"))
	require.False(t, chats.Linked(ctx, "user-1"))

	userID, err := chats.Link(ctx, code, 42)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)

	chatID, err := chats.ChatOf(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, int64(42), chatID)
	require.True(t, chats.Linked(ctx, "user-1"))

	_, err = chats.Link(ctx, code, 43)
	require.ErrorIs(t, err, ErrUnknownLinkCode)
}
