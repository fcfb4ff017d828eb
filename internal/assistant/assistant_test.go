package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAssistant_Reply(t *testing.T) {
	a := New(time.Millisecond)

	reply, ok, err := a.Reply(context.Background(), "How much should I save?")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, RoleAssistant, reply.Role)
	require.Contains(t, suggestions, reply.Text)
}

func TestAssistant_ReplyIgnoresBlank(t *testing.T) {
	a := New(time.Hour)

	_, ok, err := a.Reply(context.Background(), "   ")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAssistant_ReplyCancelled(t *testing.T) {
	a := New(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := a.Reply(ctx, "hello")
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, ok)
}

func TestAssistant_Greet(t *testing.T) {
	require.Equal(t, Greeting, New(0).Greet().Text)
}
