package consumer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingExpirer struct {
	calls atomic.Int32
}

func (c *countingExpirer) ExpireSessions(_ context.Context) (int, error) {
	c.calls.Add(1)
	return 0, nil
}

func TestCleaner_Consume(t *testing.T) {
	expirer := &countingExpirer{}
	cleaner := NewCleaner(expirer, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cleaner.Consume(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return expirer.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()
	<-done
}
