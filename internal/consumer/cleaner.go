package consumer

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const cleanDeadline = 10 * time.Second

// Expirer removes sessions that outlived their token.
type Expirer interface {
	ExpireSessions(ctx context.Context) (int, error)
}

type Cleaner struct {
	expirer  Expirer
	interval time.Duration
}

func NewCleaner(expirer Expirer, interval time.Duration) *Cleaner {
	return &Cleaner{
		expirer:  expirer,
		interval: interval,
	}
}

// Consume cleans once on start and then every interval until ctx is done.
func (c *Cleaner) Consume(ctx context.Context) {
	logrus.Info("cleaner consumer started")

	c.clean(ctx)

	t := time.NewTicker(c.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			logrus.Infof("cleaner consumer stopped: %v", ctx.Err())
			return
		case <-t.C:
			c.clean(ctx)
		}
	}
}

func (c *Cleaner) clean(ctx context.Context) {
	newCtx, cancel := context.WithTimeout(ctx, cleanDeadline)
	defer cancel()
	n, err := c.expirer.ExpireSessions(newCtx)
	if err != nil {
		logrus.Errorf("cleaner consumer couldn't expire sessions: %v", err)
		return
	}
	logrus.Infof("cleaner consumer removed %d expired sessions in %v", n, time.Now().UTC())
}
