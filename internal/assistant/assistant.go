// Package assistant answers chat messages with canned financial suggestions.
package assistant

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"
)

const Greeting = "Hello! I'm your Financial AI Assistant. How can I help you with your financial planning today?"

var suggestions = []string{
	"Based on your current savings rate, you could reach your retirement goal by age 58.",
	"I recommend allocating 60% to equity funds and 40% to debt funds for your child's education goal.",
	"Your emergency fund should ideally be around $15,000 based on your monthly expenses.",
	"For tax-efficient investing, consider maxing out your retirement accounts first.",
	"Your current debt-to-income ratio is healthy at below 30%.",
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat frame.
type Message struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	Time time.Time `json:"time"`
}

type Assistant struct {
	delay time.Duration

	mu  sync.Mutex
	rnd *rand.Rand
}

func New(delay time.Duration) *Assistant {
	return &Assistant{
		delay: delay,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Reply waits the configured delay and returns a suggestion. Blank messages get no
// reply; ok is false for them.
func (a *Assistant) Reply(ctx context.Context, text string) (reply Message, ok bool, err error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false, nil
	}

	timer := time.NewTimer(a.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Message{}, false, ctx.Err()
	case <-timer.C:
	}

	a.mu.Lock()
	i := a.rnd.Intn(len(suggestions))
	a.mu.Unlock()
	return Message{Role: RoleAssistant, Text: suggestions[i], Time: time.Now().UTC()}, true, nil
}

func (a *Assistant) Greet() Message {
	return Message{Role: RoleAssistant, Text: Greeting, Time: time.Now().UTC()}
}
