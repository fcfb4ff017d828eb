package service

import (
	"context"
	"sync"

	"github.com/chucky-1/finfine/internal/api"
	"github.com/sirupsen/logrus"
)

// Resource is the loading/error/data view of one remote resource.
type Resource[T any] struct {
	Data    *T
	Err     string
	Loading bool
	// Unauthorized is set when the API rejected the session token.
	Unauthorized bool
}

// resource holds a Resource for one session. It is fetched on first use and again only
// when refreshed; a response from a fetch superseded by a newer one is not stored.
type resource[T any] struct {
	mu      sync.Mutex
	state   Resource[T]
	fetched bool
	epoch   uint64
}

func (r *resource[T]) get(ctx context.Context, name string, refresh bool, fetch func(context.Context) (*T, error)) Resource[T] {
	r.mu.Lock()
	if r.fetched && !refresh {
		state := r.state
		r.mu.Unlock()
		return state
	}
	r.epoch++
	epoch := r.epoch
	r.state.Loading = true
	r.state.Err = ""
	r.mu.Unlock()

	data, err := fetch(ctx)

	result := Resource[T]{}
	if err != nil {
		logrus.Warnf("fetch %s: %v", name, err)
		result.Err = ErrorText(err)
		result.Unauthorized = api.IsUnauthorized(err)
	} else {
		result.Data = data
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if epoch != r.epoch {
		logrus.Debugf("dropping stale %s response", name)
		if result.Data == nil && err != nil {
			result.Data = r.state.Data
		}
		return result
	}
	r.fetched = true
	r.state.Loading = false
	r.state.Err = result.Err
	r.state.Unauthorized = result.Unauthorized
	if result.Data != nil {
		r.state.Data = result.Data
	}
	return r.state
}

func (r *resource[T]) peek() Resource[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
