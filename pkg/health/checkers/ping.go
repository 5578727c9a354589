// Package checkers adapts store handles to health.Checker.
package checkers

import (
	"context"
	"time"

	"github.com/artem13815/atsmatch/pkg/health"
)

const pingTimeout = time.Second

// PingFunc matches (*pgxpool.Pool).Ping and (*sql.DB).PingContext.
type PingFunc func(ctx context.Context) error

type pingChecker struct {
	name string
	ping PingFunc
}

// NewPing wraps a ping function; each check gets its own one-second deadline.
func NewPing(name string, ping PingFunc) health.Checker {
	return &pingChecker{name: name, ping: ping}
}

func (c *pingChecker) Name() string { return c.name }

func (c *pingChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.ping(ctx)
}
