package store

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// Gate reports whether MongoDB is currently reachable. A background
// monitor pings the server on an interval and publishes the result
// through an atomic flag, so Available is cheap enough to consult on
// every request. A ping failure counts as unavailable: we fail toward
// the fallback dataset, never toward losing a write silently.
type Gate struct {
	client    *mongo.Client
	interval  time.Duration
	available atomic.Bool
	log       zerolog.Logger
}

const pingTimeout = 2 * time.Second

func NewGate(client *mongo.Client, interval time.Duration, log zerolog.Logger) *Gate {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Gate{client: client, interval: interval, log: log}
}

// Available never blocks.
func (g *Gate) Available() bool {
	return g.client != nil && g.available.Load()
}

// Start performs one synchronous probe so the initial state is correct,
// then keeps probing until ctx is cancelled. With no client (the
// initial connect failed) the gate stays permanently closed.
func (g *Gate) Start(ctx context.Context) {
	if g.client == nil {
		return
	}
	g.probe(ctx)
	go func() {
		ticker := time.NewTicker(g.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				g.probe(ctx)
			}
		}
	}()
}

func (g *Gate) probe(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	err := g.client.Ping(pctx, nil)
	was := g.available.Swap(err == nil)
	switch {
	case err != nil && was:
		g.log.Warn().Err(err).Msg("database unreachable, switching to fallback data")
	case err == nil && !was:
		g.log.Info().Msg("database reachable, serving persisted data")
	}
}
