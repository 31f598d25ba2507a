package main

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"brickscapital/middleware"
	"brickscapital/types"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closingPublisher struct {
	closed atomic.Bool
}

func (p *closingPublisher) Publish(context.Context, types.SiteEvent) error { return nil }

func (p *closingPublisher) Close() { p.closed.Store(true) }

func TestShutdownReleasesBackends(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := &http.Server{Handler: http.NotFoundHandler()}
	served := make(chan error, 1)
	go func() { served <- server.Serve(listener) }()

	publisher := &closingPublisher{}
	client := redis.NewClient(&redis.Options{Addr: listener.Addr().String()})
	b := &backends{publisher: publisher, redis: client}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	shutdown(ctx, server, middleware.NewRateLimiter(1, time.Minute), b)

	assert.ErrorIs(t, <-served, http.ErrServerClosed)
	assert.True(t, publisher.closed.Load())
	assert.ErrorIs(t, client.Ping(ctx).Err(), redis.ErrClosed)
}

func TestGracefulShutdownSignalsWhenCleanupEnds(t *testing.T) {
	publisher := &closingPublisher{}
	done := GracefulShutdown(&http.Server{}, middleware.NewRateLimiter(1, time.Minute), &backends{publisher: publisher})

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		require.FailNow(t, "shutdown did not finish")
	}
	assert.True(t, publisher.closed.Load())
}
