package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestReadinessHandler(t *testing.T) {
	var ready atomic.Bool
	var dbErr error
	h := readinessHandler(&ready, pingFunc(func(context.Context) error { return dbErr }))

	serve := func() int {
		rr := httptest.NewRecorder()
		h(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		return rr.Code
	}

	require.Equal(t, http.StatusServiceUnavailable, serve())

	ready.Store(true)
	require.Equal(t, http.StatusOK, serve())

	dbErr = errors.New("conn refused")
	require.Equal(t, http.StatusServiceUnavailable, serve())
}

type collectorFunc func(ctx context.Context) (int64, error)

func (f collectorFunc) CollectExpiredRevocations(ctx context.Context) (int64, error) { return f(ctx) }

func TestRunBlocklistJanitor_TicksUntilCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	c := collectorFunc(func(context.Context) (int64, error) {
		if calls.Add(1) == 2 {
			return 0, errors.New("db down")
		}
		return 3, nil
	})

	done := make(chan struct{})
	go func() {
		runBlocklistJanitor(ctx, c, slog.New(slog.NewTextHandler(io.Discard, nil)), 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}

func TestRunBlocklistJanitor_DisabledReturnsImmediately(t *testing.T) {
	c := collectorFunc(func(context.Context) (int64, error) {
		t.Fatal("must not be called")
		return 0, nil
	})

	runBlocklistJanitor(context.Background(), c, slog.Default(), 0)
}

func TestSetupLogger(t *testing.T) {
	for _, env := range []string{envLocal, envDev, envProd, "unknown"} {
		require.NotNil(t, setupLogger(env))
	}

	require.False(t, setupLogger(envProd).Enabled(context.Background(), slog.LevelDebug))
	require.True(t, setupLogger(envDev).Enabled(context.Background(), slog.LevelDebug))
}
