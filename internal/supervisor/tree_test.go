// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

// stubService runs until canceled, or fails the first failures times.
type stubService struct {
	name     string
	failures int32
	starts   atomic.Int32
	stops    atomic.Int32
}

func (s *stubService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	defer s.stops.Add(1)
	if n <= s.failures {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubService) String() string { return s.name }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewSupervisorTree_Defaults(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
	if err != nil {
		t.Fatalf("NewSupervisorTree: %v", err)
	}
	if tree.Root() == nil {
		t.Fatal("root supervisor is nil")
	}

	want := DefaultTreeConfig()
	if tree.config != want {
		t.Errorf("config = %+v, want %+v", tree.config, want)
	}
}

func TestNewSupervisorTree_KeepsExplicitValues(t *testing.T) {
	tree, err := NewSupervisorTree(nil, TreeConfig{
		FailureThreshold: 2,
		FailureBackoff:   time.Second,
		ShutdownTimeout:  3 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree: %v", err)
	}
	if tree.config.FailureThreshold != 2 {
		t.Errorf("FailureThreshold = %v, want 2", tree.config.FailureThreshold)
	}
	if tree.config.FailureDecay != 30 {
		t.Errorf("FailureDecay = %v, want 30", tree.config.FailureDecay)
	}
	if tree.config.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 3s", tree.config.ShutdownTimeout)
	}
	if tree.logger == nil {
		t.Error("nil logger should fall back to slog.Default")
	}
}

func TestSupervisorTree_Lifecycle(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureBackoff:  50 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree: %v", err)
	}

	engineSvc := &stubService{name: "engine-stub"}
	apiSvc := &stubService{name: "api-stub"}
	tree.AddEngineService(engineSvc)
	tree.AddAPIService(apiSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.After(2 * time.Second)
	for engineSvc.starts.Load() == 0 || apiSvc.starts.Load() == 0 {
		select {
		case <-deadline:
			cancel()
			t.Fatal("services did not start")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want nil or context.Canceled", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not stop")
	}

	if engineSvc.stops.Load() == 0 || apiSvc.stops.Load() == 0 {
		t.Error("services were not stopped on shutdown")
	}
}

func TestSupervisorTree_RestartsFailedService(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree: %v", err)
	}

	flaky := &stubService{name: "flaky", failures: 2}
	tree.AddEngineService(flaky)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	for flaky.starts.Load() < 3 {
		select {
		case <-ctx.Done():
			t.Fatalf("service started %d times, want at least 3", flaky.starts.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	<-errCh
}
