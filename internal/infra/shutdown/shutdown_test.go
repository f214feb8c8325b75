package shutdown

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/yndnr/bpls-go/internal/telemetry/logger"
)

func TestHandler_RunsHooksInReverse(t *testing.T) {
	h := NewHandler(time.Second)
	h.SetLogger(logger.Nop())

	var order []string
	for _, name := range []string{"open store", "start watcher", "autosave"} {
		name := name
		h.OnShutdown(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	if err := h.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []string{"autosave", "start watcher", "open store"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestHandler_ContinuesAfterFailure(t *testing.T) {
	h := NewHandler(time.Second)
	h.SetLogger(logger.Nop())

	ran := false
	h.OnClose("first", func() error { ran = true; return nil })
	h.OnClose("broken", func() error { return errors.New("disk full") })

	err := h.Run()
	if err == nil || !strings.Contains(err.Error(), "broken: disk full") {
		t.Errorf("Run() error = %v", err)
	}
	if !ran {
		t.Error("hook after the failing one did not run")
	}
}

func TestHandler_RunOnce(t *testing.T) {
	h := NewHandler(time.Second)
	h.SetLogger(logger.Nop())

	calls := 0
	h.OnClose("count", func() error { calls++; return nil })

	_ = h.Run()
	_ = h.Run()
	if calls != 1 {
		t.Errorf("hook ran %d times, want 1", calls)
	}
}

func TestHandler_HookDeadline(t *testing.T) {
	h := NewHandler(10 * time.Millisecond)
	h.SetLogger(logger.Nop())

	h.OnShutdown("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	if err := h.Run(); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want deadline exceeded", err)
	}
}

func TestWithSignals_Cancel(t *testing.T) {
	ctx, stop := WithSignals(context.Background())
	stop()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Error("context not cancelled by stop")
	}
}
