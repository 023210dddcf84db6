package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	q := NoopQueryHooks{}
	q.OnQueryStart(ctx, "path", "Kevin Bacon")
	q.OnQueryComplete(ctx, "path", "Kevin Bacon", time.Second, nil)

	l := NoopLoadHooks{}
	l.OnLoadStart(ctx, "movie-actors.txt")
	l.OnLoadComplete(ctx, "movie-actors.txt", 7, 6, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Query().(NoopQueryHooks); !ok {
		t.Error("Query() should return NoopQueryHooks by default")
	}
	if _, ok := Load().(NoopLoadHooks); !ok {
		t.Error("Load() should return NoopLoadHooks by default")
	}

	customQuery := &testQueryHooks{}
	SetQueryHooks(customQuery)
	if Query() != customQuery {
		t.Error("SetQueryHooks should set custom hooks")
	}

	customLoad := &testLoadHooks{}
	SetLoadHooks(customLoad)
	if Load() != customLoad {
		t.Error("SetLoadHooks should set custom hooks")
	}

	Reset()
	if _, ok := Query().(NoopQueryHooks); !ok {
		t.Error("Reset() should restore NoopQueryHooks")
	}
	if _, ok := Load().(NoopLoadHooks); !ok {
		t.Error("Reset() should restore NoopLoadHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testQueryHooks{}
	SetQueryHooks(custom)

	// Setting nil should be ignored
	SetQueryHooks(nil)

	if Query() != custom {
		t.Error("SetQueryHooks(nil) should be ignored")
	}

	Reset()
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testQueryHooks{}
	SetQueryHooks(h)

	Query().OnQueryStart(context.Background(), "separation", "Alice")
	Query().OnQueryComplete(context.Background(), "separation", "Alice", time.Millisecond, nil)

	if h.started != 1 || h.completed != 1 {
		t.Errorf("events = (%d, %d), want (1, 1)", h.started, h.completed)
	}
	if h.lastKind != "separation" {
		t.Errorf("lastKind = %q, want %q", h.lastKind, "separation")
	}
}

// Test implementations
type testQueryHooks struct {
	NoopQueryHooks
	started, completed int
	lastKind           string
}

func (h *testQueryHooks) OnQueryStart(_ context.Context, kind, _ string) {
	h.started++
	h.lastKind = kind
}

func (h *testQueryHooks) OnQueryComplete(_ context.Context, kind, _ string, _ time.Duration, _ error) {
	h.completed++
	h.lastKind = kind
}

type testLoadHooks struct{ NoopLoadHooks }
