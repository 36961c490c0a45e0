package observability

import (
	"context"
	"testing"
	"time"
)

type recordingHooks struct {
	NoopPipelineHooks
	loadStarts     int
	loadCompletes  int
	statsCompletes int
}

func (r *recordingHooks) OnLoadStart(context.Context, string) { r.loadStarts++ }

func (r *recordingHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {
	r.loadCompletes++
}

func (r *recordingHooks) OnStatsComplete(context.Context, int, time.Duration, error) {
	r.statsCompletes++
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()
	h := NoopPipelineHooks{}

	h.OnLoadStart(ctx, "input")
	h.OnLoadComplete(ctx, "input", 5, time.Millisecond, nil)
	h.OnValidateStart(ctx, 5)
	h.OnValidateComplete(ctx, "connected and acyclic", true, time.Millisecond)
	h.OnStatsStart(ctx, 5)
	h.OnStatsComplete(ctx, 5, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	t.Cleanup(Reset)

	// Default is the no-op implementation.
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("default hooks = %T, want NoopPipelineHooks", Pipeline())
	}

	rec := &recordingHooks{}
	SetPipelineHooks(rec)

	ctx := context.Background()
	Pipeline().OnLoadStart(ctx, "input")
	Pipeline().OnLoadComplete(ctx, "input", 5, time.Millisecond, nil)
	Pipeline().OnStatsComplete(ctx, 5, time.Millisecond, nil)

	if rec.loadStarts != 1 || rec.loadCompletes != 1 || rec.statsCompletes != 1 {
		t.Errorf("events = %d/%d/%d, want 1/1/1",
			rec.loadStarts, rec.loadCompletes, rec.statsCompletes)
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("hooks after Reset = %T, want NoopPipelineHooks", Pipeline())
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	t.Cleanup(Reset)

	SetPipelineHooks(nil)
	if Pipeline() == nil {
		t.Fatal("Pipeline() = nil after SetPipelineHooks(nil)")
	}
}
