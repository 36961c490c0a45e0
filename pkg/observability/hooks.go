// Package observability provides hooks for metrics and logging around the
// analysis pipeline.
//
// The package uses a simple hooks pattern: hook interfaces with no-op default
// implementations, replaced at startup by whoever wants to instrument the
// run. Libraries call the hooks to emit events; they never depend on a
// concrete observability backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The pipeline runner emits events around each stage:
//
//	observability.Pipeline().OnLoadStart(ctx, source)
//	// ... load the graph ...
//	observability.Pipeline().OnLoadComplete(ctx, source, txCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the analysis pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, txCount int, duration time.Duration, err error)

	// Validation events
	OnValidateStart(ctx context.Context, txCount int)
	OnValidateComplete(ctx context.Context, outcome string, bipartite bool, duration time.Duration)

	// Statistics events
	OnStatsStart(ctx context.Context, txCount int)
	OnStatsComplete(ctx context.Context, txCount int, duration time.Duration, err error)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                              {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnValidateStart(context.Context, int)                             {}
func (NoopPipelineHooks) OnValidateComplete(context.Context, string, bool, time.Duration)  {}
func (NoopPipelineHooks) OnStatsStart(context.Context, int)                                {}
func (NoopPipelineHooks) OnStatsComplete(context.Context, int, time.Duration, error)       {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline runs.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op defaults. This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
