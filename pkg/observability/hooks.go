// Package observability provides hooks for metrics, tracing, and logging.
//
// The core packages never log. The pipeline and CLI report what they do
// through the hook interfaces defined here, and an application that wants
// metrics or traces registers its own implementations at startup. The
// defaults are no-ops.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetSearchHooks(&mySearchHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnStepStart(ctx, runID, 0, "crack")
//	// ... apply the step ...
//	observability.Pipeline().OnStepComplete(ctx, runID, 0, "crack", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from recipe execution.
type PipelineHooks interface {
	// Run events
	OnRunStart(ctx context.Context, runID string, steps int)
	OnRunComplete(ctx context.Context, runID string, duration time.Duration, err error)

	// Step events
	OnStepStart(ctx context.Context, runID string, index int, kind string)
	OnStepComplete(ctx context.Context, runID string, index int, kind string, duration time.Duration, err error)
}

// =============================================================================
// Search Hooks
// =============================================================================

// SearchHooks receives events from exact-fit packing searches.
type SearchHooks interface {
	// OnSearchStart records a search over sources canvases bounded by
	// maxPermutations orderings.
	OnSearchStart(ctx context.Context, sources, maxPermutations int)

	// OnSearchProgress records periodic progress.
	OnSearchProgress(ctx context.Context, explored, found int)

	// OnSearchComplete records the end of a search.
	OnSearchComplete(ctx context.Context, explored, found int, duration time.Duration)
}

// =============================================================================
// Image I/O Hooks
// =============================================================================

// ImageHooks receives events from image decoding and encoding.
type ImageHooks interface {
	// OnLoad records a decoded image.
	OnLoad(ctx context.Context, path string, pixels int, duration time.Duration, err error)

	// OnSave records an encoded image.
	OnSave(ctx context.Context, path string, pixels int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRunStart(context.Context, string, int)                     {}
func (NoopPipelineHooks) OnRunComplete(context.Context, string, time.Duration, error) {}
func (NoopPipelineHooks) OnStepStart(context.Context, string, int, string)            {}
func (NoopPipelineHooks) OnStepComplete(context.Context, string, int, string, time.Duration, error) {
}

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnSearchStart(context.Context, int, int)                   {}
func (NoopSearchHooks) OnSearchProgress(context.Context, int, int)                {}
func (NoopSearchHooks) OnSearchComplete(context.Context, int, int, time.Duration) {}

// NoopImageHooks is a no-op implementation of ImageHooks.
type NoopImageHooks struct{}

func (NoopImageHooks) OnLoad(context.Context, string, int, time.Duration, error) {}
func (NoopImageHooks) OnSave(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	searchHooks   SearchHooks   = NoopSearchHooks{}
	imageHooks    ImageHooks    = NoopImageHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any recipe runs.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetSearchHooks registers custom search hooks.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// SetImageHooks registers custom image I/O hooks.
func SetImageHooks(h ImageHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		imageHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Image returns the registered image I/O hooks.
func Image() ImageHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return imageHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	searchHooks = NoopSearchHooks{}
	imageHooks = NoopImageHooks{}
}
