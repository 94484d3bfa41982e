package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/missionlayout/pkg/observability"
)

// recordingHooks collects hook events as short strings.
type recordingHooks struct {
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) add(e string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, e)
}

func (h *recordingHooks) OnGenerateStart(context.Context, string, int) {
	h.add("generate:start")
}

func (h *recordingHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {
	h.add("generate:done")
}

func (h *recordingHooks) OnSelect(context.Context, string, []string, int, error) {
	h.add("select")
}

func (h *recordingHooks) OnRenderStart(context.Context, []string) {
	h.add("render:start")
}

func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.add("render:done")
}

func (h *recordingHooks) OnCacheHit(_ context.Context, keyType string) {
	h.add("hit:" + keyType)
}

func (h *recordingHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.add("miss:" + keyType)
}

func (h *recordingHooks) OnCacheSet(_ context.Context, keyType string, _ int) {
	h.add("set:" + keyType)
}

func TestRunnerEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	t.Cleanup(observability.Reset)

	r, _ := newTestRunner(t)
	opts := Options{Layout: "grid", Size: 6, Select: []string{"exits"}, Formats: []string{FormatDOT}}

	_, err := r.Execute(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"miss:layout", "generate:start", "generate:done", "set:layout",
		"select",
		"miss:artifact", "render:start", "render:done", "set:artifact",
	}, hooks.events)

	hooks.events = nil
	_, err = r.Execute(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"hit:layout", "select", "hit:artifact"}, hooks.events)
}
