package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline and cache events as debug log lines.
// It implements both PipelineHooks and CacheHooks.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log through l, prefixed with "hooks".
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{logger: l.WithPrefix("hooks")}
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)

func (h *LogHooks) OnGenerateStart(_ context.Context, layout string, size int) {
	h.logger.Debug("generate start", "layout", layout, "size", size)
}

func (h *LogHooks) OnGenerateComplete(_ context.Context, layout string, slotCount int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generate failed", "layout", layout, "err", err)
		return
	}
	h.logger.Debug("generate done", "layout", layout, "slots", slotCount, "duration", duration)
}

func (h *LogHooks) OnSelect(_ context.Context, layout string, terms []string, selected int, err error) {
	if err != nil {
		h.logger.Debug("select failed", "layout", layout, "terms", terms, "err", err)
		return
	}
	h.logger.Debug("select", "layout", layout, "terms", terms, "selected", selected)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "formats", formats, "err", err)
		return
	}
	h.logger.Debug("render done", "formats", formats, "duration", duration)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
