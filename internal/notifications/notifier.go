// Package notifications holds the single transient toast shown to the user.
package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/metrics"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 3 * time.Second

type Params struct {
	TTL     time.Duration
	Clock   func() time.Time
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics
}

// Notifier keeps at most one toast. Each Show replaces the previous toast and
// re-arms the clear timer; a timer only clears the toast it was armed for.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	logg    *logger.Logger
	metrics *metrics.StoreMetrics

	current *models.Toast
	seq     uint64
	timer   *time.Timer
	closed  bool
}

func New(params Params) *Notifier {
	ttl := params.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := params.Clock
	if now == nil {
		now = time.Now
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &Notifier{ttl: ttl, now: now, logg: logg, metrics: params.Metrics}
}

// Show replaces the current toast. It is a no-op after Close.
func (n *Notifier) Show(message string, kind enums.ToastKind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}

	n.seq++
	id := n.seq
	n.current = &models.Toast{Message: message, Kind: kind, ShownAt: n.now()}
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(id) })

	n.metrics.IncToast(kind.String())
	n.logg.Debug(n.logg.WithFields(context.Background(), map[string]any{
		"toast_kind":    kind,
		"toast_message": message,
	}), "toast.shown")
}

// Current returns the visible toast, if any.
func (n *Notifier) Current() (models.Toast, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return models.Toast{}, false
	}
	return *n.current, true
}

// Dismiss clears the toast early.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.clearLocked()
}

// Close cancels the pending timer. Later Show calls are ignored.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.clearLocked()
}

func (n *Notifier) expire(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seq != id {
		return
	}
	n.current = nil
	n.timer = nil
}

func (n *Notifier) clearLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
	n.seq++
}
