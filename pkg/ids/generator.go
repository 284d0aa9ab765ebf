package ids

import (
	"strconv"
	"sync"
	"time"
)

// Generator mints <prefix><unix-millis> identifiers. Two calls for the same
// prefix inside one millisecond get consecutive suffixes, so ids stay unique
// within a process. Uniqueness across restarts is not guaranteed.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last map[string]int64
}

func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now, last: make(map[string]int64)}
}

func (g *Generator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if last, ok := g.last[prefix]; ok && ms <= last {
		ms = last + 1
	}
	g.last[prefix] = ms
	return prefix + strconv.FormatInt(ms, 10)
}
