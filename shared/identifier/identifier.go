package identifier

import (
	"strconv"
	"sync"
	"time"

	"safar/shared/timezone"
)

// Generator produces record identifiers of the form "<prefix><unix-milliseconds>",
// e.g. "contact:1718000000000". Two calls inside the same millisecond must still
// yield distinct identifiers, so the default implementation bumps the timestamp
// monotonically on collision.
type Generator interface {
	NextID(prefix string) string
}

type millisGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// New returns the default timestamp-based generator.
func New() Generator {
	return &millisGenerator{
		now: timezone.Now,
	}
}

// NewWithClock returns a generator reading time from the given clock function.
func NewWithClock(now func() time.Time) Generator {
	return &millisGenerator{
		now: now,
	}
}

func (g *millisGenerator) NextID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.now().UnixMilli()
	if millis <= g.last {
		millis = g.last + 1
	}

	g.last = millis

	return prefix + strconv.FormatInt(millis, 10)
}
