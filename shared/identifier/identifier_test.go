package identifier_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"safar/shared/identifier"
)

func TestNextID_Shape(t *testing.T) {
	fixed := time.UnixMilli(1718000000000)
	gen := identifier.NewWithClock(func() time.Time { return fixed })

	id := gen.NextID("contact:")

	assert.Equal(t, "contact:1718000000000", id)
}

func TestNextID_UniqueWithinSameMillisecond(t *testing.T) {
	fixed := time.UnixMilli(1718000000000)
	gen := identifier.NewWithClock(func() time.Time { return fixed })

	first := gen.NextID("booking:")
	second := gen.NextID("booking:")
	third := gen.NextID("booking:")

	assert.Equal(t, "booking:1718000000000", first)
	assert.Equal(t, "booking:1718000000001", second)
	assert.Equal(t, "booking:1718000000002", third)
}

func TestNextID_AdvancingClock(t *testing.T) {
	millis := int64(1718000000000)
	gen := identifier.NewWithClock(func() time.Time {
		millis += 5
		return time.UnixMilli(millis)
	})

	first := gen.NextID("package:")
	second := gen.NextID("package:")

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "package:"))
	assert.True(t, strings.HasPrefix(second, "package:"))
}

func TestNextID_ConcurrentCallsAreUnique(t *testing.T) {
	fixed := time.UnixMilli(1718000000000)
	gen := identifier.NewWithClock(func() time.Time { return fixed })

	const calls = 100

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		ids = map[string]struct{}{}
	)

	for range calls {
		wg.Add(1)

		go func() {
			defer wg.Done()

			id := gen.NextID("contact:")

			mu.Lock()
			ids[id] = struct{}{}
			mu.Unlock()
		}()
	}

	wg.Wait()

	assert.Len(t, ids, calls)
}
