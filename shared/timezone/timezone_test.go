package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"safar/shared/timezone"
)

func TestNowReturnsAppLocation(t *testing.T) {
	now := timezone.Now()

	assert.Equal(t, timezone.GetLocation().String(), now.Location().String())
	assert.WithinDuration(t, time.Now(), now, 2*time.Second)
}

func TestParseAndFormatRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2025-06-15")

	assert.NoError(t, err)
	assert.Equal(t, "2025-06-15", timezone.Format(parsed, "2006-01-02"))
}

func TestToAppTimeKeepsInstant(t *testing.T) {
	utc := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, utc.Equal(timezone.ToAppTime(utc)))
}
