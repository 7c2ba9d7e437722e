package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("1h30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("bogus", time.Hour))
}

func TestFormatLongDate(t *testing.T) {
	assert.Equal(t, "January 5, 2025", FormatLongDate(time.Date(2025, 1, 5, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, "September 12, 2026", FormatLongDate(time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)))
}
