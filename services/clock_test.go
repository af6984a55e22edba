package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_DateOnly_UsesUTCCalendarDate(t *testing.T) {
	karachi := time.FixedZone("PKT", 5*60*60)

	// 01:00 on the 11th in Karachi is still the 10th in UTC.
	got := DateOnly(time.Date(2024, 6, 11, 1, 0, 0, 0, karachi))
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)

	got = DateOnly(time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)
}

func Test_SystemClock_IsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, SystemClock{}.Now().Location())
}
