package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrialExpired(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	started := now.Add(-4 * 24 * time.Hour)

	enrollment := Enrollment{IsTrial: true, TrialStarted: &started}

	assert.True(t, enrollment.TrialExpired(3, now), "4 days into a 3 day trial")
	assert.False(t, enrollment.TrialExpired(5, now), "4 days into a 5 day trial")
}

func TestTrialExpiredBoundary(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	started := now.Add(-3 * 24 * time.Hour)

	enrollment := Enrollment{IsTrial: true, TrialStarted: &started}

	// Exactly at the boundary the trial is still usable.
	assert.False(t, enrollment.TrialExpired(3, now))
	assert.True(t, enrollment.TrialExpired(3, now.Add(time.Second)))
}

func TestTrialExpiredNonTrial(t *testing.T) {
	now := time.Now().UTC()
	started := now.Add(-30 * 24 * time.Hour)

	paid := Enrollment{IsTrial: false, TrialStarted: &started}
	assert.False(t, paid.TrialExpired(3, now))

	noStart := Enrollment{IsTrial: true}
	assert.False(t, noStart.TrialExpired(3, now))
}
