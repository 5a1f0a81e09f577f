package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestModeTrackerMulaiOnline(t *testing.T) {
	m := NewModeTracker(zap.NewNop())
	assert.False(t, m.Offline())
}

func TestModeTrackerSetIdempoten(t *testing.T) {
	m := NewModeTracker(zap.NewNop())

	m.SetOffline(true)
	m.SetOffline(true)
	assert.True(t, m.Offline())

	m.SetOffline(false)
	assert.False(t, m.Offline())
}
