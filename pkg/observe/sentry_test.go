package observe

import (
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/pkg/logger"
)

func newTestHook(enabled bool) (*SentryHook, *[]*sentry.Event) {
	var captured []*sentry.Event
	h := &SentryHook{
		appEnv:  "production",
		appName: "weather-dashboard",
		enabled: enabled,
		capture: func(e *sentry.Event) *sentry.EventID {
			captured = append(captured, e)
			return nil
		},
	}
	return h, &captured
}

func TestSentryHook_ForwardsErrors(t *testing.T) {
	h, captured := newTestHook(true)
	l := logger.NewZapLogger("weather-dashboard", h)

	l.Info("search completed", map[string]any{"query": "Paris"})
	l.Error(errors.New("upstream request failed"), map[string]any{"endpoint": "forecast"})

	require.Len(t, *captured, 1)
	event := (*captured)[0]
	assert.Equal(t, "upstream request failed", event.Message)
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "production", event.Environment)
	assert.Equal(t, "weather-dashboard", event.Extra["AppName"])
	assert.NotEmpty(t, event.Extra["CallerFunc"])
}

func TestSentryHook_DisabledDropsEverything(t *testing.T) {
	h, captured := newTestHook(false)
	l := logger.NewZapLogger("weather-dashboard", h)

	l.Error(errors.New("boom"))

	assert.Empty(t, *captured)
}

func TestSentryHook_IgnoresGarbage(t *testing.T) {
	h, captured := newTestHook(true)

	n, err := h.Write([]byte("not json"))
	require.NoError(t, err)
	assert.Equal(t, len("not json"), n)
	assert.Empty(t, *captured)
}

func TestNewSentryHook_NoDSN(t *testing.T) {
	h := NewSentryHook("production", "weather-dashboard", false, "")

	assert.False(t, h.enabled)
	assert.True(t, h.Flush())
}
