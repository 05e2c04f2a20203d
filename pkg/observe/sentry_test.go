package observe

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"myweather/pkg/logger"
)

func newTestHook() (*SentryHook, *[]*sentry.Event) {
	var events []*sentry.Event
	h := newSentryHook("production", "myweather", func(e *sentry.Event) {
		events = append(events, e)
	})
	return h, &events
}

func TestNewSentryHook_RequiresDSN(t *testing.T) {
	_, err := NewSentryHook("production", "myweather", "", false)
	assert.Error(t, err)
}

func TestSentryHook_ForwardsErrors(t *testing.T) {
	h, events := newTestHook()
	l := logger.NewZapLogger("myweather", []io.Writer{h})

	l.Error(errors.New("provider unreachable"), map[string]any{"city": "Tokyo"})

	require.Len(t, *events, 1)
	e := (*events)[0]
	assert.Equal(t, sentry.LevelError, e.Level)
	assert.Equal(t, "provider unreachable", e.Message)
	assert.Equal(t, "production", e.Environment)
	assert.Equal(t, "Tokyo", e.Tags["city"])
	assert.Equal(t, "myweather", e.Extra["AppName"])
	require.Len(t, e.Exception, 1)
	assert.Equal(t, "provider unreachable", e.Exception[0].Value)
}

func TestSentryHook_IgnoresLowerLevels(t *testing.T) {
	h, events := newTestHook()
	l := logger.NewZapLogger("myweather", []io.Writer{h})

	l.Info("fetching")
	l.Warning("slow provider")
	l.Debug("details")

	assert.Empty(t, *events)
}

func TestSentryHook_BadInputIsSwallowed(t *testing.T) {
	h, events := newTestHook()
	var buf bytes.Buffer
	h.SetLogger(logger.NewZapLogger("myweather", []io.Writer{&buf}))

	n, err := h.Write([]byte("not json"))
	require.NoError(t, err)
	assert.Equal(t, len("not json"), n)
	assert.Empty(t, *events)
	assert.Contains(t, buf.String(), "[SentryHook] json.Unmarshal data")
}

func TestSentryHook_MapLevel(t *testing.T) {
	h, _ := newTestHook()
	assert.Equal(t, sentry.LevelDebug, h.mapLevel(zapcore.DebugLevel))
	assert.Equal(t, sentry.LevelInfo, h.mapLevel(zapcore.InfoLevel))
	assert.Equal(t, sentry.LevelWarning, h.mapLevel(zapcore.WarnLevel))
	assert.Equal(t, sentry.LevelError, h.mapLevel(zapcore.ErrorLevel))
	assert.Equal(t, sentry.LevelFatal, h.mapLevel(zapcore.FatalLevel))
}
