package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"weather-dashboard/pkg/logger"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second
)

// reportedEnvs are the environments whose errors are shipped to Sentry.
var reportedEnvs = map[string]bool{
	"production": true,
	"staging":    true,
}

// SentryHook is an io.Writer for the zap logger. Error and fatal JSON lines are
// forwarded to Sentry as events; everything else is dropped.
type SentryHook struct {
	appEnv  string
	appName string
	enabled bool
	capture func(*sentry.Event) *sentry.EventID
}

type logLine struct {
	Level      string `json:"level"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
}

func NewSentryHook(appEnv, appName string, isDebug bool, dsn string) *SentryHook {
	h := &SentryHook{
		appEnv:  appEnv,
		appName: appName,
		capture: sentry.CaptureEvent,
	}

	if dsn == "" {
		return h
	}

	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout
	if err := sentry.Init(sentry.ClientOptions{
		AttachStacktrace: true,
		Debug:            isDebug,
		Dsn:              dsn,
		Environment:      appEnv,
		MaxErrorDepth:    _sentryMaxErrorDepth,
		ServerName:       appName,
		Transport:        sentryTransport,
	}); err != nil {
		log.Println("sentry init error:", err.Error())
		return h
	}

	h.enabled = reportedEnvs[appEnv]
	return h
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.FatalLevel, zapcore.PanicLevel, zapcore.DPanicLevel:
		return sentry.LevelFatal
	}

	return sentry.LevelDebug
}

func (h *SentryHook) Write(p []byte) (int, error) {
	if !h.enabled {
		return len(p), nil
	}

	var line logLine
	if err := json.Unmarshal(p, &line); err != nil {
		h.report(errors.Wrap(err, "[SentryHook] unmarshal log line"))
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(line.Level)
	if err != nil {
		h.report(errors.Wrap(err, "[SentryHook] parse zap level"))
		return len(p), nil
	}

	if level < zapcore.ErrorLevel || line.Message == "" {
		return len(p), nil
	}

	h.capture(h.event(level, line))

	return len(p), nil
}

func (h *SentryHook) event(level zapcore.Level, line logLine) *sentry.Event {
	event := sentry.NewEvent()
	event.Environment = h.appEnv
	event.Level = h.mapLevel(level)
	event.Message = line.Message
	if ts, err := time.Parse(logger.TimestampLayout, line.Timestamp); err == nil {
		event.Timestamp = ts
	}

	event.Extra["AppName"] = h.appName
	event.Extra["Error"] = line.Error
	event.Extra["CallerFile"] = line.CallerFile
	event.Extra["CallerLine"] = line.CallerLine
	event.Extra["CallerFunc"] = line.CallerFunc
	event.Extra["Stack"] = line.Stack

	event.Exception = append(event.Exception, sentry.Exception{
		Type:       line.Message,
		Value:      line.Error,
		Stacktrace: sentry.NewStacktrace(),
	})

	return event
}

// report logs a hook failure without feeding it back into the hook.
func (h *SentryHook) report(err error) {
	log.Println(err.Error())
}

// Flush waits for buffered events to be delivered.
func (h *SentryHook) Flush() bool {
	if !h.enabled {
		return true
	}
	return sentry.Flush(_sentryFlushTimeout)
}
