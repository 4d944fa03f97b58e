package logger

import (
	"testing"

	"github.com/gookit/slog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	defer Init("info")

	Init("DEBUG")
	lg, ok := Log.(*slog.Logger)
	assert.True(t, ok)
	assert.NotNil(t, lg)

	Init("")
	assert.NotNil(t, Log)
}

func TestWithServiceName(t *testing.T) {
	t.Setenv("SERVICE_NAME", "blog-api")

	assert.Equal(t, Fields{"service_name": "blog-api"}, withServiceName(nil))
	assert.Equal(t, Fields{"service_name": "keep"}, withServiceName(Fields{"service_name": "keep"}))
}

func TestWithFieldsDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		DebugWithFields("debug", Fields{"k": 1})
		InfoWithFields("info", nil)
		WarnWithFields("warn", Fields{})
		ErrorWithFields("error", Fields{"err": "boom"})
	})
}

type levelRecorder struct {
	Logger
	calls []string
}

func (r *levelRecorder) Debug(args ...any) { r.calls = append(r.calls, "debug") }
func (r *levelRecorder) Info(args ...any)  { r.calls = append(r.calls, "info") }
func (r *levelRecorder) Warn(args ...any)  { r.calls = append(r.calls, "warn") }
func (r *levelRecorder) Error(args ...any) { r.calls = append(r.calls, "error") }

func TestWithFieldsRoutesLevels(t *testing.T) {
	rec := &levelRecorder{}
	prev := Log
	Log = rec
	defer func() { Log = prev }()

	DebugWithFields("d", nil)
	InfoWithFields("i", nil)
	WarnWithFields("w", nil)
	ErrorWithFields("e", nil)

	assert.Equal(t, []string{"debug", "info", "warn", "error"}, rec.calls)
}
