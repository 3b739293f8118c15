package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*ZerologLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewZerologLogger(zerolog.New(&buf)), &buf
}

func TestZerologLogger_Levels(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		log   func(l *ZerologLogger)
		level string
	}{
		{"debug", func(l *ZerologLogger) { l.Debug(ctx, "msg") }, "debug"},
		{"info", func(l *ZerologLogger) { l.Info(ctx, "msg") }, "info"},
		{"warn", func(l *ZerologLogger) { l.Warn(ctx, "msg") }, "warn"},
		{"error", func(l *ZerologLogger) { l.Error(ctx, "msg") }, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestLogger(t)
			tt.log(l)
			assert.Contains(t, buf.String(), `"level":"`+tt.level+`"`)
			assert.Contains(t, buf.String(), `"message":"msg"`)
		})
	}
}

func TestZerologLogger_KeyValuePairs(t *testing.T) {
	l, buf := newTestLogger(t)
	l.Info(context.Background(), "login", "email", "a@b.c", "attempt", 2)

	out := buf.String()
	assert.Contains(t, out, `"email":"a@b.c"`)
	assert.Contains(t, out, `"attempt":2`)
}

func TestZerologLogger_With(t *testing.T) {
	l, buf := newTestLogger(t)
	child := l.With("component", "api")
	require.NotNil(t, child)

	child.Info(context.Background(), "request")
	assert.Contains(t, buf.String(), `"component":"api"`)
}

func TestZerologLogger_OddArgs(t *testing.T) {
	l, buf := newTestLogger(t)
	l.Info(context.Background(), "odd", "key")
	assert.Contains(t, buf.String(), `"key":"(MISSING)"`)
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic
	l.Error(context.Background(), "dropped", "k", "v")
}
