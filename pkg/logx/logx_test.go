package logx

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestLoggerPlainForBuffers(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.now = func() time.Time { return time.Date(2026, 1, 1, 12, 30, 0, 0, time.UTC) }

	l.Progress(10, 4612.34, 4650.1)
	got := buf.String()
	want := "12:30:00Z  [GEN ]  Gen  10 | Best: 4612.3s | Top 10 avg: 4650.1s\n"
	if got != want {
		t.Errorf("Progress wrote %q, want %q", got, want)
	}
	if strings.Contains(got, "\x1b[") {
		t.Error("non-terminal writer should not get colour codes")
	}
}

func TestColorWrapping(t *testing.T) {
	l := &Logger{color: true}
	if got := l.Success("ok"); got != green+"ok"+reset {
		t.Errorf("Success = %q", got)
	}
	l.color = false
	if got := l.Error("bad"); got != "bad" {
		t.Errorf("Error = %q", got)
	}
}

func TestNilWriter(t *testing.T) {
	l := New(nil)
	l.Logf("RUN ", "dropped %d", 1)
}
