package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// decode parses the single JSON line written by a zerolog logger.
func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestFieldHelpers(t *testing.T) {
	t.Parallel()
	errBoom := errors.New("boom")
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("key", "value"), "key", "value"},
		{"Int", Int("count", 42), "count", 42},
		{"Bool", Bool("ok", true), "ok", true},
		{"Duration", Duration("took", time.Second), "took", time.Second},
		{"Err", Err(errBoom), "error", errBoom},
		{"Algorithm", Algorithm("grid"), "algo", "grid"},
		{"RunID", RunID("abc"), "run_id", "abc"},
		{"Digits", Digits("a_digits", 18), "a_digits", 18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.field.Key != tt.wantKey || tt.field.Value != tt.wantValue {
				t.Errorf("got %+v, want {%s %v}", tt.field, tt.wantKey, tt.wantValue)
			}
		})
	}
}

func TestZerologAdapterLevels(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))

	logger.Info("multiplied", Algorithm("dft"), Digits("digits", 12))
	entry := decode(t, &buf)
	if entry["level"] != "info" || entry["message"] != "multiplied" || entry["algo"] != "dft" || entry["digits"] != float64(12) {
		t.Errorf("unexpected info entry: %v", entry)
	}

	buf.Reset()
	logger.Error("failed", errors.New("boom"), Bool("retry", false))
	entry = decode(t, &buf)
	if entry["level"] != "error" || entry["error"] != "boom" || entry["retry"] != false {
		t.Errorf("unexpected error entry: %v", entry)
	}

	buf.Reset()
	logger.Warn("slow", Duration("took", 1500*time.Millisecond))
	entry = decode(t, &buf)
	if entry["level"] != "warn" {
		t.Errorf("unexpected warn entry: %v", entry)
	}

	buf.Reset()
	logger.Debug("detail")
	if entry := decode(t, &buf); entry["level"] != "debug" {
		t.Errorf("unexpected debug entry: %v", entry)
	}
}

func TestZerologAdapterFiltersBelowLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel))
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug entry written at info level: %q", buf.String())
	}
}

func TestWithAddsContextFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf)).With(RunID("run-1"))
	logger.Info("start")
	if entry := decode(t, &buf); entry["run_id"] != "run-1" {
		t.Errorf("run_id missing: %v", entry)
	}
}

func TestNewLoggerTagsComponent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	NewLogger(&buf, "orchestration").Info("hello")
	entry := decode(t, &buf)
	if entry["component"] != "orchestration" {
		t.Errorf("component missing: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Errorf("timestamp missing: %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]zerolog.Level{
		"":         zerolog.WarnLevel,
		"debug":    zerolog.DebugLevel,
		"INFO":     zerolog.InfoLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"disabled": zerolog.Disabled,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil || !strings.Contains(err.Error(), "loud") {
		t.Errorf("ParseLevel(loud) error = %v", err)
	}
}
