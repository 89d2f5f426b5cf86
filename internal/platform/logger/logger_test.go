package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		"":        Info,
		"WARNING": Warn,
		" error ": Error,
		"nope":    Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestJSONLogger_FieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "cat-registry", Out: &buf})

	log.Debug("hidden", nil)
	log.With(map[string]any{"module": "cats"}).Info("cat added", map[string]any{
		"cat_id": "CAT0000001",
		"error":  errors.New("boom"),
		" ":      "dropped",
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected a single line, got %d: %s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := map[string]any{
		"level":   "info",
		"message": "cat added",
		"app":     "cat-registry",
		"module":  "cats",
		"cat_id":  "CAT0000001",
		"error":   "boom",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Fatalf("field %q: expected %v, got %v", k, v, entry[k])
		}
	}
	if _, ok := entry[" "]; ok {
		t.Fatalf("blank keys must be dropped")
	}
}
