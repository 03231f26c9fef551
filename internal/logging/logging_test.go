package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" INFO ":  zerolog.InfoLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.WarnLevel,
		"verbose": zerolog.WarnLevel,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestComponentTagsOutput(t *testing.T) {
	original := Logger()
	defer func() {
		mu.Lock()
		base = original
		mu.Unlock()
	}()

	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "json", Output: &buf})

	logger := Component("theme")
	logger.Info().Msg("hello")
	logger.Debug().Msg("hidden")

	out := buf.String()
	if !strings.Contains(out, `"component":"theme"`) {
		t.Fatalf("expected component field, got %s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message should be filtered at info level: %s", out)
	}
}
