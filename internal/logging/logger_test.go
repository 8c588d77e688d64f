package logging

import (
	"os"
	"strings"
	"testing"
)

func TestLogger_WritesToFile(t *testing.T) {
	dir := t.TempDir()

	l, err := New(dir, "debug", false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log := l.Component("test")
	log.Info().Str("key", "value").Msg("hello from test")

	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing entry:\n%s", data)
	}
	if !strings.Contains(string(data), `"component":"test"`) {
		t.Errorf("log file missing component field:\n%s", data)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	dir := t.TempDir()

	l, err := New(dir, "warn", false)
	if err != nil {
		t.Fatal(err)
	}
	log := l.Component("test")
	log.Debug().Msg("too quiet to land")
	log.Warn().Msg("loud enough")
	l.Close()

	data, _ := os.ReadFile(l.Path())
	if strings.Contains(string(data), "too quiet to land") {
		t.Error("debug entry written despite warn level")
	}
	if !strings.Contains(string(data), "loud enough") {
		t.Error("warn entry missing")
	}
}

func TestLogger_BadLevelFallsBackToInfo(t *testing.T) {
	l, err := New(t.TempDir(), "nonsense", false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer l.Close()

	log := l.Component("test")
	log.Info().Msg("still logged")

	data, _ := os.ReadFile(l.Path())
	if !strings.Contains(string(data), "still logged") {
		t.Error("info entry missing after bad level fallback")
	}
}
