package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)
	log.Debug().Msg("hidden")
	log.Info().Str("target", "x86_64-unknown-linux-gnu").Msg("resolved")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug event written without verbose: %q", out)
	}
	if !strings.Contains(out, "resolved") || !strings.Contains(out, "x86_64-unknown-linux-gnu") {
		t.Errorf("info event missing: %q", out)
	}

	buf.Reset()
	verbose := New(&buf, true)
	verbose.Debug().Msg("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug event missing with verbose: %q", buf.String())
	}
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	log.Error().Msg("nothing")
}

func TestIsTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if isTerminal(f) {
		t.Error("regular file reported as a terminal")
	}
	if isTerminal(&bytes.Buffer{}) {
		t.Error("buffer reported as a terminal")
	}
}

func TestNoColorOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Warn().Msg("plain")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("escape codes written to a non-terminal: %q", buf.String())
	}
}
