package vecpath

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultDiscards(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	JoinFigures([]Figure{
		lineFigure(Pt(0, 0), Pt(1, 0)),
		lineFigure(Pt(1, 0), Pt(1, 1)),
		lineFigure(Pt(1, 1), Pt(0, 0)),
	}, 0.1)
	out := buf.String()
	for _, want := range []string{"joining figures", "rule=append", "closing figure"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q doesn't contain %q", out, want)
		}
	}

	buf.Reset()
	TryParsePath("M0 0 L")
	if !strings.Contains(buf.String(), "rejecting path data") {
		t.Errorf("parse failure wasn't logged: %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) didn't restore the default")
	}
}
