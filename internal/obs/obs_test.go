package obs

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestPkgLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutputForTests(&buf)
	defer restore()

	Pkg("pages").Info("clicked element", "selector", "#add-song")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if record["pkg"] != "pages" {
		t.Errorf("expected pkg=pages, got %v", record["pkg"])
	}
	if record["selector"] != "#add-song" {
		t.Errorf("expected selector attr, got %v", record["selector"])
	}
	ts, _ := record["time"].(string)
	if !strings.HasSuffix(ts, "Z") {
		t.Errorf("timestamp should be UTC RFC3339Nano, got %q", ts)
	}
}

func TestFromAttachesCorrelation(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutputForTests(&buf)
	defer restore()

	ctx := WithCorrelation(context.Background(), Correlation{RunID: "run-123", Check: "header"})
	From(ctx).Info("probe finished")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if record["run_id"] != "run-123" {
		t.Errorf("expected run_id attr, got %v", record["run_id"])
	}
	if record["check"] != "header" {
		t.Errorf("expected check attr, got %v", record["check"])
	}
}

func TestCorrelationMerging(t *testing.T) {
	ctx := WithCorrelation(context.Background(), Correlation{RunID: "run-1"})
	ctx = WithCorrelation(ctx, Correlation{Suite: "navheader"})

	corr := CorrelationFromContext(ctx)
	if corr.RunID != "run-1" || corr.Suite != "navheader" {
		t.Errorf("correlation fields should merge, got %+v", corr)
	}
}

func TestTeeHandlerSplitsLevels(t *testing.T) {
	var combined, errorsOnly bytes.Buffer
	l := slog.New(teeHandler{
		primary:   jsonHandler(&combined, slog.LevelDebug),
		secondary: jsonHandler(&errorsOnly, slog.LevelWarn),
	})

	l.Info("routine probe")
	l.Warn("element missing")

	if got := strings.Count(combined.String(), "\n"); got != 2 {
		t.Errorf("combined should carry both records, got %d", got)
	}
	if got := strings.Count(errorsOnly.String(), "\n"); got != 1 {
		t.Errorf("error log should carry only the warning, got %d", got)
	}
	if !strings.Contains(errorsOnly.String(), "element missing") {
		t.Errorf("error log should contain the warning record: %q", errorsOnly.String())
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	if !strings.HasPrefix(a, "run-") {
		t.Errorf("run id should carry run- prefix: %q", a)
	}
	if a == b {
		t.Error("run ids should be unique")
	}
}
