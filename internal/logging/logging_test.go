package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger
	return buf.String()
}

// captureLogOutputWithInit captures output by reinitializing the logger
// to write to a buffer. This tests the actual InitLogger ReplaceAttr logic.
func captureLogOutputWithInit(level Level, format Format, f func()) string {
	var buf bytes.Buffer
	SetOutput(&buf, nil)
	InitLogger(level, format)

	f()

	SetOutput(nil, nil)
	InitLogger(LevelWarn, FormatText)
	return buf.String()
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{"Debug level JSON format", LevelDebug, FormatJSON},
		{"Info level JSON format", LevelInfo, FormatJSON},
		{"Warn level JSON format", LevelWarn, FormatJSON},
		{"Error level JSON format", LevelError, FormatJSON},
		{"Info level Text format", LevelInfo, FormatText},
		{"Default level (invalid value)", Level(999), FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			if GetLogger() == nil {
				t.Error("Expected logger to be initialized, got nil")
			}
		})
	}
	InitLogger(LevelWarn, FormatText)
}

func TestLevelFiltering(t *testing.T) {
	output := captureLogOutputWithInit(LevelWarn, FormatText, func() {
		Info("hidden")
		Warn("shown")
	})
	if strings.Contains(output, "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(output, "shown") {
		t.Error("warn message missing")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat("Text"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(Text) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestCommandContext(t *testing.T) {
	ctx := WithCommand(context.Background(), "reader")
	if got := GetCommand(ctx); got != "reader" {
		t.Errorf("GetCommand() = %q", got)
	}
	if got := GetCommand(context.Background()); got != "" {
		t.Errorf("GetCommand(empty) = %q", got)
	}

	output := captureLogOutput(func() {
		InfoContext(ctx, "rendering")
	})
	if !strings.Contains(output, `"command":"reader"`) {
		t.Errorf("command missing from %s", output)
	}
}

func TestLoggingFunctions(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"Debug", func() { Debug("debug message", "key", "value") }},
		{"Info", func() { Info("info message", "key", "value") }},
		{"Warn", func() { Warn("warning message", "key", "value") }},
		{"Error", func() { Error("error message", "key", "value") }},
		{"DebugContext", func() { DebugContext(context.Background(), "m") }},
		{"WarnContext", func() { WarnContext(context.Background(), "m") }},
		{"ErrorContext", func() { ErrorContext(context.Background(), "m") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if output := captureLogOutput(tt.fn); output == "" {
				t.Error("Expected log output, got empty string")
			}
		})
	}
}

func TestDomainHelpers(t *testing.T) {
	output := captureLogOutput(func() {
		BookOpened(4, "64-Jn-morphgnt.txt")
	})
	var rec map[string]any
	if err := json.Unmarshal([]byte(output), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", output, err)
	}
	if rec["msg"] != "book_opened" || rec["book"] != float64(4) || rec["path"] != "64-Jn-morphgnt.txt" {
		t.Errorf("BookOpened record = %v", rec)
	}

	output = captureLogOutput(func() {
		TableLoaded("glosses", "glosses.yaml", 12, "extra", true)
	})
	for _, want := range []string{`"table":"glosses"`, `"entries":12`, `"extra":true`} {
		if !strings.Contains(output, want) {
			t.Errorf("TableLoaded output missing %s: %s", want, output)
		}
	}

	output = captureLogOutput(func() {
		CommandDone(WithCommand(context.Background(), "export"), 1500*time.Millisecond)
	})
	if !strings.Contains(output, `"duration_ms":1500`) || !strings.Contains(output, `"command":"export"`) {
		t.Errorf("CommandDone output = %s", output)
	}
}

func TestReplaceAttrTimestamp(t *testing.T) {
	output := captureLogOutputWithInit(LevelInfo, FormatJSON, func() {
		Info("timestamp test")
	})

	var rec map[string]any
	if err := json.Unmarshal([]byte(output), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", output, err)
	}
	ts, _ := rec["time"].(string)
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("time %q is not RFC3339: %v", ts, err)
	}
}

func TestStatus(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	var buf bytes.Buffer
	SetOutput(nil, &buf)
	defer SetOutput(nil, nil)

	Status("output %d/%d lexemes appearing %d times or more", 3, 10, 5)
	if got := buf.String(); got != "output 3/10 lexemes appearing 5 times or more\n" {
		t.Errorf("Status() wrote %q", got)
	}
}

func TestStatusColor(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	var buf bytes.Buffer
	SetOutput(nil, &buf)
	defer SetOutput(nil, nil)

	Status("done")
	if got := buf.String(); !strings.HasPrefix(got, "\x1b[36m") || !strings.Contains(got, "done") {
		t.Errorf("Status() wrote %q, want cyan", got)
	}
}

func TestInit(t *testing.T) {
	if defaultLogger == nil {
		t.Error("Expected defaultLogger to be initialized by init()")
	}
}

func TestLevelConstants(t *testing.T) {
	if LevelDebug >= LevelInfo || LevelInfo >= LevelWarn || LevelWarn >= LevelError {
		t.Error("Expected LevelDebug < LevelInfo < LevelWarn < LevelError")
	}
	if FormatJSON == FormatText {
		t.Error("Expected FormatJSON != FormatText")
	}
}
