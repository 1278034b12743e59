package log

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Helper to capture output from os.Stdout and os.Stderr
func captureOutput(f func()) (stdout, stderr string) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()

	os.Stdout = wOut
	os.Stderr = wErr

	outCh := make(chan string)
	errCh := make(chan string)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		outCh <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rErr)
		errCh <- buf.String()
	}()

	f()

	_ = wOut.Close()
	_ = wErr.Close()

	stdout = <-outCh
	stderr = <-errCh

	os.Stdout = oldStdout
	os.Stderr = oldStderr

	return stdout, stderr
}

func withFixedClock(t *testing.T) {
	t.Helper()
	original := now
	now = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 123000000, time.UTC) }
	t.Cleanup(func() { now = original })
}

func withSink(t *testing.T, name, format string) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := SetFile(buf, name, format); err != nil {
		t.Fatalf("SetFile() error = %v", err)
	}
	t.Cleanup(func() { _ = SetFile(nil, "", "") })
	return buf
}

func TestLevelString(t *testing.T) {
	tests := map[Level]string{
		LevelDebug:   "DEBUG",
		LevelInfo:    "INFO",
		LevelWarning: "WARNING",
		LevelError:   "ERROR",
	}
	for level, want := range tests {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestRecord_DefaultFormat(t *testing.T) {
	withFixedClock(t)
	buf := withSink(t, "", "")

	Record(LevelInfo, "added %d domains", 3)

	want := "[INFO:root:2024-03-05 14:07:09,123]: added 3 domains\n"
	if got := buf.String(); got != want {
		t.Errorf("record = %q, want %q", got, want)
	}
}

func TestRecord_CustomFormat(t *testing.T) {
	withFixedClock(t)
	buf := withSink(t, "spamlists", "%(asctime)s %(name)s %(levelname)s - %(message)s")

	Record(LevelWarning, "careful")

	want := "2024-03-05 14:07:09,123 spamlists WARNING - careful\n"
	if got := buf.String(); got != want {
		t.Errorf("record = %q, want %q", got, want)
	}
}

func TestRecord_NoSink(t *testing.T) {
	_ = SetFile(nil, "", "")
	stdout, stderr := captureOutput(func() {
		Record(LevelError, "nowhere")
	})
	if stdout != "" || stderr != "" {
		t.Errorf("Record without sink should not print, got stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestLog_WritesConsoleAndFile(t *testing.T) {
	withFixedClock(t)
	buf := withSink(t, "", "%(levelname)s %(message)s")

	stdout, stderr := captureOutput(func() {
		Log(LevelWarning, "warn %s", "one")
		Log(LevelError, "fail %s", "two")
	})

	if !strings.Contains(stdout, "[WRN]") || !strings.Contains(stdout, "warn one") {
		t.Errorf("expected warning on stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "[ERR]") || !strings.Contains(stderr, "fail two") {
		t.Errorf("expected error on stderr, got %q", stderr)
	}
	if got, want := buf.String(), "WARNING warn one\nERROR fail two\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestDebugf_VerboseOff(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()
	SetVerbose(false)

	stdout, _ := captureOutput(func() {
		Debugf("hidden")
	})
	if stdout != "" {
		t.Errorf("Expected no output with verbose off, got %q", stdout)
	}
}

func TestOpenFile_CreatesDirectoryAndAppends(t *testing.T) {
	withFixedClock(t)
	path := filepath.Join(t.TempDir(), "log", "history.log")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("previous\n"), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := OpenFile(path, "", "%(message)s")
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	Record(LevelInfo, "next")
	_ = f.Close()
	_ = SetFile(nil, "", "")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "previous\nnext\n"; got != want {
		t.Errorf("log file = %q, want %q", got, want)
	}
}

func TestSetFile_InvalidFormat(t *testing.T) {
	if err := SetFile(&bytes.Buffer{}, "", "%(message)s %(name"); err == nil {
		t.Error("expected error for unterminated placeholder")
	}
	_ = SetFile(nil, "", "")
}
