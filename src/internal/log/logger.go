package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/valyala/fasttemplate"
)

// Level is the severity of a log record.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// DefaultFormat is the log file record layout used when none is configured.
const DefaultFormat = "[%(levelname)s:%(name)s:%(asctime)s]: %(message)s"

// DefaultName is the logger name written into %(name)s.
const DefaultName = "root"

const timeLayout = "2006-01-02 15:04:05,000"

var (
	verbose     = false
	disableLogs = false
	forceStdErr = false
	logPrefixes = map[Level]string{
		LevelDebug:   "\033[37m[DBG]\033[0m", // White
		LevelInfo:    "\033[36m[INF]\033[0m", // Cyan
		LevelWarning: "\033[33m[WRN]\033[0m", // Yellow
		LevelError:   "\033[31m[ERR]\033[0m", // Red
	}

	sinkMu sync.Mutex
	sink   *fileSink
	now    = time.Now
)

type fileSink struct {
	w    io.Writer
	name string
	tmpl *fasttemplate.Template
}

// String returns the level name as it appears in %(levelname)s.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// SetVerbose sets the logging verbosity. If true, all log levels are displayed.
func SetVerbose(v bool) {
	verbose = v
}

// IsVerbose returns true if verbose logging is enabled.
func IsVerbose() bool {
	return verbose
}

// DisableLogs disables all console logging. The log file, if any, still receives records.
func DisableLogs() {
	disableLogs = true
}

// SetForceStdErr sends all console logs to stderr.
func SetForceStdErr(v bool) {
	forceStdErr = v
}

// SetFile attaches a log file sink. Every record is appended to w, rendered
// from format with %(levelname)s, %(name)s, %(asctime)s and %(message)s.
// A nil w detaches the sink.
func SetFile(w io.Writer, name, format string) error {
	sinkMu.Lock()
	defer sinkMu.Unlock()

	if w == nil {
		sink = nil
		return nil
	}
	if format == "" {
		format = DefaultFormat
	}
	if name == "" {
		name = DefaultName
	}

	tmpl, err := fasttemplate.NewTemplate(format, "%(", ")s")
	if err != nil {
		return fmt.Errorf("invalid log format %q: %w", format, err)
	}

	sink = &fileSink{w: w, name: name, tmpl: tmpl}
	return nil
}

// OpenFile opens (creating if needed) the log file at path for appending and
// attaches it as the file sink. The caller closes the returned file.
func OpenFile(path, name, format string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	if err := SetFile(f, name, format); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

// Debugf logs a debug message if verbose is true.
func Debugf(format string, args ...interface{}) {
	if verbose {
		logMessage(LevelDebug, format, args...)
	}
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logMessage(LevelInfo, format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	logMessage(LevelWarning, format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logMessage(LevelError, format, args...)
}

// Fatalf logs an error message and exits the program.
func Fatalf(format string, args ...interface{}) {
	logMessage(LevelError, format, args...)
	os.Exit(1)
}

// Log logs a message at the given level.
func Log(level Level, format string, args ...interface{}) {
	switch level {
	case LevelDebug:
		Debugf(format, args...)
	case LevelInfo:
		Infof(format, args...)
	case LevelWarning:
		Warnf(format, args...)
	default:
		Errorf(format, args...)
	}
}

// Record writes a message to the log file only, leaving the console alone.
// It is used for output that the caller already printed in its own form.
func Record(level Level, format string, args ...interface{}) {
	writeFile(level, fmt.Sprintf(format, args...))
}

// logMessage formats and writes a log message with the specified log level.
func logMessage(level Level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	writeFile(level, message)

	if disableLogs {
		return
	}
	output := logPrefixes[level] + " " + message + "\n"

	// Write the output to the appropriate stream
	if forceStdErr || level == LevelError {
		_, _ = os.Stderr.WriteString(output)
	} else {
		_, _ = os.Stdout.WriteString(output)
	}
}

func writeFile(level Level, message string) {
	sinkMu.Lock()
	defer sinkMu.Unlock()

	if sink == nil {
		return
	}

	record := sink.tmpl.ExecuteString(map[string]interface{}{
		"levelname": level.String(),
		"name":      sink.name,
		"asctime":   now().Format(timeLayout),
		"message":   message,
	})
	if !strings.HasSuffix(record, "\n") {
		record += "\n"
	}
	_, _ = io.WriteString(sink.w, record)
}
