package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/doeshing/orgai/internal/domain"
)

// StdLogger is a lightweight implementation backed by Go's log package.
// Console output is gated by verbose; the optional file sink records every level.
type StdLogger struct {
	verbose bool
	console *log.Logger
	file    *log.Logger
	closer  io.Closer
}

// NewStd creates a StdLogger writing to stderr.
func NewStd(verbose bool) *StdLogger {
	return &StdLogger{verbose: verbose, console: log.New(os.Stderr, "", log.LstdFlags)}
}

// NewWithFile creates a StdLogger that also appends to a rotating log file
// when settings.File is set.
func NewWithFile(verbose bool, settings domain.LoggingSettings) *StdLogger {
	l := NewStd(verbose)
	if strings.TrimSpace(settings.File) == "" {
		return l
	}
	sink := &lumberjack.Logger{
		Filename:   settings.File,
		MaxSize:    valueOr(settings.MaxSizeMB, domain.DefaultLogMaxSizeMB),
		MaxBackups: valueOr(settings.MaxBackups, domain.DefaultLogMaxBackups),
		MaxAge:     valueOr(settings.MaxAgeDays, domain.DefaultLogMaxAgeDays),
	}
	l.file = log.New(sink, "", log.LstdFlags)
	l.closer = sink
	return l
}

// SetVerbose toggles console output.
func (l *StdLogger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

// SetOutput redirects console output.
func (l *StdLogger) SetOutput(w io.Writer) {
	l.console.SetOutput(w)
}

// Close releases the file sink, if any.
func (l *StdLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *StdLogger) Debug(msg string, fields map[string]interface{}) {
	l.write("DEBUG", msg, nil, fields)
}

func (l *StdLogger) Info(msg string, fields map[string]interface{}) {
	l.write("INFO", msg, nil, fields)
}

func (l *StdLogger) Warn(msg string, fields map[string]interface{}) {
	l.write("WARN", msg, nil, fields)
}

func (l *StdLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.write("ERROR", msg, err, fields)
}

func (l *StdLogger) write(level, msg string, err error, fields map[string]interface{}) {
	if !l.verbose && l.file == nil {
		return
	}
	line := format(level, msg, err, fields)
	if l.verbose {
		l.console.Println(line)
	}
	if l.file != nil {
		l.file.Println(line)
	}
}

func format(level, msg string, err error, fields map[string]interface{}) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level, msg)
	if err != nil {
		fmt.Fprintf(&b, " error=%q", err.Error())
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	return b.String()
}

func valueOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
