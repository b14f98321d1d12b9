package logger

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// DefaultFilePath is where log output is appended, relative to the working directory.
const DefaultFilePath = "logs/walkabout.log"

// maxLines bounds the in-memory history shown by the HUD.
const maxLines = 64

// Logger is a zerolog logger that also keeps the most recent lines in memory so they
// can be drawn on screen.
type Logger struct {
	zerolog.Logger

	mu    sync.Mutex
	lines []string
	file  *os.File
}

// Options configures New. Empty File disables the log file; nil Console disables console output.
type Options struct {
	Level   string
	File    string
	Console io.Writer
}

// New returns a Logger writing to the console, the log file and the in-memory history.
// A log file that cannot be opened is reported through the returned logger and otherwise ignored.
func New(opts Options) *Logger {
	l := &Logger{lines: make([]string, 0, maxLines)}

	history := zerolog.ConsoleWriter{
		Out:          historyWriter{l},
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	writers := []io.Writer{history}
	if opts.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: opts.Console, TimeFormat: time.RFC3339})
	}

	var fileErr error
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			fileErr = err
		} else if f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
			fileErr = err
		} else {
			l.file = f
			writers = append(writers, f)
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	l.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if fileErr != nil {
		l.Warn().Err(fileErr).Str("path", opts.File).Msg("log file disabled")
	}
	return l
}

// Tail returns a copy of the last n lines of history, oldest first.
func (l *Logger) Tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.lines) {
		n = len(l.lines)
	}
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	copy(out, l.lines[len(l.lines)-n:])
	return out
}

// Clip shortens line to at most n runes, ending in "..." when it was cut.
func Clip(line string, n int) string {
	if utf8.RuneCountInString(line) <= n {
		return line
	}
	if n <= 3 {
		return strings.Repeat(".", max(n, 0))
	}
	runes := 0
	for i := range line {
		if runes == n-3 {
			return line[:i] + "..."
		}
		runes++
	}
	return line
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) push(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == maxLines {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:maxLines-1]
	}
	l.lines = append(l.lines, line)
}

// historyWriter receives one formatted event per Write from zerolog.ConsoleWriter.
type historyWriter struct {
	l *Logger
}

func (w historyWriter) Write(p []byte) (int, error) {
	line := string(bytes.TrimRight(p, "\n"))
	if line != "" {
		w.l.push(line)
	}
	return len(p), nil
}
