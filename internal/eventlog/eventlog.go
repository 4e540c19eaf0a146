package eventlog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/larsks/appliances/internal/logging"
	"go.uber.org/zap"
)

// DefaultFilePath is the file the file logger appends to unless told otherwise.
const DefaultFilePath = "log.txt"

// Logger records human readable event messages.
type Logger interface {
	Log(message string)
}

// Type selects a Logger implementation.
type Type int

const (
	Console Type = iota
	File
)

func (t Type) String() string {
	switch t {
	case Console:
		return "console"
	case File:
		return "file"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType converts a configuration value such as "console" to a Type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "console":
		return Console, nil
	case "file":
		return File, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

type options struct {
	writer   io.Writer
	filePath string
}

// Option configures a logger built by New.
type Option func(*options)

// WithWriter sets the destination of the console logger.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// WithFilePath sets the file the file logger appends to.
func WithFilePath(path string) Option {
	return func(o *options) {
		o.filePath = path
	}
}

// New returns a logger of the requested type, or nil if the type is not
// recognized. Callers must check for nil before use.
func New(t Type, opts ...Option) Logger {
	o := options{
		writer:   os.Stdout,
		filePath: DefaultFilePath,
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch t {
	case Console:
		return NewConsoleLogger(o.writer)
	case File:
		return NewFileLogger(o.filePath)
	default:
		return nil
	}
}

// Close releases any resources held by l.
func Close(l Logger) error {
	if c, ok := l.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ConsoleLogger writes "[Console] " prefixed lines to a writer.
type ConsoleLogger struct {
	w io.Writer
}

// NewConsoleLogger creates a console logger writing to w.
func NewConsoleLogger(w io.Writer) *ConsoleLogger {
	return &ConsoleLogger{w: w}
}

func (l *ConsoleLogger) Log(message string) {
	fmt.Fprintf(l.w, "[Console] %s\n", message)
}

// FileLogger appends "[File] " prefixed lines to a file. If the file could
// not be opened all messages are dropped.
type FileLogger struct {
	path  string
	file  *os.File
	mutex sync.Mutex
}

// NewFileLogger opens path for appending, creating it if necessary.
func NewFileLogger(path string) *FileLogger {
	l := &FileLogger{path: path}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logging.Warn("event log file unavailable, discarding messages",
			zap.String("path", path), zap.Error(err))
		return l
	}

	l.file = f
	return l
}

func (l *FileLogger) Log(message string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.file == nil {
		return
	}
	if _, err := fmt.Fprintf(l.file, "[File] %s\n", message); err != nil {
		logging.Debug("event log write failed", zap.String("path", l.path), zap.Error(err))
	}
}

// Close closes the underlying file. Further messages are dropped.
func (l *FileLogger) Close() error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
