// Package cli holds the flag and logging setup shared by the example tools.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevelFlag is a flag.Value for slog levels given by name.
type LogLevelFlag struct {
	Value slog.Level
}

func (l *LogLevelFlag) String() string {
	return l.Value.String()
}

func (l *LogLevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level %q", value)
	}
	l.Value = v
	return nil
}

// LogFlags are the logging flags every tool registers.
type LogFlags struct {
	Level   LogLevelFlag
	LogFile string

	file *lumberjack.Logger
}

// Register adds -loglevel and -logfile to fs.
func (f *LogFlags) Register(fs *flag.FlagSet) {
	f.Level.Value = slog.LevelWarn
	fs.Var(&f.Level, "loglevel", "log level name (DEBUG, INFO, WARN, ERROR)")
	fs.StringVar(&f.LogFile, "logfile", "", "write logs to this rotating file instead of stderr")
}

// Logger builds the logger described by the flags. Logs go to stderr unless a
// log file is set, in which case they go to a size-rotated file.
func (f *LogFlags) Logger() *slog.Logger {
	var w io.Writer = os.Stderr
	if f.LogFile != "" {
		f.file = &lumberjack.Logger{
			Filename:   f.LogFile,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		}
		w = f.file
	}
	return NewLogger(w, f.Level.Value)
}

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup installs the logger built from the parsed flags as the slog default.
func (f *LogFlags) Setup() *slog.Logger {
	logger := f.Logger()
	slog.SetDefault(logger)
	return logger
}

// Close closes the log file opened by Logger, if any.
func (f *LogFlags) Close() error {
	if f.file == nil {
		return nil
	}
	return f.file.Close()
}
