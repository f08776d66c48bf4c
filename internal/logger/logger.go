// Package logger provides leveled logging with per-category debug gating.
//
// Info, Warn and Error always print. Debug output is only written when its
// category has been enabled through Configure.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Category groups debug output by subsystem.
type Category int

const (
	// General covers lifecycle, view switches and saves.
	General Category = iota
	// Draw covers per-frame rendering.
	Draw
	// Touch covers zone registration and pointer hits/misses.
	Touch
	// Verbose covers spammy detail.
	Verbose
	// Perf covers frame timing.
	Perf
)

// String returns the category name used in config files.
func (c Category) String() string {
	switch c {
	case General:
		return "general"
	case Draw:
		return "draw"
	case Touch:
		return "touch"
	case Verbose:
		return "verbose"
	case Perf:
		return "perf"
	default:
		return "unknown"
	}
}

// Flags enables debug categories.
type Flags struct {
	General bool
	Draw    bool
	Touch   bool
	Verbose bool
	Perf    bool
}

var (
	mu          sync.RWMutex
	infoLogger  = newLogger(os.Stderr, "[INFO] ")
	warnLogger  = newLogger(os.Stderr, "[WARN] ")
	errorLogger = newLogger(os.Stderr, "[ERROR] ")
	debugLogger = newLogger(os.Stderr, "[DEBUG] ")
	enabled     = Flags{General: true}
)

func newLogger(w io.Writer, prefix string) *log.Logger {
	return log.New(w, prefix, log.Ltime|log.Lmsgprefix)
}

// SetOutput redirects every level to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	infoLogger = newLogger(w, "[INFO] ")
	warnLogger = newLogger(w, "[WARN] ")
	errorLogger = newLogger(w, "[ERROR] ")
	debugLogger = newLogger(w, "[DEBUG] ")
}

// Configure sets which debug categories are printed.
func Configure(f Flags) {
	mu.Lock()
	defer mu.Unlock()
	enabled = f
}

// Enabled reports whether debug output for c is on.
func Enabled(c Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	switch c {
	case General:
		return enabled.General
	case Draw:
		return enabled.Draw
	case Touch:
		return enabled.Touch
	case Verbose:
		return enabled.Verbose
	case Perf:
		return enabled.Perf
	}
	return false
}

func output(l **log.Logger, format string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	_ = (*l).Output(3, fmt.Sprintf(format, v...))
}

// Infof logs an informational message.
func Infof(format string, v ...any) {
	output(&infoLogger, format, v...)
}

// Warnf logs a recoverable problem.
func Warnf(format string, v ...any) {
	output(&warnLogger, format, v...)
}

// Errorf logs a failure that was recovered at its boundary.
func Errorf(format string, v ...any) {
	output(&errorLogger, format, v...)
}

// Debugf logs only when category c is enabled.
func Debugf(c Category, format string, v ...any) {
	if !Enabled(c) {
		return
	}
	output(&debugLogger, format, v...)
}
