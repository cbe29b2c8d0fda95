// Package logger holds the logr.Logger shared by the framing packages.
package logger

import (
	"log"
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

var (
	mu sync.RWMutex
	l  = newDefault()
)

func newDefault() logr.Logger {
	if !envBool(envLogEnable, true) {
		return logr.Discard()
	}
	return newStderr(verbosity())
}

func newStderr(v int) logr.Logger {
	stdr.SetVerbosity(v)
	return stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile))
}

// Setup replaces the shared logger by a stderr logger of verbosity v, or by
// a discarding one if enable is false. Environment variables are ignored.
func Setup(enable bool, v int) {
	if !enable {
		ReplaceLogger(logr.Discard())
		return
	}
	ReplaceLogger(newStderr(v))
}

// ReplaceLogger sets the logger returned by later GetLogger calls.
func ReplaceLogger(logger logr.Logger) {
	mu.Lock()
	defer mu.Unlock()
	l = logger
}

// GetLogger returns the shared logger named name.
func GetLogger(name string) logr.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return l.WithName(name)
}
