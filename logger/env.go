package logger

import (
	"os"
	"strconv"
)

const (
	envLogLevel  = "FRAMING_LOG_LEVEL"
	envLogEnable = "FRAMING_LOG_ENABLE"
	envDebug     = "DEBUG"
)

// verbosity reads the stdr verbosity from the environment. DEBUG=true is a
// shortcut for level 1, which shows per-frame errors.
func verbosity() int {
	if v, err := strconv.Atoi(os.Getenv(envLogLevel)); err == nil && v >= 0 {
		return v
	}
	if envBool(envDebug, false) {
		return 1
	}
	return 0
}

func envBool(env string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(env))
	if err != nil {
		return def
	}

	return b
}
