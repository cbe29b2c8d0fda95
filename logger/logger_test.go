package logger

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
)

func TestGetLogger(t *testing.T) {
	old := l
	defer ReplaceLogger(old)

	var lines []string
	ReplaceLogger(funcr.New(func(prefix, args string) {
		lines = append(lines, prefix+" "+args)
	}, funcr.Options{}))

	GetLogger("decoder").Info("hello", "frames", 2)
	GetLogger("encoder").V(1).Info("hidden")

	if assert.Len(t, lines, 1) {
		assert.Contains(t, lines[0], "decoder")
		assert.Contains(t, lines[0], `"frames"=2`)
	}
}

func TestSetup(t *testing.T) {
	old := l
	defer ReplaceLogger(old)

	Setup(false, 0)
	assert.False(t, GetLogger("x").Enabled())

	Setup(true, 1)
	assert.True(t, GetLogger("x").V(1).Enabled())
	assert.False(t, GetLogger("x").V(2).Enabled())
}

func TestVerbosity(t *testing.T) {
	t.Setenv(envLogLevel, "3")
	assert.Equal(t, 3, verbosity())

	t.Setenv(envLogLevel, "")
	t.Setenv(envDebug, "true")
	assert.Equal(t, 1, verbosity())

	t.Setenv(envDebug, "no")
	assert.Equal(t, 0, verbosity())
}

func TestEnvBool(t *testing.T) {
	t.Setenv(envLogEnable, "false")
	assert.False(t, envBool(envLogEnable, true))

	t.Setenv(envLogEnable, "maybe")
	assert.True(t, envBool(envLogEnable, true))
}
