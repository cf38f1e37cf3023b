// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/sirupsen/logrus"
)

// testLoggerAdapter maps log output into calls to testing.T.Log, so that
// logs only show up for failed tests.
type testLoggerAdapter struct {
	t      testing.TB
	prefix string
}

func (a *testLoggerAdapter) Write(d []byte) (int, error) {
	n := len(d)
	if n > 0 && d[n-1] == '\n' {
		d = d[:n-1]
	}
	if a.prefix != "" {
		a.t.Log(a.prefix + ": " + string(d))
		return n, nil
	}
	a.t.Log(string(d))

	return n, nil
}

// NewTestLogger returns a debug-level logger writing to t.
func NewTestLogger(t testing.TB) *logrus.Logger {
	logger := logrus.New()
	logger.Out = &testLoggerAdapter{t: t}
	logger.Level = logrus.DebugLevel

	return logger
}

// NewTestEntry is NewTestLogger with a prefix on every line.
func NewTestEntry(t testing.TB, prefix string) *logrus.Entry {
	logger := logrus.New()
	logger.Out = &testLoggerAdapter{t: t, prefix: prefix}
	logger.Level = logrus.DebugLevel

	return logrus.NewEntry(logger)
}

// NewTestConfig returns a default Config whose logger writes to t.
func NewTestConfig(t testing.TB) *Config {
	c := NewDefaultConfig()
	c.logger = NewTestLogger(t)

	return c
}
