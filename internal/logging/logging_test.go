// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/kirbytri/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, logging.Level(-1))
	assert.Equal(t, zerolog.InfoLevel, logging.Level(0))
	assert.Equal(t, zerolog.DebugLevel, logging.Level(1))
	assert.Equal(t, zerolog.TraceLevel, logging.Level(2))
	assert.Equal(t, zerolog.TraceLevel, logging.Level(5))
}

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	l := logging.Setup(&buf, true, 0)

	l.Debug().Msg("hidden")
	l.Info().Int("crossings", 3).Msg("assembled")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "| INFO  |")
	assert.Contains(t, out, "assembled")
	assert.Contains(t, out, "crossings=3")
	assert.Contains(t, out, "logging_test.go:")
	assert.NotContains(t, out, "\x1b[", "no colour codes")

	buf.Reset()
	l = logging.Setup(&buf, true, 2)
	l.Trace().Msg("deep")
	assert.Contains(t, buf.String(), "| TRACE |")
}
