// SPDX-License-Identifier: MIT

// Package logging configures the zerolog console output used by the
// command-line tools.
package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorMagenta = 35
	colorBold    = 1
	colorGray    = 90
)

// Level maps a -v count to a zerolog level: 0 is info, 1 debug, 2 or more trace.
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.InfoLevel
	case verbosity == 1:
		return zerolog.DebugLevel
	}

	return zerolog.TraceLevel
}

// Setup points the global logger at a console writer on w, sets the global
// level from verbosity and returns the logger. Lines carry the time, the
// caller file:line and a boxed level tag.
func Setup(w io.Writer, noColour bool, verbosity int) zerolog.Logger {
	colorize := func(s any, c int) string {
		if noColour {
			return fmt.Sprintf("%v", s)
		}
		return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
	}

	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: noColour}
	cw.FormatCaller = func(i any) string {
		c, _ := i.(string)
		if c == "" {
			return c
		}
		return colorize(c, colorGray)
	}
	cw.FormatLevel = func(i any) string {
		ll, ok := i.(string)
		if !ok {
			return colorize("| ??? |", colorBold)
		}
		switch ll {
		case zerolog.LevelTraceValue:
			return colorize("| TRACE |", colorMagenta)
		case zerolog.LevelDebugValue:
			return colorize("| DEBUG |", colorYellow)
		case zerolog.LevelInfoValue:
			return colorize("| INFO  |", colorGreen)
		case zerolog.LevelWarnValue:
			return colorize("| WARN  |", colorRed)
		case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
			return colorize(colorize(fmt.Sprintf("| %-5s |", strings.ToUpper(ll)), colorRed), colorBold)
		}
		return colorize(ll, colorBold)
	}
	cw.PartsOrder = []string{
		zerolog.TimestampFieldName,
		zerolog.CallerFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
	}

	zerolog.SetGlobalLevel(Level(verbosity))
	log.Logger = zerolog.New(cw).With().Timestamp().Caller().Logger()

	return log.Logger
}
