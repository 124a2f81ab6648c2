package slogtune

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// Level is an ordered log severity compatible with slog.Level values.
// The scale extends slog's by CRITICAL above ERROR and NOTSET below DEBUG.
type Level slog.Level

// Available log levels, ordered CRITICAL > ERROR > WARNING > INFO > DEBUG > NOTSET.
const (
	LevelNotSet   Level = Level(slog.LevelDebug) - 4
	LevelDebug    Level = Level(slog.LevelDebug)
	LevelInfo     Level = Level(slog.LevelInfo)
	LevelWarning  Level = Level(slog.LevelWarn)
	LevelError    Level = Level(slog.LevelError)
	LevelCritical Level = Level(slog.LevelError) + 4
)

// Canonical level names plus the accepted textual aliases.
const (
	LogLevelNotSet   = "NOTSET"
	LogLevelDebug    = "DEBUG"
	LogLevelInfo     = "INFO"
	LogLevelWarning  = "WARNING"
	LogLevelError    = "ERROR"
	LogLevelCritical = "CRITICAL"
)

var levelsByName = map[string]Level{
	LogLevelNotSet:   LevelNotSet,
	LogLevelDebug:    LevelDebug,
	LogLevelInfo:     LevelInfo,
	LogLevelWarning:  LevelWarning,
	"WARN":           LevelWarning,
	LogLevelError:    LevelError,
	LogLevelCritical: LevelCritical,
	"FATAL":          LevelCritical,
}

var levelRe = regexp.MustCompile(`^([A-Z]+)(?:([+\-])(\d+))?$`)

// ParseLevel converts a level name to its Level value. The name must be an
// upper-case string out of [CRITICAL, ERROR, WARNING, INFO, DEBUG, NOTSET]
// (aliases WARN and FATAL are accepted), optionally followed by +/- an integer
// for levels in between, e.g. "DEBUG-2" or "ERROR+4".
func ParseLevel(name string) (Level, error) {
	if name != strings.ToUpper(name) {
		return LevelNotSet, &UnknownLevelError{Name: name}
	}
	m := levelRe.FindStringSubmatch(name)
	if m == nil {
		return LevelNotSet, &UnknownLevelError{Name: name}
	}
	lvl, ok := levelsByName[m[1]]
	if !ok {
		return LevelNotSet, &UnknownLevelError{Name: name}
	}
	if m[3] != "" {
		nb, _ := strconv.Atoi(m[3])
		if m[2] == "-" {
			return lvl - Level(nb), nil
		}
		return lvl + Level(nb), nil
	}
	return lvl, nil
}

// LevelName returns the canonical name of l. Levels between the named ones
// render as the next lower name plus an offset, e.g. "INFO+2".
func LevelName(l Level) string {
	str := func(base string, val Level) string {
		if l == val {
			return base
		}
		return fmt.Sprintf("%s%+d", base, int(l-val))
	}
	switch {
	case l >= LevelCritical:
		return str(LogLevelCritical, LevelCritical)
	case l >= LevelError:
		return str(LogLevelError, LevelError)
	case l >= LevelWarning:
		return str(LogLevelWarning, LevelWarning)
	case l >= LevelInfo:
		return str(LogLevelInfo, LevelInfo)
	case l >= LevelDebug:
		return str(LogLevelDebug, LevelDebug)
	default:
		return str(LogLevelNotSet, LevelNotSet)
	}
}

func (l Level) String() string {
	return LevelName(l)
}
