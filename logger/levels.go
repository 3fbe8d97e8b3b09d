package logger

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

type Level int

const (
	InfoLevel Level = iota
	DebugLevel
	WarnLevel
	ErrorLevel
	DefaultLevel Level = InfoLevel
)

var levels = map[Level]slog.Level{
	DebugLevel: slog.LevelDebug,
	InfoLevel:  slog.LevelInfo,
	WarnLevel:  slog.LevelWarn,
	ErrorLevel: slog.LevelError,
}

var levelNames = map[string]Level{
	"debug": DebugLevel,
	"info":  InfoLevel,
	"warn":  WarnLevel,
	"error": ErrorLevel,
}

// ParseLevel resolves a config level name
func ParseLevel(name string) (Level, error) {
	if l, ok := levelNames[strings.ToLower(name)]; ok {
		return l, nil
	}
	return DefaultLevel, errors.Errorf("unknown log level %q", name)
}

type Type int

const (
	TypeText Type = iota
	TypeJSON
)

// ParseType resolves a config format name
func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "", "text":
		return TypeText, nil
	case "json":
		return TypeJSON, nil
	}
	return TypeText, errors.Errorf("unknown log format %q", name)
}
