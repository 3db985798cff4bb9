package main

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/hupe1980/subint"
)

// Global holds flags shared by every command.
type Global struct {
	LogLevel  string `help:"minimum log level" enum:"debug,info,warn,error" default:"info" env:"SUBINT_LOG_LEVEL"`
	LogFormat string `help:"log output format" enum:"text,json" default:"text" env:"SUBINT_LOG_FORMAT"`

	Context context.Context `kong:"-"`
	Output  io.Writer       `kong:"-"`
	Logger  *subint.Logger  `kong:"-"`
}

func (g Global) level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(g.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (g Global) newLogger(w io.Writer) *subint.Logger {
	if g.LogFormat == "json" {
		return subint.NewJSONLogger(w, g.level())
	}
	return subint.NewTextLogger(w, g.level())
}

// parseValue accepts decimal, 0x, 0b and 0o literals.
func parseValue(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
