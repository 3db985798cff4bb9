package main

import (
	"fmt"

	"github.com/hupe1980/subint"
)

type invert struct {
	Width  uint32 `help:"register width in bits (0-32)" short:"w" required:"" env:"SUBINT_WIDTH"`
	Format string `help:"output format" enum:"dec,hex,bin" default:"hex"`
	Value  string `arg:"" help:"value to invert (decimal, 0x, 0b or 0o)"`
}

func (t invert) Run(gctx *Global) error {
	r, err := subint.Of(t.Width)
	if err != nil {
		return err
	}

	v, err := parseValue(t.Value)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", t.Value, err)
	}

	_, err = fmt.Fprintln(gctx.Output, formatValue(t.Format, subint.WordBits, r.Invert(v)))
	return err
}
