package main

import (
	"fmt"

	"github.com/hupe1980/subint"
)

type count struct {
	Width uint32 `help:"register width in bits (0-32)" short:"w" required:"" env:"SUBINT_WIDTH"`
	Ones  uint32 `help:"number of set bits per value" short:"k" required:""`
}

func (t count) Run(gctx *Global) error {
	r, err := subint.Of(t.Width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(gctx.Output, r.Count(t.Ones))
	return err
}
