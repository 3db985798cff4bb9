package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hupe1980/subint"
	"github.com/hupe1980/subint/codec"
)

type permute struct {
	Width  uint32 `help:"register width in bits (0-32)" short:"w" required:"" env:"SUBINT_WIDTH"`
	Ones   uint32 `help:"number of set bits per value" short:"k" required:""`
	Format string `help:"output format" enum:"dec,hex,bin,json" default:"dec"`
	Codec  string `help:"json codec" enum:"json,go-json" default:"go-json"`
	Limit  uint64 `help:"stop after this many values (0 = all)" default:"0"`
}

func (t permute) Run(gctx *Global) error {
	r, err := subint.Of(t.Width)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(gctx.Output)
	if err := t.write(gctx, out, r); err != nil {
		return err
	}
	return out.Flush()
}

func (t permute) write(gctx *Global, out io.Writer, r subint.Register) error {
	gen := r.Permute(t.Ones)

	if t.Format == "json" {
		c, _ := codec.ByName(t.Codec)
		listing := codec.Listing{Width: t.Width, Ones: t.Ones, Count: r.Count(t.Ones), Values: []uint32{}}
		for v := range gen.All() {
			if t.Limit > 0 && uint64(len(listing.Values)) >= t.Limit {
				break
			}
			listing.Values = append(listing.Values, v)
		}
		b, err := c.Marshal(listing)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	var n uint64
	for v := range gen.All() {
		if t.Limit > 0 && n >= t.Limit {
			break
		}
		if err := gctx.Context.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, formatValue(t.Format, t.Width, v)); err != nil {
			return err
		}
		n++
	}

	gctx.Logger.Debug("permute completed", "width", t.Width, "ones", t.Ones, "printed", n)
	return nil
}

func formatValue(format string, width, v uint32) string {
	switch format {
	case "hex":
		return fmt.Sprintf("%#0*x", int(width+3)/4, v)
	case "bin":
		return fmt.Sprintf("%0*b", max(int(width), 1), v)
	default:
		return fmt.Sprint(v)
	}
}
