package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/subint/snapshot"
)

type inspect struct {
	Path string `arg:"" help:"snapshot file" type:"existingfile"`
}

func (t inspect) Run(gctx *Global) error {
	f, err := os.Open(t.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := snapshot.Read(f)
	if err != nil {
		return err
	}

	card := s.Bitmap.GetCardinality()
	fmt.Fprintf(gctx.Output, "width:       %d\n", s.Width)
	fmt.Fprintf(gctx.Output, "ones:        %v\n", s.Ones)
	fmt.Fprintf(gctx.Output, "cardinality: %d\n", card)
	if card > 0 {
		fmt.Fprintf(gctx.Output, "minimum:     %s\n", formatValue("hex", s.Width, s.Bitmap.Minimum()))
		fmt.Fprintf(gctx.Output, "maximum:     %s\n", formatValue("hex", s.Width, s.Bitmap.Maximum()))
	}
	return nil
}
