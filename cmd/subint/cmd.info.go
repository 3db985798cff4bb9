package main

import (
	"fmt"
	"runtime"

	"github.com/hupe1980/subint/internal/capability"
)

type info struct{}

func (info) Run(gctx *Global) error {
	fmt.Fprintf(gctx.Output, "arch:               %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(gctx.Output, "hardware popcount:  %t\n", capability.HasHardwarePopCount())
	fmt.Fprintf(gctx.Output, "popcount kernel:    %s\n", capability.ActiveKernel())
	fmt.Fprintf(gctx.Output, "kernel overridden:  %t (%s)\n", capability.IsOverridden(), capability.EnvOverride)
	return nil
}
