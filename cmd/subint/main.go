package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/alecthomas/kong"
	"github.com/hupe1980/subint/internal/capability"
)

func main() {
	var shellcli struct {
		Global
		Permute permute `cmd:"" help:"list every value with a fixed number of ones in the register"`
		Invert  invert  `cmd:"" help:"flip the low bits of a value"`
		Count   count   `cmd:"" help:"number of permutations, C(width, ones)"`
		Export  export  `cmd:"" help:"write permutation sets to a compressed snapshot"`
		Inspect inspect `cmd:"" help:"summarize a snapshot file"`
		Info    info    `cmd:"" help:"display popcount kernel (${vars_kernel}) and cpu capabilities on ${vars_arch}"`
	}

	var (
		err    error
		ctx    *kong.Context
		cancel context.CancelFunc
	)

	log.SetFlags(log.Lshortfile | log.LUTC | log.Ltime)

	shellcli.Context, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	shellcli.Output = os.Stdout

	parser := kong.Must(
		&shellcli,
		kong.Name("subint"),
		kong.Description("enumerate fixed-popcount bit permutations of a 32-bit register"),
		kong.Vars{
			"vars_arch":   runtime.GOARCH,
			"vars_kernel": capability.ActiveKernel().String(),
		},
		kong.UsageOnError(),
		kong.Bind(&shellcli.Global),
	)

	if ctx, err = parser.Parse(os.Args[1:]); err != nil {
		log.Println(err)
		os.Exit(1)
	}

	shellcli.Logger = shellcli.Global.newLogger(os.Stderr)

	if err = ctx.Run(); err != nil {
		shellcli.Logger.Error("command failed", slog.String("command", ctx.Command()), slog.Any("error", err))
		os.Exit(1)
	}
}
