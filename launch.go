package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"

	"github.com/jetsetilly/sparkler/controller"
	"github.com/jetsetilly/sparkler/copper"
	"github.com/jetsetilly/sparkler/disassembly"
	"github.com/jetsetilly/sparkler/gui"
	"github.com/jetsetilly/sparkler/hardware"
	"github.com/jetsetilly/sparkler/logger"
	"github.com/jetsetilly/sparkler/resources"
	"github.com/jetsetilly/sparkler/version"
)

const programName = "sparkler"

// number of log entries shown on exit if there were any chipset errors
const logTail = 10

type options struct {
	spec    string
	echo    bool
	profile bool
	disasm  bool
	scale   float64
}

func parseArgs(args []string) (options, error) {
	var opts options

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.StringVar(&opts.spec, "spec", "AUTO", "TV specification of the machine: AUTO, NTSC or PAL")
	flgs.BoolVar(&opts.echo, "echo", false, "echo log entries to the terminal")
	flgs.BoolVar(&opts.profile, "profile", false, "create CPU profile")
	flgs.BoolVar(&opts.disasm, "disasm", false, "print the live copper lists on exit")
	flgs.Float64Var(&opts.scale, "scale", 1.5, "initial scaling of the window")
	err := flgs.Parse(args)
	if err != nil {
		return opts, err
	}

	if len(flgs.Args()) > 0 {
		return opts, fmt.Errorf("too many arguments to %s", programName)
	}

	opts.spec = strings.ToUpper(opts.spec)
	switch opts.spec {
	case "AUTO", "NTSC", "PAL":
	default:
		return opts, fmt.Errorf("unsupported specification: %s", opts.spec)
	}

	if opts.scale <= 0 {
		return opts, fmt.Errorf("scale must be positive: %v", opts.scale)
	}

	return opts, nil
}

// merges the gui ending and an interrupt from the terminal into a single stop
// signal for the controller
func stopSignal(guiQuit chan bool) <-chan bool {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT)

	stop := make(chan bool, 1)
	go func() {
		select {
		case <-guiQuit:
		case <-sig:
			logger.Log(logger.Allow, programName, "interrupted")
		}
		signal.Stop(sig)
		stop <- true
	}()
	return stop
}

func launch(guiQuit chan bool, g *gui.GUI, opts options) error {
	st := newStyles()
	fmt.Println(st.banner.Render(fmt.Sprintf(" %s ", version.Title())))

	if opts.echo {
		logger.SetEcho(os.Stdout, false)
	}

	if opts.profile {
		pth, err := resources.JoinPath("cpu.profile")
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		f, err := os.Create(pth)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer func() {
			err := f.Close()
			if err != nil {
				logger.Log(logger.Allow, "performance", err.Error())
			}
		}()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	ctx := &context{
		requestedSpec: opts.spec,
	}
	ctx.Reset()

	mach, err := hardware.Create(ctx, g, true)
	if err != nil {
		return err
	}
	defer mach.Stop()

	logger.Logf(logger.Allow, programName, "native specification is %s", mach.Native().ID)

	ctrl, err := controller.NewController(mach, g, mach.PAL())
	if err != nil {
		return err
	}

	runErr := ctrl.Run(stopSignal(guiQuit))

	if opts.disasm {
		err := disasm(os.Stdout, mach.RAM, ctrl.Fields())
		if err != nil {
			logger.Log(logger.Allow, programName, err.Error())
		}
	}

	closeErr := ctrl.Close()

	if len(ctx.breaks) > 0 {
		fmt.Println(st.err.Render(fmt.Sprintf(" %d chipset errors ", len(ctx.breaks))))
		fmt.Println(st.log.Render(mach.Chipset.Status()))
		var s strings.Builder
		logger.Tail(&s, logTail)
		fmt.Print(st.log.Render(s.String()))
		fmt.Println()
	}

	if runErr != nil {
		return runErr
	}
	return closeErr
}

// disassemble the copper lists that are currently live, reading them back from
// chip memory
func disasm(output io.Writer, mem disassembly.Memory, fields *copper.Fields) error {
	if fields == nil {
		return nil
	}
	for _, p := range fields.Live() {
		entries, err := disassembly.Disassemble(mem, p.Address(), copper.BufferSize/4)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "%s\n", p.Label())
		disassembly.Write(output, entries)
	}
	return nil
}
