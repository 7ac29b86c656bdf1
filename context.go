package main

import (
	"github.com/jetsetilly/sparkler/hardware/spec"
	"github.com/jetsetilly/sparkler/logger"
)

type context struct {
	requestedSpec string
	breaks        []error
}

func (ctx *context) Spec() spec.Spec {
	switch ctx.requestedSpec {
	case "AUTO", "NTSC":
		return spec.NTSC
	case "PAL":
		return spec.PAL
	}

	panic("currently unsupported specification")
}

func (ctx *context) Reset() {
	ctx.breaks = ctx.breaks[:0]
}

// errors raised by the chipset are logged as they happen and counted so they
// can be summarised on exit
func (ctx *context) Break(e error) {
	logger.Log(logger.Allow, "chipset", e.Error())
	ctx.breaks = append(ctx.breaks, e)
}
