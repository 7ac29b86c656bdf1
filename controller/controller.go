// Package controller reads the keyboard once per field and changes the
// display in response.
package controller

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/sparkler/bitmap"
	"github.com/jetsetilly/sparkler/copper"
	"github.com/jetsetilly/sparkler/display"
	"github.com/jetsetilly/sparkler/gui"
	"github.com/jetsetilly/sparkler/hardware"
	"github.com/jetsetilly/sparkler/logger"
	"github.com/jetsetilly/sparkler/overlay"
	"github.com/jetsetilly/sparkler/pattern"
)

// SettleFields is the number of fields to wait after the display has been
// changed. this stops a held key from changing the display on every field
const SettleFields = 5

// Keyboard is the source of key state
type Keyboard interface {
	ReadMatrix() gui.Matrix
}

// Machine is the hardware being controlled
type Machine interface {
	bitmap.Memory
	copper.Memory
	copper.Installer
	WaitTOF()
	Capture() hardware.Snapshot
	Restore(hardware.Snapshot) error
}

type Controller struct {
	mach Machine
	keys Keyboard

	// the state of the display. changed by the keyboard
	State State

	// action that will be performed on the next Poll() regardless of the
	// keyboard state
	pending Action

	fields *copper.Fields
	bm     *bitmap.Bitmap

	// the state of the hardware when the controller was created
	snapshot hardware.Snapshot
}

// NewController takes over the display of the machine. the display is not
// changed until the first call to Poll()
func NewController(mach Machine, keys Keyboard, pal bool) (*Controller, error) {
	c := &Controller{
		mach:     mach,
		keys:     keys,
		State:    Initial(pal),
		pending:  FullRebuildPending,
		snapshot: mach.Capture(),
	}

	var err error
	c.fields, err = copper.NewFields(mach, mach)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}

	logger.Logf(logger.Allow, "controller", "captured %s", c.snapshot)

	return c, nil
}

// Poll the keyboard and apply any changes. returns true if the user has asked
// to exit
func (c *Controller) Poll() (bool, error) {
	var action Action
	c.State, action = Transition(c.State, c.keys.ReadMatrix())

	if action == Exit {
		return true, nil
	}

	action = max(action, c.pending)
	c.pending = Idle

	return false, c.apply(action)
}

func (c *Controller) apply(action Action) error {
	switch action {
	case FullRebuildPending:
		c.mach.WaitTOF()
		err := c.rebuild()
		if err != nil {
			return err
		}
		c.settle()
	case ColourPatchPending:
		c.mach.WaitTOF()
		err := c.fields.PatchColours(c.State.Palette)
		if err != nil {
			return fmt.Errorf("controller: %w", err)
		}
		overlay.Draw(c.bm, c.State.Display, c.State.Palette, c.State.ShowHelp)
		logger.Logf(logger.Allow, "controller", "patch: %s", c.State.Palette)
		c.settle()
	}
	return nil
}

// rebuild the bitmap and the copper programs for the current state
func (c *Controller) rebuild() error {
	cfg := c.State.Display

	if c.bm != nil {
		err := c.bm.Free()
		c.bm = nil
		if err != nil {
			return fmt.Errorf("controller: %w", err)
		}
	}

	var err error
	c.bm, err = bitmap.Alloc(c.mach, cfg.Width(), cfg.Height())
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}

	pattern.Generate(c.bm.Plane(0), cfg.Width(), cfg.Height(), cfg.LineMode)

	err = c.fields.RebuildAll(c.bm, cfg, c.State.Palette)
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}

	overlay.Draw(c.bm, cfg, c.State.Palette, c.State.ShowHelp)
	logger.Logf(logger.Allow, "controller", "rebuild: %s (%s)", cfg, c.fields)

	return nil
}

// Fields returns the copper programs driving the display
func (c *Controller) Fields() *copper.Fields {
	return c.fields
}

// Bitmap returns the bitmap being displayed. it will be nil before the first
// call to Poll()
func (c *Controller) Bitmap() *bitmap.Bitmap {
	return c.bm
}

func (c *Controller) settle() {
	for range SettleFields {
		c.mach.WaitTOF()
	}
}

// Run polls the keyboard once every field until the user asks to exit, the
// stop channel is signalled or an error occurs
func (c *Controller) Run(stop <-chan bool) error {
	for {
		select {
		case <-stop:
			return nil
		default:
		}

		exit, err := c.Poll()
		if err != nil {
			return err
		}
		if exit {
			return nil
		}

		c.mach.WaitTOF()
	}
}

// Close returns the display to the state it was in when the controller was
// created and frees all memory
func (c *Controller) Close() error {
	var errs []error

	// a non-interlaced lores display is the least surprising display to
	// leave the hardware in before handing it back
	if c.bm != nil {
		cfg := display.Config{LineMode: c.State.Display.LineMode}
		err := c.fields.RebuildAll(c.bm, cfg, c.State.Palette)
		if err != nil {
			errs = append(errs, err)
		}
		c.mach.WaitTOF()
		c.mach.WaitTOF()
	}

	err := c.mach.Restore(c.snapshot)
	if err != nil {
		errs = append(errs, err)
	}
	logger.Logf(logger.Allow, "controller", "restored %s", c.snapshot)

	if c.bm != nil {
		errs = append(errs, c.bm.Free())
		c.bm = nil
	}
	errs = append(errs, c.fields.Free())

	err = errors.Join(errs...)
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	return nil
}
