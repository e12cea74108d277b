// This file is part of Chordpad.
//
// Chordpad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chordpad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chordpad.  If not, see <https://www.gnu.org/licenses/>.

//go:build linux

package evdevinput

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/chordpad/chordpad/logger"
	"github.com/chordpad/chordpad/userinput"
	"github.com/holoplot/go-evdev"
)

// Source of keyboard events from a linux input device.
type Source struct {
	path string
	dev  *evdev.InputDevice

	// the uinput clone of the device. nil if Clone() has not been called
	out *evdev.InputDevice

	grabbed   bool
	closeOnce sync.Once
}

// Open the device at the path. If grab is true then the device is grabbed so
// that its events are seen only by this process.
func Open(path string, grab bool) (*Source, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("evdev: %w", err)
	}

	src := &Source{path: path, dev: dev}

	if grab {
		if err := dev.Grab(); err != nil {
			_ = dev.Close()
			return nil, fmt.Errorf("evdev: grab %s: %w", path, err)
		}
		src.grabbed = true
	}

	name, err := dev.Name()
	if err != nil {
		name = "unnamed device"
	}
	logger.Logf(logger.Allow, "evdev", "opened %s (%s)", path, name)

	return src, nil
}

// Clone creates a uinput device with the same capabilities as the source.
// Events forwarded with HandleEvent() are written to the clone.
func (src *Source) Clone(name string) error {
	out, err := evdev.CloneDevice(name, src.dev)
	if err != nil {
		return fmt.Errorf("evdev: clone %s: %w", src.path, err)
	}
	src.out = out
	logger.Logf(logger.Allow, "evdev", "created virtual device %s", name)
	return nil
}

// Run reads events from the device and sends keyboard events on the channel.
// It returns when the context is cancelled or the device fails. An EventQuit
// is sent before returning if there is room on the channel.
//
// The device is closed when Run() returns.
func (src *Source) Run(ctx context.Context, events chan<- userinput.Event) error {
	defer func() {
		select {
		case events <- userinput.EventQuit{}:
		default:
			logger.Log(logger.Allow, "evdev", "dropped quit event")
		}
	}()

	// closing the device unblocks ReadOne()
	stop := context.AfterFunc(ctx, func() {
		_ = src.Close()
	})
	defer stop()

	for {
		ev, err := src.dev.ReadOne()
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			_ = src.Close()
			return fmt.Errorf("evdev: %w", err)
		}

		if ev.Type != evdev.EV_KEY {
			continue
		}

		kb, ok := keyboardEvent(uint16(ev.Code), ev.Value)
		if !ok {
			logger.Logf(logger.Allow, "evdev", "unexpected value for %s: %d", KeyName(uint16(ev.Code)), ev.Value)
			continue
		}

		select {
		case events <- kb:
		case <-ctx.Done():
			return nil
		}
	}
}

// HandleEvent implements the userinput.HandleInput interface. Keyboard events
// are written to the clone device. If there is no clone device then the
// function does nothing.
func (src *Source) HandleEvent(ev userinput.Event) error {
	if src.out == nil {
		return nil
	}

	kb, ok := ev.(userinput.EventKeyboard)
	if !ok {
		return nil
	}

	code, ok := KeyCode(kb.Key)
	if !ok {
		logger.Logf(logger.Allow, "evdev", "no key code for %s", kb.Key)
		return nil
	}

	err := src.out.WriteOne(&evdev.InputEvent{
		Type:  evdev.EV_KEY,
		Code:  evdev.EvCode(code),
		Value: keyValue(kb),
	})
	if err != nil {
		return fmt.Errorf("evdev: %w", err)
	}

	err = src.out.WriteOne(&evdev.InputEvent{
		Type:  evdev.EV_SYN,
		Code:  evdev.SYN_REPORT,
		Value: 0,
	})
	if err != nil {
		return fmt.Errorf("evdev: %w", err)
	}

	// synthesized key-downs have no matching key-up
	if kb.Down && !kb.Repeat && isSynthesized(kb.Key) {
		kb.Down = false
		return src.HandleEvent(kb)
	}

	return nil
}

// Close the device and the clone device. It is safe to call Close() more
// than once.
func (src *Source) Close() error {
	var err error
	src.closeOnce.Do(func() {
		if src.grabbed {
			_ = src.dev.Ungrab()
		}
		err = src.dev.Close()
		if src.out != nil {
			if errOut := src.out.Close(); errOut != nil && err == nil {
				err = errOut
			}
		}
	})
	if err != nil {
		return fmt.Errorf("evdev: %w", err)
	}
	return nil
}

// ListDevices writes the path and name of every input device.
func ListDevices(output io.Writer) error {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return fmt.Errorf("evdev: %w", err)
	}
	if len(paths) == 0 {
		fmt.Fprintln(output, "no input devices found")
		return nil
	}
	for _, p := range paths {
		fmt.Fprintf(output, "%s: %s\n", p.Path, p.Name)
	}
	return nil
}
