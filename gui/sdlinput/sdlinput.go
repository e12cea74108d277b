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

package sdlinput

import (
	"fmt"
	"io"
	"sync"

	"github.com/chordpad/chordpad/logger"
	"github.com/chordpad/chordpad/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// window dimensions. the window only needs to exist to receive focus
const (
	windowWidth  = 320
	windowHeight = 240
)

// how long Service() waits for an event before returning, in milliseconds
const waitTimeout = 10

// SdlInput is a window that forwards keyboard events.
type SdlInput struct {
	window *sdl.Window
	title  string

	// events are sent on this channel. nil until SetEventChannel() is
	// called
	events chan<- userinput.Event

	// functions that must run on the main thread
	service chan func()

	// closed by StopEvents(). unblocks a send on the events channel
	stop     chan struct{}
	stopOnce sync.Once
}

// NewSdlInput is the preferred method of initialisation for the SdlInput type.
//
// MUST ONLY be called from the main thread.
func NewSdlInput(title string) (*SdlInput, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	window, err := sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		windowWidth, windowHeight,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// mouse motion events fill the queue and we have no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	inp := &SdlInput{
		window:  window,
		title:   title,
		service: make(chan func(), 16),
		stop:    make(chan struct{}),
	}

	logger.Logf(logger.Allow, "sdl", "window created (%s)", title)

	return inp, nil
}

// SetEventChannel sets the channel on which keyboard events are sent.
func (inp *SdlInput) SetEventChannel(events chan<- userinput.Event) {
	inp.service <- func() {
		inp.events = events
	}
}

// SetTitle changes the window title. The application name is kept as a prefix.
// Safe to call from any goroutine.
func (inp *SdlInput) SetTitle(s string) {
	select {
	case inp.service <- func() {
		if s == "" {
			inp.window.SetTitle(inp.title)
		} else {
			inp.window.SetTitle(fmt.Sprintf("%s - %s", inp.title, s))
		}
	}:
	default:
		logger.Log(logger.Allow, "sdl", "dropped title change")
	}
}

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the main thread.
func (inp *SdlInput) Service() {
	// wait for an event or timeout and then drain the queue
	for ev := sdl.WaitEventTimeout(waitTimeout); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			inp.send(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			if kb, ok := keyboardEvent(ev); ok {
				inp.send(kb)
			}
		}
	}

	// run any outstanding service functions
	for {
		select {
		case f := <-inp.service:
			f()
		default:
			return
		}
	}
}

// StopEvents should be called when the receiver of the event channel is no
// longer reading from it. Safe to call from any goroutine and more than once.
func (inp *SdlInput) StopEvents() {
	inp.stopOnce.Do(func() {
		close(inp.stop)
	})
}

// events are never dropped. the detector relies on seeing every key-up so the
// main thread waits for the receiver if the channel is full
func (inp *SdlInput) send(ev userinput.Event) {
	if inp.events == nil {
		return
	}
	select {
	case inp.events <- ev:
	case <-inp.stop:
		logger.Logf(logger.Allow, "sdl", "event after stop: %v", ev)
	}
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the main thread.
func (inp *SdlInput) Destroy(output io.Writer) {
	if err := inp.window.Destroy(); err != nil {
		fmt.Fprintf(output, "sdl: %v\n", err)
	}
	sdl.Quit()
}
