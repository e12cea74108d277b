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

//go:build !linux

package evdevinput

import (
	"context"
	"errors"
	"io"

	"github.com/chordpad/chordpad/userinput"
)

var errUnsupported = errors.New("evdev: input devices are only supported on linux")

// Source of keyboard events. Input devices are not supported on this
// platform.
type Source struct{}

// Open always fails on this platform.
func Open(path string, grab bool) (*Source, error) {
	return nil, errUnsupported
}

// Clone always fails on this platform.
func (src *Source) Clone(name string) error {
	return errUnsupported
}

// Run always fails on this platform.
func (src *Source) Run(ctx context.Context, events chan<- userinput.Event) error {
	return errUnsupported
}

// HandleEvent implements the userinput.HandleInput interface.
func (src *Source) HandleEvent(ev userinput.Event) error {
	return nil
}

// Close does nothing on this platform.
func (src *Source) Close() error {
	return nil
}

// ListDevices always fails on this platform.
func ListDevices(output io.Writer) error {
	return errUnsupported
}
