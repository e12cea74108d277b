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

// Package userinput describes input from real hardware that the user of the
// emulator is using, in a form that is independent of the source of the input.
//
// It can be thought of as a translation layer between the input source (SDL,
// a Linux evdev device, a replay script) and the rest of the emulator. As
// such, this package attempts to hide details of the input source while
// protecting the downstream dispatcher from complication.
//
// The input source in use during development was SDL and so key names follow
// SDL's scancode naming (eg. "Tab", "Left Shift", "F3").
package userinput
