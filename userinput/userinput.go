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

package userinput

// HandleInput conceptualises the dispatcher that receives events once they
// have passed through any input filtering.
type HandleInput interface {
	// HandleEvent forwards the Event to the dispatcher.
	HandleEvent(ev Event) error
}

// HandleInputFunc allows an ordinary function to be used as a HandleInput
// implementation.
type HandleInputFunc func(ev Event) error

// HandleEvent implements the HandleInput interface.
func (f HandleInputFunc) HandleEvent(ev Event) error {
	return f(ev)
}
