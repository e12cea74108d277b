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

// Package notifications allow the input layer to communicate directly with
// the front end. This is useful, for example, to show the user that a combo has
// been recognised or that a setting has been changed by a combo.
//
// Notifications are sometimes passed onto the GUI to indicate to the user the
// event that has happened. For some notifications however, it is appropriate
// for the front end to deal with the notification invisibly.
package notifications
