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

// Package sdlinput opens an SDL window and forwards its keyboard events as
// userinput.Event values. SDL requires that window creation and event polling
// happen on the main thread, so the SdlInput type implements the GuiCreator
// interface of the main package and does its work in the Service() function.
//
// On SDL builds for handhelds the buttons arrive as ordinary keyboard events,
// identified by scancode name.
package sdlinput
