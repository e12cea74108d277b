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

package notifications

// Notice describes events that somehow change the presentation of the
// emulation. These notifications can be used to present additional information
// to the user
type Notice string

// List of defined notifications.
const (
	// a combo has fired and a virtual key has been synthesized
	NotifyComboFired Notice = "NotifyComboFired"

	// a combo has fired and a setting has been toggled
	NotifySettingToggled Notice = "NotifySettingToggled"

	// combo state was discarded because combos became unavailable part way
	// through a chord
	NotifyComboReset Notice = "NotifyComboReset"
)

// Notify is used for direct communication between the input layer and the
// front end. The detail string gives additional information about the
// notice, for example the name of the setting that was toggled.
type Notify interface {
	Notify(notice Notice, detail string) error
}
