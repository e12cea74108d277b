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


package logger

// Permission is consulted before an entry is added to the log. A component
// that logs routine activity can hand the logger a Permission tied to a user
// preference. Errors should be logged with Allow.
type Permission interface {
	AllowLogging() bool
}

// PermissionFunc adapts a function to the Permission interface.
type PermissionFunc func() bool

// AllowLogging implements the Permission interface.
func (f PermissionFunc) AllowLogging() bool {
	return f()
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow always permits logging.
var Allow Permission = allow{}
