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

// Package config reads the environment variables that override the defaults
// of the command line. Values given on the command line take precedence over
// the environment.
//
//	CHORDPAD_RESOURCES   base path for the preferences file and other resources
//	CHORDPAD_PREFS       preferences file, relative to the resources path
//	CHORDPAD_DEVICE      input device used by the WATCH mode
//	CHORDPAD_ECHO_LOG    echo the log to stdout as entries are added
//	CHORDPAD_CMDPREFS    preferences pushed onto the command line stack
package config
