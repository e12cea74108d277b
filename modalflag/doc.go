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

// Package modalflag wraps the flag package of the standard library so that
// a program can have modes, each with its own flags. Chordpad's modes are RUN,
// WATCH and REPLAY:
//
//	chordpad -log WATCH -grab /dev/input/event2
//
// Arguments are given with NewArgs() and parsed in layers. Each call to
// NewMode() starts a new layer, to which flags and sub-modes are added before
// calling Parse():
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "WATCH", "REPLAY")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "WATCH":
//		md.NewMode()
//		grab := md.AddBool("grab", false, "grab the input device")
//		...
//	}
//
// The first sub-mode is the default and is selected when the next argument
// is not a sub-mode. Sub-mode names are not case sensitive.
//
// A -help flag is understood at every layer. The help message lists the
// flags and sub-modes of the layer and any text given to AdditionalHelp().
package modalflag
