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

// Package hotkeys lets a small set of physical buttons act as chord shortcuts
// on hardware that lacks dedicated keys. For example, a handheld with no
// function-key row.
//
// The Detector sits between the input source and the normal dispatch path.
// Every keyboard event passes through Detector.Filter() exactly once and
// results in one of three verdicts:
//
//	PassThrough	the event continues to the dispatcher unchanged
//	Drop		the event is consumed
//	Synthesize	the event is consumed and the chord's action is performed
//
// Six roles take part in chords: the two shoulder modifiers (ModLeft and
// ModRight) and four targets (Select, Start, ActionX and ActionY). Modifiers are
// always captured. Targets are only captured once a modifier is held, so that a
// target pressed on its own keeps its ordinary meaning.
//
// Once a chord has fired, the key-up events of the keys that took part are
// swallowed until every one of them has been released. Holding the keys does
// not fire the chord a second time.
//
// The Detector is not safe for concurrent use. Events should be delivered from
// a single goroutine, which is usually the goroutine that pumps the input
// source.
package hotkeys
