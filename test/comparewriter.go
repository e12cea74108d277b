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

package test

import "strings"

// CompareWriter is an implementation of io.Writer. It should be used to
// capture output and to compare with predefined strings.
type CompareWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	return tw.buffer.Write(p)
}

// Clear empties the buffer.
func (tw *CompareWriter) Clear() {
	tw.buffer.Reset()
}

// Compare buffered output with predefined/example string.
func (tw *CompareWriter) Compare(s string) bool {
	return s == tw.buffer.String()
}

// Lines returns the buffered output split on newlines. A trailing newline does
// not result in an empty final entry.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(tw.buffer.String(), "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}

// String implements the fmt.Stringer interface.
func (tw *CompareWriter) String() string {
	return tw.buffer.String()
}
