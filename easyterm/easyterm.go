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

package easyterm

import (
	"fmt"
	"io"
	"sync"

	"github.com/chordpad/chordpad/easyterm/ansi"
	"github.com/pkg/term"
)

// the controlling terminal
const ttyPath = "/dev/tty"

// Terminal controls the input mode of the controlling terminal and writes
// colored output.
type Terminal struct {
	tty    *term.Term
	output io.Writer

	// whether to write ANSI sequences
	color bool

	mu sync.Mutex
}

// Open the controlling terminal. Output is written to the output argument.
func Open(output io.Writer) (*Terminal, error) {
	tty, err := term.Open(ttyPath)
	if err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}
	return &Terminal{tty: tty, output: output, color: true}, nil
}

// Plain returns a Terminal that writes uncolored output and does not control
// the input mode. Use it when there is no controlling terminal.
func Plain(output io.Writer) *Terminal {
	return &Terminal{output: output}
}

// CBreakMode puts the terminal into cbreak mode.
func (pt *Terminal) CBreakMode() error {
	if pt.tty == nil {
		return nil
	}
	return pt.tty.SetCbreak()
}

// CanonicalMode puts the terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	if pt.tty == nil {
		return nil
	}
	return pt.tty.Restore()
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if pt.tty == nil {
		return nil
	}
	return pt.tty.Flush()
}

// CleanUp restores the terminal and closes it.
func (pt *Terminal) CleanUp() error {
	if pt.tty == nil {
		return nil
	}
	if err := pt.tty.Restore(); err != nil {
		_ = pt.tty.Close()
		return fmt.Errorf("easyterm: %w", err)
	}
	return pt.tty.Close()
}

// Print writes the formatted string to the output using the pen, which should
// be one of the entries in ansi.Pens, ansi.DimPens or ansi.PenStyles. An empty
// pen is the normal pen. A newline is added.
func (pt *Terminal) Print(pen string, s string, a ...any) {
	pt.mu.Lock()
	defer pt.mu.Unlock()

	if pt.color && pen != "" {
		fmt.Fprintf(pt.output, "%s%s%s\r\n", pen, fmt.Sprintf(s, a...), ansi.NormalPen)
		return
	}

	// cbreak mode does not translate newlines
	if pt.tty != nil {
		fmt.Fprintf(pt.output, "%s\r\n", fmt.Sprintf(s, a...))
		return
	}

	fmt.Fprintf(pt.output, "%s\n", fmt.Sprintf(s, a...))
}
