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

package replay

import (
	"fmt"
	"io"

	"github.com/chordpad/chordpad/hotkeys"
	"github.com/chordpad/chordpad/userinput"
)

// Context implements the hotkeys.Oracle interface. Combos are eligible if the
// script has not said otherwise and the Base oracle agrees.
type Context struct {
	Eligible bool

	// may be nil
	Base hotkeys.Oracle
}

// NewContext is the preferred method of initialisation for the Context type.
func NewContext(base hotkeys.Oracle) *Context {
	return &Context{Eligible: true, Base: base}
}

// ComboEligible implements the hotkeys.Oracle interface.
func (ctx *Context) ComboEligible() bool {
	if !ctx.Eligible {
		return false
	}
	if ctx.Base == nil {
		return true
	}
	return ctx.Base.ComboEligible()
}

// Play the script through the detector. Events that survive the detector are
// forwarded to the handler. The verdict for each step is written to output,
// which may be nil.
//
// The ctx argument should be the same Context that the detector was created
// with.
func Play(scr *Script, d *hotkeys.Detector, ctx *Context, handle userinput.HandleInput, output io.Writer) error {
	if output == nil {
		output = io.Discard
	}

	for _, step := range scr.Steps {
		if step.Instruction == Eligible {
			ctx.Eligible = step.Eligible
			fmt.Fprintf(output, "%3d: %s\n", step.Line, step)
			continue
		}

		res := d.Filter(step.Event)
		fmt.Fprintf(output, "%3d: %s: %s\n", step.Line, step, res)

		if err := res.Dispatch(step.Event, handle); err != nil {
			return fmt.Errorf("replay: line %d: %w", step.Line, err)
		}
	}

	return nil
}
