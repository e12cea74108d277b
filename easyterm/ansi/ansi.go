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

// Package ansi builds the CSI sequences used to color terminal output.
package ansi

import (
	"fmt"
	"strings"
)

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

var colors = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

var attributes = map[string]int{
	"BOLD":      1,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    8,
}

// Pens is the table of colors to be used for text.
var Pens = make(map[string]string)

// DimPens is the table of pastel colors to be used for text.
var DimPens = make(map[string]string)

// PenStyles is the table of styles to be used for text.
var PenStyles = make(map[string]string)

// NormalPen is the CSI sequence for regular text.
var NormalPen = "\033[m"

func init() {
	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c] = mustBuild(c, "normal", "", true, false)
		DimPens[c] = mustBuild(c, "normal", "", false, false)
	}
	PenStyles["bold"] = mustBuild("", "", "bold", false, false)
	PenStyles["underline"] = mustBuild("", "", "underline", false, false)
}

func mustBuild(pen, paper, attribute string, brightPen, brightPaper bool) string {
	s, err := ColorBuild(pen, paper, attribute, brightPen, brightPaper)
	if err != nil {
		panic(err)
	}
	return s
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var params []string

	if pen != "" {
		c, ok := colors[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		t := targetPen
		if brightPen {
			t = targetBrightPen
		}
		params = append(params, fmt.Sprintf("%d%d", t, c))
	}

	if paper != "" {
		c, ok := colors[strings.ToUpper(paper)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		t := targetPaper
		if brightPaper {
			t = targetBrightPaper
		}
		params = append(params, fmt.Sprintf("%d%d", t, c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		params = append(params, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(params, ";")), nil
}
