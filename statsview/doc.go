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

// Package statsview is available when the statsview build tag is set:
//
//	go build -tags statsview
//
// It provides an HTTP server running locally offering runtime statistics.
// Underlying functionality is provided by "github.com/go-echarts/statsview".
// Chordpad launches it with the -statsview flag of the RUN and WATCH modes,
// which is useful for watching the event pump's allocations on a handheld.
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12601/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12601/debug/pprof/
package statsview
