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

package hotkeys

import (
	"fmt"
	"strings"

	"github.com/chordpad/chordpad/logger"
	"github.com/chordpad/chordpad/notifications"
	"github.com/chordpad/chordpad/userinput"
)

// Verdict is the outcome of filtering a single keyboard event.
type Verdict int

// List of valid Verdict values.
const (
	// the event should be dispatched unchanged
	PassThrough Verdict = iota

	// the event has been consumed and should not be dispatched
	Drop

	// the event has been consumed and a combo has fired. the Action field of
	// the Result says what happened
	Synthesize
)

func (v Verdict) String() string {
	switch v {
	case PassThrough:
		return "pass"
	case Drop:
		return "drop"
	case Synthesize:
		return "synthesize"
	}
	return "unknown verdict"
}

// Result of the Filter() function.
type Result struct {
	Verdict Verdict

	// the action of the fired combo. only valid if Verdict is Synthesize
	Action Action

	// the virtual key-down to dispatch. only valid if Verdict is Synthesize
	// and the Action is of the SynthesizeKey kind
	Event userinput.EventKeyboard
}

func (r Result) String() string {
	if r.Verdict == Synthesize {
		return fmt.Sprintf("%s %s", r.Verdict, r.Action)
	}
	return r.Verdict.String()
}

// Phase summarises the state of the detector.
// Dispatch forwards the outcome of filtering ev to the handler. The original
// event is forwarded for PassThrough and the synthesized event for a fired
// SynthesizeKey combo. Nothing is forwarded otherwise.
func (r Result) Dispatch(ev userinput.EventKeyboard, handle userinput.HandleInput) error {
	switch r.Verdict {
	case PassThrough:
		return handle.HandleEvent(ev)
	case Synthesize:
		if r.Action.Kind == SynthesizeKey {
			return handle.HandleEvent(r.Event)
		}
	}
	return nil
}

type Phase int

// List of valid Phase values.
const (
	Idle Phase = iota
	Accumulating
	AwaitingRelease
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Accumulating:
		return "accumulating"
	case AwaitingRelease:
		return "awaiting release"
	}
	return "unknown phase"
}

// State is a snapshot of the detector's internal state.
type State struct {
	Phase Phase

	// the roles currently armed
	Mask Mask

	// keys consumed while building the current chord
	Armed []string

	// keys of a fired chord that have not yet been released
	Pending []string
}

func (s State) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s, mask %s", s.Phase, s.Mask))
	if len(s.Armed) > 0 {
		b.WriteString(fmt.Sprintf(", armed [%s]", strings.Join(s.Armed, ", ")))
	}
	if len(s.Pending) > 0 {
		b.WriteString(fmt.Sprintf(", pending [%s]", strings.Join(s.Pending, ", ")))
	}
	return b.String()
}

// Detector sits between the raw key event source and the dispatcher. It turns
// chords of the role keys into virtual key presses and setting toggles.
//
// A Detector is not safe for concurrent use. All events should be filtered
// from the same goroutine.
type Detector struct {
	prefs  *Preferences
	keys   Keys
	notify notifications.Notify

	gate     gate
	tracker  tracker
	suppress suppressor

	// eligibility as of the previous event. only used when the
	// ResetOnIneligible preference is set
	eligible bool

	// routine log entries are controlled by the Log preference
	logPerm logger.Permission
}

// NewDetector is the preferred method of initialisation for the Detector type.
// If oracle is nil then combos are always eligible, subject to the Enabled
// preference.
func NewDetector(p *Preferences, oracle Oracle) *Detector {
	if oracle == nil {
		oracle = AlwaysEligible
	}

	d := &Detector{
		prefs:    p,
		keys:     DefaultKeys,
		eligible: true,
		logPerm: logger.PermissionFunc(func() bool {
			return p.Log.Get().(bool)
		}),
	}
	d.gate = gate{
		oracle: oracle,
		keys:   &d.keys,
		prefs:  p,
	}

	return d
}

// SetNotify sets the recipient of combo notifications. May be nil.
func (d *Detector) SetNotify(notify notifications.Notify) {
	d.notify = notify
}

// Filter decides what to do with a keyboard event.
func (d *Detector) Filter(ev userinput.EventKeyboard) Result {
	eligible := d.gate.contextEligible()
	if d.prefs.ResetOnIneligible.Get().(bool) && d.eligible && !eligible {
		d.abandon()
	}
	d.eligible = eligible

	// releases of a fired chord are dropped whatever the current context
	if !ev.Down && d.suppress.filterRelease(ev) {
		return Result{Verdict: Drop}
	}

	if !eligible || d.gate.excluded(ev) {
		return Result{Verdict: PassThrough}
	}

	r, ok := d.keys.Role(ev.Key)
	if !ok {
		return Result{Verdict: PassThrough}
	}

	// a key that helped fire a chord can not start a new one until it has
	// been released
	if ev.Down && d.suppress.holding(ev.Key) {
		return Result{Verdict: Drop}
	}

	switch d.tracker.observe(r, ev) {
	case observePass:
		return Result{Verdict: PassThrough}
	case observeConsume:
		return Result{Verdict: Drop}
	}

	return d.resolve()
}

func (d *Detector) resolve() Result {
	a, ok := Lookup(d.tracker.mask)
	if !ok {
		return Result{Verdict: Drop}
	}

	logger.Logf(d.logPerm, "hotkeys", "%s fired %s", d.tracker.mask, a)

	d.tracker.mask = 0
	d.suppress.arm(&d.tracker.recorded)

	res := Result{Verdict: Synthesize, Action: a}

	switch a.Kind {
	case SynthesizeKey:
		res.Event = userinput.EventKeyboard{Key: a.Key, Down: true}
		d.notifyf(notifications.NotifyComboFired, a.String())

	case ToggleSetting:
		v := d.prefs.setting(a.Setting)
		if v == nil {
			logger.Logf(logger.Allow, "hotkeys", "unknown setting: %s", a.Setting)
			break
		}
		if err := v.Set(!v.Get().(bool)); err != nil {
			logger.Log(logger.Allow, "hotkeys", fmt.Errorf("toggle %s: %w", a.Setting, err))
			break
		}
		d.notifyf(notifications.NotifySettingToggled, fmt.Sprintf("%s %s", a.Setting, v))
	}

	return res
}

// abandon discards the armed roles. keys that were consumed are treated as
// though they belonged to a fired chord so that their releases are dropped
func (d *Detector) abandon() {
	if d.tracker.mask == 0 && d.tracker.recorded.empty() {
		return
	}

	logger.Logf(d.logPerm, "hotkeys", "combos unavailable: discarding %s", d.tracker.mask)

	d.tracker.mask = 0
	d.suppress.arm(&d.tracker.recorded)
	d.notifyf(notifications.NotifyComboReset, "")
}

func (d *Detector) notifyf(notice notifications.Notice, detail string) {
	if d.notify == nil {
		return
	}
	if err := d.notify.Notify(notice, detail); err != nil {
		logger.Log(logger.Allow, "hotkeys", err)
	}
}

// HandleUserInput filters the event and forwards the result to the
// dispatcher. Events that are not keyboard events are forwarded unchanged.
func (d *Detector) HandleUserInput(ev userinput.Event, handle userinput.HandleInput) error {
	kb, ok := ev.(userinput.EventKeyboard)
	if !ok {
		return handle.HandleEvent(ev)
	}

	return d.Filter(kb).Dispatch(kb, handle)
}

// State returns a snapshot of the detector's state.
func (d *Detector) State() State {
	s := State{
		Mask:    d.tracker.mask,
		Armed:   d.tracker.recorded.keys(),
		Pending: d.suppress.pending.keys(),
	}

	switch {
	case d.tracker.mask != 0:
		s.Phase = Accumulating
	case d.suppress.completed:
		s.Phase = AwaitingRelease
	default:
		s.Phase = Idle
	}

	return s
}

// Reset returns the detector to the idle state. Keys that are currently held
// will be treated as though they were pressed after the reset.
func (d *Detector) Reset() {
	d.tracker.reset()
	d.suppress = suppressor{}
	d.eligible = true
}
