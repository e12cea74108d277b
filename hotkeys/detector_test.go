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

package hotkeys_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chordpad/chordpad/hotkeys"
	"github.com/chordpad/chordpad/logger"
	"github.com/chordpad/chordpad/notifications"
	"github.com/chordpad/chordpad/prefs"
	"github.com/chordpad/chordpad/test"
	"github.com/chordpad/chordpad/userinput"
)

// physical keys for each role
const (
	keyL1     = "Tab"
	keyR1     = "Backspace"
	keySelect = "Escape"
	keyStart  = "Return"
	keyX      = "Space"
	keyY      = "Left Shift"
)

func down(key string) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: key, Down: true}
}

func up(key string) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: key}
}

func repeat(key string) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: key, Down: true, Repeat: true}
}

type eligibility struct {
	eligible bool
}

func (e *eligibility) ComboEligible() bool {
	return e.eligible
}

func newPrefs(t *testing.T) *hotkeys.Preferences {
	t.Helper()
	p, err := hotkeys.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	return p
}

func newDetector(t *testing.T) (*hotkeys.Detector, *hotkeys.Preferences, *eligibility) {
	t.Helper()
	p := newPrefs(t)
	e := &eligibility{eligible: true}
	return hotkeys.NewDetector(p, e), p, e
}

// filter a sequence of events and compare the verdicts
func expectVerdicts(t *testing.T, d *hotkeys.Detector, events []userinput.EventKeyboard, verdicts []hotkeys.Verdict) {
	t.Helper()
	test.DemandEquality(t, len(events), len(verdicts))
	for i, ev := range events {
		test.ExpectEquality(t, d.Filter(ev).Verdict, verdicts[i], i, ev)
	}
}

func expectIdle(t *testing.T, d *hotkeys.Detector) {
	t.Helper()
	s := d.State()
	test.ExpectEquality(t, s.Phase, hotkeys.Idle)
	test.ExpectEquality(t, s.Mask, hotkeys.Mask(0))
	test.ExpectEquality(t, len(s.Armed), 0)
	test.ExpectEquality(t, len(s.Pending), 0)
}

func TestPassThrough(t *testing.T) {
	d, _, _ := newDetector(t)

	// keys with no role
	expectVerdicts(t, d,
		[]userinput.EventKeyboard{down("A"), repeat("A"), up("A"), up("B")},
		[]hotkeys.Verdict{hotkeys.PassThrough, hotkeys.PassThrough, hotkeys.PassThrough, hotkeys.PassThrough},
	)

	// target keys with no modifier held keep their ordinary meaning
	expectVerdicts(t, d,
		[]userinput.EventKeyboard{down(keyX), repeat(keyX), down(keySelect), up(keyX), up(keySelect)},
		[]hotkeys.Verdict{hotkeys.PassThrough, hotkeys.PassThrough, hotkeys.PassThrough, hotkeys.PassThrough, hotkeys.PassThrough},
	)

	expectIdle(t, d)

	// the passed event is the original event
	ev := userinput.EventKeyboard{Key: "F3", Down: true, Mod: userinput.KeyModAlt}
	rec := &userinput.Recorder{}
	test.ExpectSuccess(t, d.HandleUserInput(ev, rec))
	test.DemandEquality(t, len(rec.Events), 1)
	test.ExpectEquality(t, rec.Events[0], userinput.Event(ev))
}

func TestRepeatSuppression(t *testing.T) {
	d, _, _ := newDetector(t)

	expectVerdicts(t, d,
		[]userinput.EventKeyboard{down(keyL1), repeat(keyL1), down(keyL1), down(keyStart), repeat(keyStart)},
		[]hotkeys.Verdict{hotkeys.Drop, hotkeys.Drop, hotkeys.Drop, hotkeys.Drop, hotkeys.Drop},
	)

	s := d.State()
	test.ExpectEquality(t, s.Phase, hotkeys.Accumulating)
	test.ExpectEquality(t, s.Mask, hotkeys.MaskModLeft|hotkeys.MaskStart)
	test.DemandEquality(t, len(s.Armed), 2)
	test.ExpectEquality(t, s.Armed[0], keyL1)
	test.ExpectEquality(t, s.Armed[1], keyStart)
}

func TestPassedTargetNotArmedByRepeat(t *testing.T) {
	d, _, _ := newDetector(t)
	rec := &userinput.Recorder{}

	// X goes down before the modifier and so belongs to the dispatcher.
	// its auto-repeat must not complete a chord
	for _, ev := range []userinput.EventKeyboard{
		down(keyX), down(keyL1), repeat(keyX), up(keyX), up(keyL1),
	} {
		test.ExpectSuccess(t, d.HandleUserInput(ev, rec))
	}

	kb := rec.Keyboard()
	test.DemandEquality(t, len(kb), 3)
	test.ExpectEquality(t, kb[0], down(keyX))
	test.ExpectEquality(t, kb[1], repeat(keyX))
	test.ExpectEquality(t, kb[2], up(keyX))
	expectIdle(t, d)

	// a fresh press of X while the modifier is held still fires
	expectVerdicts(t, d,
		[]userinput.EventKeyboard{down(keyL1), down(keyX), up(keyX), up(keyL1)},
		[]hotkeys.Verdict{hotkeys.Drop, hotkeys.Synthesize, hotkeys.Drop, hotkeys.Drop},
	)
	expectIdle(t, d)
}

func TestChordFiring(t *testing.T) {
	tests := []struct {
		keys []string
		key  string
	}{
		{[]string{keyL1, keyX}, "F3"},
		{[]string{keyL1, keyY}, "F2"},
		{[]string{keyR1, keyX}, "F10"},
		{[]string{keyR1, keyY}, "F5"},
		{[]string{keyL1, keyStart, keyX}, "F7"},
		{[]string{keyL1, keyStart, keyY}, "F8"},
		{[]string{keyL1, keySelect, keyX}, "F4"},
		{[]string{keyL1, keySelect, keyY}, "F9"},
		{[]string{keyR1, keySelect, keyX}, "F12"},
	}

	for _, tt := range tests {
		d, _, _ := newDetector(t)

		for _, k := range tt.keys[:len(tt.keys)-1] {
			test.ExpectEquality(t, d.Filter(down(k)).Verdict, hotkeys.Drop, tt.key, k)
		}

		res := d.Filter(down(tt.keys[len(tt.keys)-1]))
		test.ExpectEquality(t, res.Verdict, hotkeys.Synthesize, tt.key)
		test.ExpectEquality(t, res.Action.Kind, hotkeys.SynthesizeKey, tt.key)
		test.ExpectEquality(t, res.Event, userinput.EventKeyboard{Key: tt.key, Down: true})

		s := d.State()
		test.ExpectEquality(t, s.Phase, hotkeys.AwaitingRelease, tt.key)
		test.ExpectEquality(t, s.Mask, hotkeys.Mask(0), tt.key)
		test.ExpectEquality(t, len(s.Pending), len(tt.keys), tt.key)
	}
}

func TestReleaseSuppression(t *testing.T) {
	d, _, _ := newDetector(t)

	expectVerdicts(t, d,
		[]userinput.EventKeyboard{down(keyL1), down(keySelect), down(keyY)},
		[]hotkeys.Verdict{hotkeys.Drop, hotkeys.Drop, hotkeys.Synthesize},
	)

	// releases in any order are all dropped. unrelated keys still pass
	expectVerdicts(t, d,
		[]userinput.EventKeyboard{up(keySelect), down("A"), up("A"), up(keyY), up(keyL1)},
		[]hotkeys.Verdict{hotkeys.Drop, hotkeys.PassThrough, hotkeys.PassThrough, hotkeys.Drop, hotkeys.Drop},
	)

	expectIdle(t, d)

	// and the target key is ordinary again
	expectVerdicts(t, d,
		[]userinput.EventKeyboard{down(keyY), up(keyY)},
		[]hotkeys.Verdict{hotkeys.PassThrough, hotkeys.PassThrough},
	)
}

func TestReleaseFiresChord(t *testing.T) {
	d, _, _ := newDetector(t)

	// L1+SELECT+START+X has no combo but releasing START leaves L1+SELECT+X
	expectVerdicts(t, d,
		[]userinput.EventKeyboard{down(keyL1), down(keySelect), down(keyStart), down(keyX)},
		[]hotkeys.Verdict{hotkeys.Drop, hotkeys.Drop, hotkeys.Drop, hotkeys.Drop},
	)

	res := d.Filter(up(keyStart))
	test.ExpectEquality(t, res.Verdict, hotkeys.Synthesize)
	test.ExpectEquality(t, res.Event.Key, "F4")

	// START was released before the chord fired so it is not pending
	test.ExpectEquality(t, len(d.State().Pending), 3)

	expectVerdicts(t, d,
		[]userinput.EventKeyboard{up(keyX), up(keySelect), up(keyL1)},
		[]hotkeys.Verdict{hotkeys.Drop, hotkeys.Drop, hotkeys.Drop},
	)
	expectIdle(t, d)
}

func TestToggleSetting(t *testing.T) {
	d, p, _ := newDetector(t)
	test.ExpectEquality(t, p.TripleBuffer.Get().(bool), false)

	res := d.Filter(down(keyR1))
	test.ExpectEquality(t, res.Verdict, hotkeys.Drop)
	res = d.Filter(down(keyL1))
	test.ExpectEquality(t, res.Verdict, hotkeys.Synthesize)
	test.ExpectEquality(t, res.Action.Kind, hotkeys.ToggleSetting)
	test.ExpectEquality(t, res.Event, userinput.EventKeyboard{})
	test.ExpectEquality(t, p.TripleBuffer.Get().(bool), true)

	// nothing reaches the dispatcher for a toggle
	rec := &userinput.Recorder{}
	test.ExpectSuccess(t, d.HandleUserInput(up(keyL1), rec))
	test.ExpectSuccess(t, d.HandleUserInput(up(keyR1), rec))
	test.ExpectSuccess(t, d.HandleUserInput(down(keyL1), rec))
	test.ExpectSuccess(t, d.HandleUserInput(down(keyR1), rec))
	test.ExpectEquality(t, len(rec.Events), 0)
	test.ExpectEquality(t, p.TripleBuffer.Get().(bool), false)
}

func TestToggleHookFailure(t *testing.T) {
	d, p, _ := newDetector(t)
	p.TripleBuffer.SetHookPre(func(_ prefs.Value) error {
		return errors.New("display busy")
	})

	// the chord still counts as fired
	expectVerdicts(t, d,
		[]userinput.EventKeyboard{down(keyL1), down(keyR1), up(keyL1), up(keyR1)},
		[]hotkeys.Verdict{hotkeys.Drop, hotkeys.Synthesize, hotkeys.Drop, hotkeys.Drop},
	)
	test.ExpectEquality(t, p.TripleBuffer.Get().(bool), false)
	expectIdle(t, d)
}

func TestConvergence(t *testing.T) {
	sequences := [][]userinput.EventKeyboard{
		// abandoned chord
		{down(keyL1), down(keyStart), up(keyL1), up(keyStart)},
		{down(keyR1), down(keyL1), up(keyR1), up(keyL1)},
		{down(keyL1), down(keySelect), down(keyStart), down(keyX), up(keyStart), up(keyX), up(keySelect), up(keyL1)},
		{down(keyR1), repeat(keyR1), down(keyY), repeat(keyY), up(keyR1), up(keyY)},
		{down(keyX), down(keyL1), down(keyY), up(keyX), up(keyY), up(keyL1)},
		{up(keyL1), up(keyR1), up(keyX)},
	}

	for i, seq := range sequences {
		d, _, _ := newDetector(t)
		for _, ev := range seq {
			_ = d.Filter(ev)
		}
		s := d.State()
		test.ExpectEquality(t, s.Phase, hotkeys.Idle, i)
		test.ExpectEquality(t, s.Mask, hotkeys.Mask(0), i)
		test.ExpectEquality(t, len(s.Armed), 0, i)
		test.ExpectEquality(t, len(s.Pending), 0, i)
	}
}

func TestNoRefireWithoutRepress(t *testing.T) {
	d, _, _ := newDetector(t)

	expectVerdicts(t, d,
		[]userinput.EventKeyboard{down(keyL1), down(keyX), repeat(keyL1), repeat(keyX)},
		[]hotkeys.Verdict{hotkeys.Drop, hotkeys.Synthesize, hotkeys.Drop, hotkeys.Drop},
	)

	// releasing and pressing the target while the modifier is still held
	// does not fire the combo again
	expectVerdicts(t, d,
		[]userinput.EventKeyboard{up(keyX), down(keyX), up(keyX), repeat(keyL1)},
		[]hotkeys.Verdict{hotkeys.Drop, hotkeys.PassThrough, hotkeys.PassThrough, hotkeys.Drop},
	)

	// pressing the modifier again starts a new cycle
	expectVerdicts(t, d,
		[]userinput.EventKeyboard{up(keyL1), down(keyL1), down(keyX)},
		[]hotkeys.Verdict{hotkeys.Drop, hotkeys.Drop, hotkeys.Synthesize},
	)
}

func TestIneligible(t *testing.T) {
	d, _, e := newDetector(t)
	e.eligible = false

	expectVerdicts(t, d,
		[]userinput.EventKeyboard{down(keyL1), down(keyX), up(keyX), up(keyL1)},
		[]hotkeys.Verdict{hotkeys.PassThrough, hotkeys.PassThrough, hotkeys.PassThrough, hotkeys.PassThrough},
	)
	expectIdle(t, d)
}

func TestDisabled(t *testing.T) {
	d, p, _ := newDetector(t)
	test.DemandSuccess(t, p.Enabled.Set(false))

	expectVerdicts(t, d,
		[]userinput.EventKeyboard{down(keyR1), down(keyX), up(keyX), up(keyR1)},
		[]hotkeys.Verdict{hotkeys.PassThrough, hotkeys.PassThrough, hotkeys.PassThrough, hotkeys.PassThrough},
	)
}

func TestJoystickExclusion(t *testing.T) {
	d, p, _ := newDetector(t)
	test.DemandSuccess(t, p.Joystick1Output.Set(true))
	test.DemandSuccess(t, p.Joystick1Fire5.Set(true))

	// L1 is a fire button and so never starts a chord
	expectVerdicts(t, d,
		[]userinput.EventKeyboard{down(keyL1), down(keyX), up(keyX), up(keyL1)},
		[]hotkeys.Verdict{hotkeys.PassThrough, hotkeys.PassThrough, hotkeys.PassThrough, hotkeys.PassThrough},
	)

	// R1 is not excluded
	expectVerdicts(t, d,
		[]userinput.EventKeyboard{down(keyR1), down(keyX)},
		[]hotkeys.Verdict{hotkeys.Drop, hotkeys.Synthesize},
	)

	// exclusion requires the output to be enabled
	d, p, _ = newDetector(t)
	test.DemandSuccess(t, p.GCW0R1.Set(true))
	test.ExpectEquality(t, d.Filter(down(keyR1)).Verdict, hotkeys.Drop)

	d, p, _ = newDetector(t)
	test.DemandSuccess(t, p.GCW0Output.Set(true))
	test.DemandSuccess(t, p.GCW0R1.Set(true))
	test.ExpectEquality(t, d.Filter(down(keyR1)).Verdict, hotkeys.PassThrough)
	test.ExpectEquality(t, d.Filter(down(keyL1)).Verdict, hotkeys.Drop)
}

// combos becoming unavailable part way through a chord leaves the armed
// roles in place. a later target press completes the chord even though the
// modifier is no longer held
func TestIneligibleKeepsArmedRoles(t *testing.T) {
	d, _, e := newDetector(t)

	test.ExpectEquality(t, d.Filter(down(keyL1)).Verdict, hotkeys.Drop)

	e.eligible = false
	test.ExpectEquality(t, d.Filter(up(keyL1)).Verdict, hotkeys.PassThrough)
	test.ExpectEquality(t, d.State().Mask, hotkeys.MaskModLeft)

	e.eligible = true
	res := d.Filter(down(keyX))
	test.ExpectEquality(t, res.Verdict, hotkeys.Synthesize)
	test.ExpectEquality(t, res.Event.Key, "F3")
}

func TestIneligibleResetsArmedRoles(t *testing.T) {
	d, p, e := newDetector(t)
	test.DemandSuccess(t, p.ResetOnIneligible.Set(true))

	n := &notices{}
	d.SetNotify(n)

	test.ExpectEquality(t, d.Filter(down(keyL1)).Verdict, hotkeys.Drop)

	// the consumed modifier's release is still dropped
	e.eligible = false
	test.ExpectEquality(t, d.Filter(up(keyL1)).Verdict, hotkeys.Drop)
	expectIdle(t, d)
	test.DemandEquality(t, len(n.notices), 1)
	test.ExpectEquality(t, n.notices[0], notifications.NotifyComboReset)

	e.eligible = true
	test.ExpectEquality(t, d.Filter(down(keyX)).Verdict, hotkeys.PassThrough)
	test.ExpectEquality(t, d.Filter(up(keyX)).Verdict, hotkeys.PassThrough)
	expectIdle(t, d)
}

type notices struct {
	notices []notifications.Notice
	details []string
}

func (n *notices) Notify(notice notifications.Notice, detail string) error {
	n.notices = append(n.notices, notice)
	n.details = append(n.details, detail)
	return nil
}

func TestNotifications(t *testing.T) {
	d, _, _ := newDetector(t)
	n := &notices{}
	d.SetNotify(n)

	for _, ev := range []userinput.EventKeyboard{
		down(keyR1), down(keyY), up(keyY), up(keyR1),
		down(keyL1), down(keyR1), up(keyL1), up(keyR1),
	} {
		_ = d.Filter(ev)
	}

	test.DemandEquality(t, len(n.notices), 2)
	test.ExpectEquality(t, n.notices[0], notifications.NotifyComboFired)
	test.ExpectEquality(t, n.details[0], "reset-machine [F5]")
	test.ExpectEquality(t, n.notices[1], notifications.NotifySettingToggled)
	test.ExpectEquality(t, n.details[1], "display.tripleBuffer true")
}

func TestHandleUserInput(t *testing.T) {
	d, _, _ := newDetector(t)
	w := &test.CompareWriter{}
	rec := &userinput.Recorder{Echo: w}

	for _, ev := range []userinput.Event{
		down("A"),
		down(keyL1), down(keyY), up(keyL1), up(keyY),
		up("A"),
		userinput.EventQuit{},
	} {
		test.ExpectSuccess(t, d.HandleUserInput(ev, rec))
	}

	test.ExpectSuccess(t, w.Compare("down A\ndown F2\nup A\n"))
	test.DemandEquality(t, len(rec.Events), 4)
	test.ExpectEquality(t, rec.Events[3], userinput.Event(userinput.EventQuit{}))
}

func TestLogPreference(t *testing.T) {
	d, p, _ := newDetector(t)
	w := &strings.Builder{}

	logger.Clear()
	_ = d.Filter(down(keyL1))
	_ = d.Filter(down(keyX))
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "hotkeys: 0x21 (L1+X) fired open-file [F3]\n")

	_ = d.Filter(up(keyL1))
	_ = d.Filter(up(keyX))

	// fired combos are no longer logged
	test.DemandSuccess(t, p.Log.Set(false))
	logger.Clear()
	_ = d.Filter(down(keyL1))
	_ = d.Filter(down(keyY))
	w.Reset()
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestResultDispatch(t *testing.T) {
	w := &test.CompareWriter{}
	rec := &userinput.Recorder{Echo: w}
	ev := down(keyY)

	test.ExpectSuccess(t, hotkeys.Result{Verdict: hotkeys.PassThrough}.Dispatch(ev, rec))
	test.ExpectSuccess(t, hotkeys.Result{Verdict: hotkeys.Drop}.Dispatch(ev, rec))

	a, ok := hotkeys.Lookup(hotkeys.MaskModLeft | hotkeys.MaskActionY)
	test.DemandSuccess(t, ok)
	res := hotkeys.Result{Verdict: hotkeys.Synthesize, Action: a, Event: down(a.Key)}
	test.ExpectSuccess(t, res.Dispatch(ev, rec))

	// toggles have nothing to dispatch
	a, ok = hotkeys.Lookup(hotkeys.MaskModLeft | hotkeys.MaskModRight)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, hotkeys.Result{Verdict: hotkeys.Synthesize, Action: a}.Dispatch(ev, rec))

	test.ExpectSuccess(t, w.Compare("down Left Shift\ndown F2\n"))
}

func TestReset(t *testing.T) {
	d, _, _ := newDetector(t)
	_ = d.Filter(down(keyL1))
	_ = d.Filter(down(keyX))
	_ = d.Filter(down(keyR1))
	d.Reset()
	expectIdle(t, d)

	// held keys are treated as new presses
	test.ExpectEquality(t, d.Filter(down(keyL1)).Verdict, hotkeys.Drop)
}
