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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/chordpad/chordpad/prefs"
	"github.com/chordpad/chordpad/test"
)

func tmpPrefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "chordpad_prefs_test")
}

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.ExpectFailure(t, v.Set(1))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectFailure(t, dsk.Add("test", &v))
	test.ExpectFailure(t, dsk.Add("", &v))
}

func TestString(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "foo :: bar\n")
}

func TestLoad(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("hotkeys.enabled", &v))
	test.ExpectSuccess(t, dsk.Add("input.device", &s))

	// loading a file that does not exist is fine
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, s.Set("/dev/input/event0"))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectEquality(t, s.String(), "")

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, s.String(), "/dev/input/event0")
}

func TestLoadCommandLine(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("display.tripleBuffer", &v))
	test.ExpectSuccess(t, v.Set(false))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("display.tripleBuffer::true")
	defer prefs.PopCommandLineStack()

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(bool), true)
}

func TestInvalidFile(t *testing.T) {
	fn := tmpPrefsFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, dsk.Load())
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefsFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestDefunctDropped(t *testing.T) {
	fn := tmpPrefsFile(t)
	content := fmt.Sprintf("%s\nhotkeys.comboTimeout :: 100\nfoo :: bar\n", prefs.WarningBoilerPlate)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(content), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Save())

	cmpPrefsFile(t, fn, "foo :: bar\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Bool

	var post []bool
	v.SetHookPost(func(value prefs.Value) error {
		post = append(post, value.(bool))
		return nil
	})

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, v.Set(false))
	test.DemandEquality(t, len(post), 2)
	test.ExpectEquality(t, post[0], true)
	test.ExpectEquality(t, post[1], false)

	// a failing pre hook prevents the value from being stored
	v.SetHookPre(func(value prefs.Value) error {
		return errors.New("refused")
	})
	test.ExpectFailure(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), false)
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length (using value zero) will not result in
	// cropped string infomration reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}
