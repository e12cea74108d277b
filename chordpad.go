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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/chordpad/chordpad/config"
	"github.com/chordpad/chordpad/easyterm"
	"github.com/chordpad/chordpad/easyterm/ansi"
	"github.com/chordpad/chordpad/evdevinput"
	"github.com/chordpad/chordpad/frontend"
	"github.com/chordpad/chordpad/gui/sdlinput"
	"github.com/chordpad/chordpad/hotkeys"
	"github.com/chordpad/chordpad/logger"
	"github.com/chordpad/chordpad/modalflag"
	"github.com/chordpad/chordpad/prefs"
	"github.com/chordpad/chordpad/replay"
	"github.com/chordpad/chordpad/resources"
	"github.com/chordpad/chordpad/statsview"
	"github.com/chordpad/chordpad/userinput"
	"github.com/chordpad/chordpad/version"
)

// size of the channel between an input source and the event pump
const eventQueueLen = 64

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode has its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() MUST ONLY by called from the main thread. It should not
	// pause or loop longer than necessary
	Service()
}

// communication between the main() function and the launch() function. SDL
// requires window creation and event handling to happen on the main thread
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			var err error
			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// the interface will not be nil if the creator returned a
				// typed nil
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "WATCH", "REPLAY", "COMBOS", "DEVICES")
	md.AdditionalHelp(fmt.Sprintf("%s turns chords of the handheld's buttons into function keys", version.String()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, cfg, sync)

	case "WATCH":
		err = watch(md, cfg, sync)

	case "REPLAY":
		err = replayScript(md, cfg, os.Stdout)

	case "COMBOS":
		err = listCombos(md, os.Stdout)

	case "DEVICES":
		err = evdevinput.ListDevices(os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to the modes that use the hotkeys detector
type commonFlags struct {
	log       *bool
	prefs     *string
	resources *string
}

func addCommonFlags(md *modalflag.Modes, cfg config.Config) commonFlags {
	return commonFlags{
		log:       md.AddBool("log", cfg.EchoLog, "echo log to stdout"),
		prefs:     md.AddString("prefs", "", "preferences for this session. eg. \"hotkeys.enabled::false\""),
		resources: md.AddString("resources", cfg.Resources, "base path for resources"),
	}
}

// loadPreferences applies the common flags and loads the hotkeys preferences
func loadPreferences(cfg config.Config, flgs commonFlags) (*hotkeys.Preferences, error) {
	if *flgs.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	resources.SetBasePath(*flgs.resources)

	// command line preferences take priority over the environment. groups
	// are consulted from the top of the stack so the flag group is pushed
	// last
	pushed := 0
	for _, s := range []string{cfg.CommandLinePrefs, *flgs.prefs} {
		if s != "" {
			prefs.PushCommandLineStack(s)
			pushed++
		}
	}
	defer func() {
		for ; pushed > 0; pushed-- {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "chordpad", "unused preferences: %s", unused)
			}
		}
	}()

	pth, err := resources.JoinPath(cfg.Prefs)
	if err != nil {
		return nil, err
	}

	return hotkeys.NewPreferences(pth)
}

// pump events from an input source through the detector until the frontend
// quits, the context is cancelled or the source closes
func pump(ctx context.Context, events <-chan userinput.Event, d *hotkeys.Detector, handle userinput.HandleInput, fe *frontend.Frontend, scribe *replay.Scribe) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if err := scribe.Record(ev); err != nil {
				return err
			}
			if err := d.HandleUserInput(ev, handle); err != nil {
				return err
			}
			if fe.Quit() {
				return nil
			}
		}
	}
}

func run(md *modalflag.Modes, cfg config.Config, sync *mainSync) error {
	md.NewMode()

	flgs := addCommonFlags(md, cfg)
	record := md.AddString("record", "", "record input to a replay script")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%v)", statsview.Available()))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	hkPrefs, err := loadPreferences(cfg, flgs)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	sync.creator <- func() (GuiCreator, error) {
		return sdlinput.NewSdlInput(version.ApplicationName)
	}

	var scr *sdlinput.SdlInput
	select {
	case g := <-sync.creation:
		scr = g.(*sdlinput.SdlInput)
	case err := <-sync.creationError:
		return err
	}

	events := make(chan userinput.Event, eventQueueLen)
	scr.SetEventChannel(events)
	defer scr.StopEvents()

	fe := frontend.NewFrontend(os.Stdout)
	fe.SetNoticeHandler(scr.SetTitle)

	d := hotkeys.NewDetector(hkPrefs, fe)
	d.SetNotify(fe)

	scribe := &replay.Scribe{}
	if *record != "" {
		if err := scribe.StartSession(*record); err != nil {
			return err
		}
	}

	err = pump(context.Background(), events, d, fe, fe, scribe)
	if errEnd := scribe.EndSession(); err == nil {
		err = errEnd
	}
	if err != nil {
		return err
	}

	return hkPrefs.Save()
}

// termWriter prints the frontend's output through the terminal, one line at
// a time. notifications are highlighted
type termWriter struct {
	pt *easyterm.Terminal
}

func (w termWriter) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		pen := ""
		if strings.HasPrefix(l, "!") {
			pen = ansi.Pens["green"]
		}
		w.pt.Print(pen, "%s", l)
	}
	return len(p), nil
}

func watch(md *modalflag.Modes, cfg config.Config, sync *mainSync) error {
	md.NewMode()

	flgs := addCommonFlags(md, cfg)
	grab := md.AddBool("grab", true, "grab the input device")
	clone := md.AddBool("clone", false, "write filtered events to a virtual device")
	record := md.AddString("record", "", "record input to a replay script")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%v)", statsview.Available()))
	md.AdditionalHelp(fmt.Sprintf("the device defaults to %s. use the DEVICES mode to list devices", cfg.Device))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	device := cfg.Device
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		device = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	hkPrefs, err := loadPreferences(cfg, flgs)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	pt, err := easyterm.Open(os.Stdout)
	if err != nil {
		logger.Log(logger.Allow, "chordpad", err)
		pt = easyterm.Plain(os.Stdout)
	}
	defer pt.CleanUp()

	if err := pt.CBreakMode(); err != nil {
		return err
	}

	src, err := evdevinput.Open(device, *grab)
	if err != nil {
		return err
	}
	defer src.Close()

	if *clone {
		if err := src.Clone(fmt.Sprintf("%s virtual keyboard", version.ApplicationName)); err != nil {
			return err
		}
	}

	// the mode handles ctrl-c itself so that the device and terminal are
	// restored
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	fe := frontend.NewFrontend(termWriter{pt: pt})
	d := hotkeys.NewDetector(hkPrefs, fe)
	d.SetNotify(fe)

	handle := userinput.HandleInputFunc(func(ev userinput.Event) error {
		if err := fe.HandleEvent(ev); err != nil {
			return err
		}
		return src.HandleEvent(ev)
	})

	scribe := &replay.Scribe{}
	if *record != "" {
		if err := scribe.StartSession(*record); err != nil {
			return err
		}
	}

	pt.Print(ansi.PenStyles["bold"], "watching %s. ctrl-c to end", device)

	events := make(chan userinput.Event, eventQueueLen)
	srcErr := make(chan error, 1)
	go func() {
		srcErr <- src.Run(ctx, events)
	}()

	err = pump(ctx, events, d, handle, fe, scribe)
	cancel()

	if errEnd := scribe.EndSession(); err == nil {
		err = errEnd
	}
	if errSrc := <-srcErr; err == nil {
		err = errSrc
	}
	if err != nil {
		return err
	}

	return hkPrefs.Save()
}

func replayScript(md *modalflag.Modes, cfg config.Config, output io.Writer) error {
	md.NewMode()

	flgs := addCommonFlags(md, cfg)
	dump := md.AddString("memviz", "", "write graphviz dump of the final detector state")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	hkPrefs, err := loadPreferences(cfg, flgs)
	if err != nil {
		return err
	}

	scr, err := replay.Load(md.GetArg(0), &hotkeys.DefaultKeys)
	if err != nil {
		return err
	}

	fe := frontend.NewFrontend(output)
	ctx := replay.NewContext(fe)
	d := hotkeys.NewDetector(hkPrefs, ctx)
	d.SetNotify(fe)

	if err := replay.Play(scr, d, ctx, fe, output); err != nil {
		return err
	}

	state := d.State()
	fmt.Fprintf(output, "final state: %s\n", state)

	if *dump != "" {
		f, err := os.Create(*dump)
		if err != nil {
			return err
		}
		memviz.Map(f, &state)
		if err := f.Close(); err != nil {
			return err
		}
	}

	// settings toggled by the script are not saved
	return nil
}

func listCombos(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for _, c := range hotkeys.Combos() {
		var keys []string
		for r := hotkeys.ModLeft; r < hotkeys.NumRoles; r++ {
			if c.Mask.Has(r) {
				keys = append(keys, hotkeys.DefaultKeys[r])
			}
		}
		fmt.Fprintf(output, "%-22s %-28s %s\n", c.Mask, strings.Join(keys, " + "), c.Action)
	}

	return nil
}
