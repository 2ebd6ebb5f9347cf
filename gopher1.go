// This file is part of Gopher1.
//
// Gopher1 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher1 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher1.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher1/cassette"
	"github.com/jetsetilly/gopher1/console"
	"github.com/jetsetilly/gopher1/disassembly"
	"github.com/jetsetilly/gopher1/display"
	"github.com/jetsetilly/gopher1/environment"
	"github.com/jetsetilly/gopher1/hardware"
	"github.com/jetsetilly/gopher1/hardware/clocks"
	"github.com/jetsetilly/gopher1/hardware/memory/rom"
	"github.com/jetsetilly/gopher1/hardware/pia"
	"github.com/jetsetilly/gopher1/logger"
	"github.com/jetsetilly/gopher1/macro"
	"github.com/jetsetilly/gopher1/modalflag"
	"github.com/jetsetilly/gopher1/performance"
	"github.com/jetsetilly/gopher1/performance/limiter"
	"github.com/jetsetilly/gopher1/playmode"
	"github.com/jetsetilly/gopher1/statsview"
	"github.com/jetsetilly/gopher1/version"
	"github.com/jetsetilly/gopher1/window"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the playmode package provides its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function. this is
// required because the window must be run on the main thread.
type mainSync struct {
	state chan stateRequest

	// windows sent on this channel are run by the main thread. the result of
	// the window's Run() function is sent back on the windowResult channel
	window       chan *window.Window
	windowResult chan error
}

// size of the ROM images that can replace the built in images
const romSize = 256

// #mainthread
func main() {
	sync := &mainSync{
		state:        make(chan stateRequest),
		window:       make(chan *window.Window),
		windowResult: make(chan error, 1),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case win := <-sync.window:
			// blocks until the window is closed
			sync.windowResult <- win.Run()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
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
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate window creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "BENCH", "SCRIPT", "DISASM", "VERSION")

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
		err = run(md, sync)

	case "BENCH":
		err = bench(md, os.Stdout)

	case "SCRIPT":
		err = script(md, sync, os.Stdout)

	case "DISASM":
		err = disasm(md, os.Stdout)

	case "VERSION":
		fmt.Println(version.Banner())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// romFlags are the flags for replacing the built in ROM images. the flags are
// available in every mode that creates an Apple1.
type romFlags struct {
	woz *string
	aci *string
}

func addROMFlags(md *modalflag.Modes) romFlags {
	return romFlags{
		woz: md.AddString("woz", "", "file containing a replacement for the Woz Monitor ROM"),
		aci: md.AddString("aci", "", "file containing a replacement for the ACI ROM"),
	}
}

func (f romFlags) install(a1 *hardware.Apple1) error {
	if *f.woz == "" && *f.aci == "" {
		return nil
	}

	monitor, err := rom.Load(*f.woz, romSize)
	if err != nil {
		return err
	}
	aciROM, err := rom.Load(*f.aci, romSize)
	if err != nil {
		return err
	}

	a1.InstallROMs(monitor, aciROM)
	return nil
}

// loadFile loads a file into memory. the argument is of the form ADDR:FILE
func loadFile(a1 *hardware.Apple1, arg string) error {
	if arg == "" {
		return nil
	}

	address, filename, err := modalflag.ParseAddressValue(arg)
	if err != nil {
		return err
	}

	data, _, err := cassette.ReadFile(filename)
	if err != nil {
		return err
	}

	n := a1.Mem.Load(address, data)
	logger.Logf(a1.Env, "main", "loaded %d bytes from %s at %04x", n, filename, address)

	return nil
}

// dump the state of the CPU as a dot graph
func dumpMemviz(a1 *hardware.Apple1, filename string) error {
	if filename == "" {
		return nil
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	memviz.Map(f, a1.CPU)
	return f.Close()
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	turbo := md.AddBool("turbo", false, "run the CPU as quickly as possible")
	clock := md.AddInt("clock", clocks.Apple1Hz, "clock rate of the CPU in Hz (ignored if -turbo is set)")
	roms := addROMFlags(md)
	tape := md.AddString("tape", "", "tape file to use for all loads and saves (.wav, .mp3 or binary)")
	speaker := md.AddBool("speaker", false, "play tape audio through the speaker")
	load := md.AddString("load", "", "load a file into memory before starting (ADDR:FILE)")
	start, startSet := md.AddAddress("start", 0xff00, "start address (default is the reset vector)")
	typeText := md.AddString("type", "", "text to type as soon as the emulation starts")
	trace := md.AddBool("trace", false, "log every CPU instruction (use with -log)")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	useWindow := md.AddBool("window", false, "display in a window rather than the terminal")
	scale := md.AddInt("scale", 2, "window scaling (only valid if -window=true)")
	memvizFile := md.AddString("memviz", "", "write a dot graph of the CPU state to file on exit")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		defer statsview.Launch(os.Stdout)()
	}

	// playmode has its own interrupt handler
	sync.state <- stateRequest{req: reqNoIntSig}

	env := environment.NewEnvironment(nil)
	deck := cassette.NewDeck(env, nil)

	if *speaker {
		spk, err := cassette.NewSpeaker()
		if err != nil {
			return err
		}
		defer spk.Close()
		deck.SetSpeaker(spk)
	}

	var kbd playmode.Keyboard
	var disp pia.Display
	var quit <-chan struct{}
	var win *window.Window

	if *useWindow {
		if !window.Available {
			return fmt.Errorf("window not available in this build")
		}
		scr := display.NewScreen()
		win = window.NewWindow(scr, *scale)
		kbd = win
		disp = scr
		quit = win.Quit()
		deck.SetPicker(cassette.FixedPicker{Filename: *tape})
	} else {
		con := console.NewConsole(os.Stdin, os.Stdout)
		if err := con.Start(); err != nil {
			return err
		}
		defer con.Stop()
		kbd = con
		disp = con
		if *tape == "" {
			deck.SetPicker(con)
		} else {
			deck.SetPicker(cassette.FixedPicker{Filename: *tape})
		}
	}

	a1 := hardware.NewApple1(env, disp, deck)
	a1.SetTrace(*trace)

	if err := roms.install(a1); err != nil {
		return err
	}
	if err := loadFile(a1, *load); err != nil {
		return err
	}
	if *startSet {
		a1.ResetTo(*start)
	}

	opts := playmode.Options{
		Quit:    quit,
		Preload: *typeText,
	}
	if !*turbo {
		opts.Limiter = limiter.NewLimiter(*clock)
		defer opts.Limiter.Stop()
	}

	runner := func() error {
		if win == nil {
			return playmode.Play(a1, kbd, opts)
		}

		// the emulation runs in this goroutine while the window runs in the
		// main thread
		done := make(chan error, 1)
		go func() {
			done <- playmode.Play(a1, kbd, opts)
			win.Close()
		}()
		sync.window <- win
		if err := <-sync.windowResult; err != nil {
			return err
		}
		return <-done
	}

	if err := performance.RunProfiler(prf, "run", runner); err != nil {
		return err
	}

	return dumpMemviz(a1, *memvizFile)
}

func bench(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	roms := addROMFlags(md)
	load := md.AddString("load", "", "load a file into memory before starting (ADDR:FILE)")
	start, startSet := md.AddAddress("start", 0xff00, "start address (default is the reset vector)")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	env := environment.NewEnvironment(nil)
	env.Label = environment.BenchEmulation

	a1 := hardware.NewApple1(env, nil, nil)
	if err := roms.install(a1); err != nil {
		return err
	}
	if err := loadFile(a1, *load); err != nil {
		return err
	}
	if *startSet {
		a1.ResetTo(*start)
	}

	m, err := performance.Bench(output, prf, a1, *duration)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "total: %s\n", m)
	return nil
}

func script(md *modalflag.Modes, sync *mainSync, output io.Writer) error {
	md.NewMode()

	roms := addROMFlags(md)
	tape := md.AddString("tape", "", "tape file to use for all loads and saves (.wav, .mp3 or binary)")
	echo := md.AddBool("echo", true, "echo the Apple-1 display to stdout")
	trace := md.AddBool("trace", false, "log every CPU instruction (use with -log)")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	memvizFile := md.AddString("memviz", "", "write a dot graph of the CPU state to file on exit")
	md.ArgsUsage("FILE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single Lua script is required for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	// the script is stopped through the context on interrupt
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := environment.NewEnvironment(nil)
	env.Label = environment.ScriptEmulation

	a1 := hardware.NewApple1(env, nil, cassette.NewDeck(env, cassette.FixedPicker{Filename: *tape}))
	a1.SetTrace(*trace)
	if err := roms.install(a1); err != nil {
		return err
	}

	var w io.Writer
	if *echo {
		w = output
	}
	mcr := macro.NewMacro(a1, w)

	if err := mcr.Run(ctx, md.GetArg(0)); err != nil {
		return err
	}
	if *echo {
		fmt.Fprintln(output)
	}

	return dumpMemviz(a1, *memvizFile)
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	roms := addROMFlags(md)
	start, _ := md.AddAddress("start", 0xff00, "first address to disassemble")
	end, _ := md.AddAddress("end", 0xffff, "last address to disassemble")
	bytecode := md.AddBool("bytecode", true, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle count in disassembly")
	md.ArgsUsage("[ADDR:FILE]")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	a1 := hardware.NewApple1(nil, nil, nil)
	if err := roms.install(a1); err != nil {
		return err
	}
	if len(md.RemainingArgs()) == 1 {
		if err := loadFile(a1, md.GetArg(0)); err != nil {
			return err
		}
	}

	entries := disassembly.Range(a1.Mem, *start, *end)
	disassembly.Write(output, entries, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Cycles:   *cycles,
	})

	return nil
}
