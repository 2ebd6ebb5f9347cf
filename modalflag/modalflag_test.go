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

package modalflag_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher1/modalflag"
	"github.com/jetsetilly/gopher1/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"bench", "-duration", "1500ms"})
	md.AddSubModes("run", "bench")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "BENCH")

	md.NewMode()
	duration := md.AddDuration("duration", 5*time.Second, "duration")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *duration, 1500*time.Millisecond)
	test.ExpectEquality(t, md.Path(), "BENCH")

	md.NewArgs([]string{"bench", "-duration", "soon"})
	md.AddSubModes("RUN", "BENCH")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	md.NewMode()
	md.AddDuration("duration", 5*time.Second, "duration")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-turbo"})
	md.AddSubModes("RUN", "BENCH")

	// the flag is unknown at this level so the default mode is chosen
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	turbo := md.AddBool("turbo", false, "turbo")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *turbo)
}

func TestAddress(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-start", "$0300", "-end", "0x03ff"})
	start, startSet := md.AddAddress("start", 0xff00, "start address")
	end, endSet := md.AddAddress("end", 0xffff, "end address")
	other, otherSet := md.AddAddress("other", 0xe000, "other address")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *start, 0x0300)
	test.ExpectSuccess(t, *startSet)
	test.ExpectEquality(t, *end, 0x03ff)
	test.ExpectSuccess(t, *endSet)
	test.ExpectEquality(t, *other, 0xe000)
	test.ExpectFailure(t, *otherSet)

	md.NewArgs([]string{"-start", "10000"})
	md.AddAddress("start", 0xff00, "start address")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestParseAddressValue(t *testing.T) {
	a, v, err := modalflag.ParseAddressValue("E000:basic.bin")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, 0xe000)
	test.ExpectEquality(t, v, "basic.bin")

	_, _, err = modalflag.ParseAddressValue("basic.bin")
	test.ExpectFailure(t, err)

	_, _, err = modalflag.ParseAddressValue("G000:basic.bin")
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage: [flags]\n" +
		"  -test\n" +
		"      test flag (default true)\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("RUN", "BENCH", "SCRIPT", "DISASM")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage: [flags] [MODE]\n" +
		"  -test\n" +
		"      test flag (default true)\n" +
		"\n" +
		"  modes: RUN (default), BENCH, SCRIPT, DISASM\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpMode(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"disasm", "-help"})
	md.AddSubModes("RUN", "DISASM")
	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "DISASM")

	md.NewMode()
	md.AddAddress("start", 0xff00, "first address")
	md.AddBool("bytecode", true, "include bytecode")
	md.AddBool("cycles", false, "include cycles")
	md.AddString("tape", "", "tape file")
	md.AddString("profile", "none", "profiling")
	md.AddInt("clock", 0, "clock rate")
	md.AddDuration("duration", 5*time.Second, "run duration")
	md.ArgsUsage("[ADDR:FILE]")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage of DISASM mode: [flags] [ADDR:FILE]\n" +
		"  -bytecode\n" +
		"      include bytecode (default true)\n" +
		"  -clock INT\n" +
		"      clock rate\n" +
		"  -cycles\n" +
		"      include cycles\n" +
		"  -duration DURATION\n" +
		"      run duration (default 5s)\n" +
		"  -profile STRING\n" +
		"      profiling (default \"none\")\n" +
		"  -start ADDR\n" +
		"      first address (default $FF00)\n" +
		"  -tape STRING\n" +
		"      tape file\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestNoHelpAvailableForMode(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"version", "-h"})
	md.AddSubModes("RUN", "VERSION")
	_, err := md.Parse()
	test.ExpectSuccess(t, err)

	md.NewMode()
	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available for VERSION mode\n"), tw.String())
}
