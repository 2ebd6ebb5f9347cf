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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Modes handles the modes and flags of a command line. Set the Output field
// before calling Parse() or help messages will not be seen.
type Modes struct {
	// where help messages are printed
	Output io.Writer

	// flags for the current mode. a new flagset is created by NewArgs() and
	// NewMode(). Parse() should be used rather than calling flags.Parse()
	flags *flag.FlagSet

	args    []string
	argsIdx int

	// modes that the next call to Parse() can select. the first entry is the
	// default
	subModes []string

	// modes selected by previous calls to Parse()
	path []string

	// description of the non-flag arguments for the help message
	argsUsage string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs starts a new command line. The args should not include the program
// name.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode clears the flags and sub-modes ready for the arguments of a new
// mode.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.flags.Usage = func() {}
	md.subModes = md.subModes[:0]
	md.argsUsage = ""
}

// ArgsUsage describes the non-flag arguments of the mode. For example, "FILE"
// or "[ADDR:FILE]". The description is shown in the help message.
func (md *Modes) ArgsUsage(usage string) {
	md.argsUsage = usage
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// command line processing should continue. if sub-modes were added then
	// the selected mode is returned by Mode()
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// the command line is wrong. the error is returned alongside
	ParseError
)

// Parse the arguments for the current mode. Help is printed to Output if it
// is requested with -help or -h:
//
//	p, err := md.Parse()
//	if err != nil || p != modalflag.ParseContinue {
//		return err
//	}
//
// When sub-modes have been added a mode is always selected. The first
// argument selects the mode if it names one, otherwise the default mode is
// selected and the argument is left for the mode's own flags.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.argsIdx:])

	if err == flag.ErrHelp {
		md.help()
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	// an unrecognised flag belongs to the default mode
	mode := md.subModes[0]
	if err == nil {
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break // for loop
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags or a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that is not a flag or a sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes adds modes that can be selected by the next Parse(). The first
// mode added is the default. Modes are matched without regard to case.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse(). Durations are written as they
// are for time.ParseDuration(), for example "1500ms" or "2m".
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddAddress flag for next call to Parse(). Addresses are written in
// hexadecimal with an optional $ or 0x prefix, the same way addresses are
// written in the monitor. The returned bool pointer is true if the flag was
// present on the command line.
func (md *Modes) AddAddress(name string, value uint16, usage string) (*uint16, *bool) {
	a := &address{value: value}
	md.flags.Var(a, name, usage)
	return &a.value, &a.set
}

// address implements the flag.Value interface for 16bit hexadecimal values.
type address struct {
	value uint16
	set   bool
}

func (a *address) String() string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("%04X", a.value)
}

func (a *address) Set(s string) error {
	v, err := parseAddress(s)
	if err != nil {
		return err
	}
	a.value = v
	a.set = true
	return nil
}

func parseAddress(s string) (uint16, error) {
	h := strings.ToLower(s)
	h = strings.TrimPrefix(h, "$")
	h = strings.TrimPrefix(h, "0x")
	v, err := strconv.ParseUint(h, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("not a 16bit hexadecimal address: %s", s)
	}
	return uint16(v), nil
}

// ParseAddressValue splits an argument of the form ADDR:VALUE, such as the
// argument to the -load flag. The address is hexadecimal and the value is
// returned unparsed.
func ParseAddressValue(s string) (uint16, string, error) {
	addr, value, ok := strings.Cut(s, ":")
	if !ok {
		return 0, "", fmt.Errorf("expected ADDR:VALUE: %s", s)
	}

	a, err := parseAddress(addr)
	if err != nil {
		return 0, "", err
	}

	return a, value, nil
}
