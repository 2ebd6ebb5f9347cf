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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "BENCH", "SCRIPT", "DISASM")
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, the mode can be checked with the Mode()
// function. The first sub-mode is the default mode, used when the first
// non-flag argument is not the name of a mode. Mode comparisons are case
// insensitive.
//
// A mode will usually have its own flags. These are added after a call to
// NewMode() and then parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		turbo := md.AddBool("turbo", false, "run without limiting the clock")
//		start, startSet := md.AddAddress("start", 0xff00, "start address")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		run(*turbo, *start, *startSet, md.RemainingArgs())
//	}
//
// Addresses are specified in hexadecimal, in the same way as they are in the
// Woz Monitor. The ParseAddressValue() function is useful for arguments that
// pair an address with a value, such as a file to load at an address.
//
// Help messages for each mode are produced automatically when the -help flag
// is found. The ArgsUsage() function describes any arguments that follow the
// flags, for example the Lua file required by the SCRIPT mode.
package modalflag
