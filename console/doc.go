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

// Package console connects the Apple-1 keyboard and display to the terminal
// that the program was started from.
//
// While the console is running the terminal is in raw mode. Every byte typed
// is sent unaltered on the channel returned by Keys(). Translation of the
// bytes into Apple-1 keystrokes is left to the consumer of the channel (see
// the userinput package).
//
// The console also implements the cassette.Picker interface. Filenames are
// typed at a prompt below the Apple-1 output.
//
// Stop() must be called before the program ends so that the terminal is
// restored to its original state.
package console
