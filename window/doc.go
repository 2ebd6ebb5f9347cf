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

// Package window shows the Apple-1 screen in a graphical window. The window
// is also a keyboard: key presses are sent as host bytes on the channel
// returned by Keys(), in the same way as the console package, so the window
// can be used with the playmode package.
//
// The Run() function must be called from the main goroutine and only returns
// when the window is closed. The emulation should run in a different
// goroutine.
//
// The window is not available if the program is built with the headless
// build tag.
package window
