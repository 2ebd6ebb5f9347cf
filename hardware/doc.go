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

// Package hardware is the base package for the Apple-1 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Apple1 type is the root of the emulation and contains external
// references to all the sub-systems. From here, the emulation can either be
// started to run continuously (with a callback to check for continuation) or
// it can be stepped one instruction at a time.
//
// The host communicates with the emulation through the KeyPressed() function
// and through the Display and Storage collaborators supplied to NewApple1().
package hardware
