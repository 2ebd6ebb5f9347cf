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

// Package aci implements the storage triggers of the Apple Cassette Interface.
//
// The real ACI encodes and decodes audio with a small driver ROM. In the
// emulation, reading the load trigger or writing the save trigger passes
// control to a Storage implementation, which deals with files directly. The
// driver ROM is still present in memory and the addresses it uses are the
// addresses of the triggers.
//
// The memory range for both operations comes from the zero page pointers that
// the monitor uses when examining memory: XAM (0x24) and ST (0x26).
package aci
