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

// Package instructions defines the instruction set of the NMOS 6502. Every
// one of the 256 possible opcodes has a Definition, including those opcodes
// that are not part of the documented instruction set. These have the
// Undefined operator.
//
// The table is fixed and is accessed through Lookup() or GetDefinitions().
package instructions
