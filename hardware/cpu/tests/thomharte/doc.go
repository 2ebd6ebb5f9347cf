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

// Package thomharte runs the single step tests for the 6502 created by Tom
// Harte. https://github.com/SingleStepTests/65x02
//
// The test files are not distributed with the source. Copy any number of the
// JSON files from the 6502/v1 directory of the test repository into the
// testdata directory. The test is skipped if there are no files.
//
// Undefined opcodes are skipped, as are decimal mode ADC and SBC tests. The
// bus activity recorded in the test files is not compared, only the number of
// cycles.
package thomharte
