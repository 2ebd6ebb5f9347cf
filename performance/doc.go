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

// Package performance contains helper functions relating to performance.
//
// Bench() runs the emulation for a fixed duration of time as quickly as
// possible and reports the speed of the emulation in thousands of instructions
// per second and in MHz. It will optionally generate profiling information.
//
// RunProfiler() can be used to generate the various profile types. On its own
// it will not limit the amount of time the program runs for so it is useful
// for more real-world situations.
//
// The limiter sub-package is used to keep the emulation running at the speed
// of the real machine.
package performance
