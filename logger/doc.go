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

// Package logger is the central log for the application. Entries are made
// with the Log() and Logf() functions, each of which takes a Permission
// argument. The Environment type of the environment package implements the
// Permission interface, so an emulation can decide whether it is allowed to
// log. Use logger.Allow when a log entry should always be made.
//
// The tag argument should be a short lowercase name for the part of the
// application making the entry. For example:
//
//	logger.Logf(env, "aci", "saved %d bytes", n)
//
// The log is bounded and consecutive identical entries are collapsed into one
// entry with a repeat count.
package logger
