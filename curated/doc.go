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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern. Patterns that are checked for in this way should be stored as a
// const string, suitably named and commented. For example:
//
//	const SizeError = "rom: %s is %d bytes (maximum %d)"
//
//	e := curated.Errorf(SizeError, "wozmon.rom", 512, 256)
//
//	if curated.Is(e, SizeError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. An error wrapped by another curated error, with the %v
// verb, is part of the chain.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors depending on how we choose to handle the result of the
// function call.
//
// The Error() function ensures that the error chain is normalised.
// Specifically, that the chain does not contain duplicate adjacent parts. So:
//
//	e := curated.Errorf("cassette: %v", curated.Errorf("cassette: no leader"))
//
// will print as:
//
//	cassette: no leader
//
// Chains are thought of as being composed of parts separated by the sub-string
// ': ' as suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan).
package curated
