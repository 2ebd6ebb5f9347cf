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

// Package paths contains functions to prepare paths to gopher1 resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to a saved tape.
//
//	d, err := paths.ResourcePath("tapes", "basic.wav")
//
// Development builds use the ".gopher1" directory in the current directory.
// Release builds (built with the release tag) use the user's config
// directory. The package uses os.UserConfigDir() from go standard library for
// this.
//
// In the example above, on a modern Linux system, the path returned by a
// release build will be:
//
//	/home/user/.config/gopher1/tapes/basic.wav
//
// The directory will be created if it does not exist. The file itself is not
// created.
package paths
