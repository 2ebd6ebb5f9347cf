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

// Package version reports the version of the program, as best as it can be
// determined from the build information.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Gopher1"

// if number is empty then the project was not built with a version number
// supplied by the linker (-ldflags "-X .../version.number=v0.1.0")
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this is
// a numbered "release" version.
//
// If the version string is "unreleased" then the project has been built from a
// repository without a version number. If the version string is "local" then
// there is no version number and no vcs information. This can happen when
// compiling/running with "go run ."
//
// The revision string is suffixed with "+dirty" if the source has been
// modified but has not been committed.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Banner returns a one line description of the application and its version.
func Banner() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = nil
	}
	version, revision = fromBuildInfo(info, number)
}

func fromBuildInfo(info *debug.BuildInfo, number string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info != nil {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	if number != "" {
		return number, rev
	}
	if vcs {
		return "unreleased", rev
	}
	return "local", rev
}
