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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/gopher1/curated"
)

// Profile specifies which profiling (if any) should be performed.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileTrace
)

// ProfileError is returned by ParseProfile() for an unrecognised profile.
const ProfileError = "profile: unknown profile type (%s)"

// ParseProfile converts a comma separated string of profile types to a Profile
// value. Valid types are CPU, MEM, TRACE, ALL and NONE. The empty string is the
// same as NONE.
func ParseProfile(s string) (Profile, error) {
	var p Profile

	for _, t := range strings.Split(s, ",") {
		switch strings.ToUpper(strings.TrimSpace(t)) {
		case "", "NONE":
		case "CPU":
			p |= ProfileCPU
		case "MEM":
			p |= ProfileMem
		case "TRACE":
			p |= ProfileTrace
		case "ALL":
			p |= ProfileCPU | ProfileMem | ProfileTrace
		default:
			return ProfileNone, curated.Errorf(ProfileError, t)
		}
	}

	return p, nil
}

// RunProfiler runs the supplied function with the profiling specified by the
// Profile argument. Profile files are named with the supplied header.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(filenameHeader + "_cpu.profile")
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf("profile: %v", err)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(filenameHeader + "_trace.profile")
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf("profile: %v", err)
			}
		}()

		if err := trace.Start(f); err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer trace.Stop()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(filenameHeader + "_mem.profile")
		if err != nil {
			return curated.Errorf("profile: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf("profile: %v", err)
		}
	}

	return nil
}
