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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// help prints the flags, sub-modes and argument usage of the current mode.
// Flags are listed alphabetically.
func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	var flags []*flag.Flag
	md.flags.VisitAll(func(f *flag.Flag) {
		flags = append(flags, f)
	})

	if len(flags) == 0 && len(md.subModes) == 0 && md.argsUsage == "" {
		if md.Path() == "" {
			io.WriteString(md.Output, "No help available\n")
		} else {
			fmt.Fprintf(md.Output, "No help available for %s mode\n", md.Path())
		}
		return
	}

	s := &strings.Builder{}

	s.WriteString("Usage")
	if md.Path() != "" {
		fmt.Fprintf(s, " of %s mode", md.Path())
	}
	s.WriteString(":")
	if len(flags) > 0 {
		s.WriteString(" [flags]")
	}
	if len(md.subModes) > 0 {
		s.WriteString(" [MODE]")
	}
	if md.argsUsage != "" {
		fmt.Fprintf(s, " %s", md.argsUsage)
	}
	s.WriteString("\n")

	for _, f := range flags {
		kind, usage := flagKind(f)
		fmt.Fprintf(s, "  -%s", f.Name)
		if kind != "" {
			fmt.Fprintf(s, " %s", kind)
		}
		fmt.Fprintf(s, "\n      %s", usage)
		if def := flagDefault(f, kind); def != "" {
			fmt.Fprintf(s, " (default %s)", def)
		}
		s.WriteString("\n")
	}

	if len(md.subModes) > 0 {
		if len(flags) > 0 {
			s.WriteString("\n")
		}
		modes := make([]string, len(md.subModes))
		copy(modes, md.subModes)
		modes[0] = fmt.Sprintf("%s (default)", modes[0])
		fmt.Fprintf(s, "  modes: %s\n", strings.Join(modes, ", "))
	}

	io.WriteString(md.Output, s.String())
}

// flagKind returns the name of the value expected by the flag and the usage
// string. Boolean flags have no value name.
func flagKind(f *flag.Flag) (string, string) {
	if _, ok := f.Value.(*address); ok {
		return "ADDR", f.Usage
	}
	kind, usage := flag.UnquoteUsage(f)
	return strings.ToUpper(kind), usage
}

// flagDefault returns the default value as it should appear in the help
// message. Zero values are not shown.
func flagDefault(f *flag.Flag, kind string) string {
	switch kind {
	case "ADDR":
		return "$" + f.DefValue
	case "":
		if f.DefValue == "true" {
			return "true"
		}
		return ""
	case "STRING":
		if f.DefValue == "" {
			return ""
		}
		return strconv.Quote(f.DefValue)
	}

	switch f.DefValue {
	case "0", "0s":
		return ""
	}
	return f.DefValue
}
