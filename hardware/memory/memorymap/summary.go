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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	var area, current Area
	var sa uint16

	s := strings.Builder{}

	// look up area of first address in memory
	current = MapAddress(0)

	// for every address in the range 1 to Memtop...
	for a := 1; a <= int(Memtop); a++ {
		// ...get the area name of that address.
		area = MapAddress(uint16(a))

		// if the area has changed print out the summary line...
		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-1, current))

			// ...update current area and start address of the area
			current = area
			sa = uint16(a)
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, Memtop, current))

	return s.String()
}
