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

package paths

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher1/test"
)

func TestUniqueFilename(t *testing.T) {
	n := time.Date(1976, time.July, 1, 9, 5, 30, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("tape", "0300-03FF", n), "tape_0300-03FF_19760701_090530")
	test.ExpectEquality(t, uniqueFilename("tape", " ", n), "tape_19760701_090530")
}
