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

package rom

import (
	"os"

	"github.com/jetsetilly/gopher1/curated"
)

// Sentinal errors.
const (
	LoadError = "rom: %v"
	SizeError = "rom: %s is %d bytes (maximum %d)"
)

// Load reads a replacement ROM image from a file. The image must be no larger
// than maxSize. A nil data slice is returned if the filename is empty.
func Load(filename string, maxSize int) ([]uint8, error) {
	if filename == "" {
		return nil, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	if len(data) > maxSize {
		return nil, curated.Errorf(SizeError, filename, len(data), maxSize)
	}

	return data, nil
}
