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
	"path/filepath"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. Either subPth or
// file can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	basePath, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(basePath, file), nil
}
