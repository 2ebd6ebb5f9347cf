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

//go:build !release

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher1/paths"
	"github.com/jetsetilly/gopher1/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher1", "foo", "bar", "baz"))

	// directory is created but the file is not
	_, err = os.Stat(filepath.Join(".gopher1", "foo", "bar"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err == nil)

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher1", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher1")
}
