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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/jetsetilly/gopher1/curated"
	"github.com/jetsetilly/gopher1/test"
)

const testError = "test error: %s"
const wrapError = "wrap: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, wrapError))
	test.ExpectSuccess(t, curated.IsAny(e))

	// wrapped errors are not the same as the wrapping error
	f := curated.Errorf(wrapError, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Is(f, wrapError))

	// plain errors are never curated
	test.ExpectFailure(t, curated.IsAny(io.EOF))
	test.ExpectFailure(t, curated.Is(io.EOF, testError))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf(wrapError, e)
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, wrapError))
	test.ExpectFailure(t, curated.Has(e, wrapError))
	test.ExpectEquality(t, f.Error(), "wrap: test error: foo")
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(wrapError, io.ErrUnexpectedEOF)
	test.ExpectSuccess(t, errors.Is(e, io.ErrUnexpectedEOF))
	test.ExpectFailure(t, errors.Is(e, io.EOF))
	test.ExpectEquality(t, e.Error(), "wrap: unexpected EOF")
}
