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

package curated

import (
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error.
//
// Note that unlike the Errorf() function in the fmt package the first argument
// is named "pattern" not "format". The pattern is what identifies the error in
// the Is() and Has() functions.
func Errorf(pattern string, values ...any) error {
	// formatting is deferred until the Error() function is called
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message. Normalisation being the removal
// of duplicate adjacent error messsage parts in the error message chain. It
// doesn't affect letter-case or white space.
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	// de-duplicate error message parts
	p := strings.Split(s, ": ")
	d := p[:1]
	for _, q := range p[1:] {
		if q != d[len(d)-1] {
			d = append(d, q)
		}
	}

	return strings.Join(d, ": ")
}

// Unwrap returns the errors that were supplied as values to Errorf(). Allows
// curated errors to be used with the errors package of the standard library.
func (er curated) Unwrap() []error {
	var w []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			w = append(w, e)
		}
	}
	return w
}

// IsAny checks if the error is a curated error.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is checks if error is a curated error with a specific pattern.
func Is(err error, pattern string) bool {
	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}
	return false
}

// Has checks if error is a curated error with a specific pattern somewhere in
// the chain.
func Has(err error, pattern string) bool {
	if !IsAny(err) {
		return false
	}

	if Is(err, pattern) {
		return true
	}

	for _, e := range err.(curated).Unwrap() {
		if Has(e, pattern) {
			return true
		}
	}

	return false
}
