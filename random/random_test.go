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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher1/random"
	"github.com/jetsetilly/gopher1/test"
)

type clock struct {
	cycles uint64
}

func (c *clock) Cycles() uint64 {
	return c.cycles
}

func TestRandom(t *testing.T) {
	c := &clock{cycles: 1000}
	a := random.NewRandom(c)
	b := random.NewRandom(c)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		c.cycles += 7
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestRandomRange(t *testing.T) {
	c := &clock{}
	rnd := random.NewRandom(c)

	// over enough cycles every byte value should be seen
	var seen [256]bool
	for i := range 100000 {
		c.cycles = uint64(i)
		v := rnd.Intn(256)
		test.DemandSuccess(t, v >= 0 && v < 256)
		seen[v] = true
	}
	for i, s := range seen {
		test.ExpectSuccess(t, s, i)
	}
}

func TestSameCycle(t *testing.T) {
	c := &clock{cycles: 55}
	rnd := random.NewRandom(c)
	test.ExpectEquality(t, rnd.Intn(1000), rnd.Intn(1000))
}
