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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Clock is the source of emulated time. The Apple1 type of the hardware package
// satisfies this interface.
type Clock interface {
	Cycles() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// Plumb a new clock into the random number generator. Used when the clock is
// created after the Random instance.
func (rnd *Random) Plumb(clock Clock) {
	rnd.clock = clock
}

// new RNG seeded by the current cycle count
func (rnd *Random) rand() *rand.Rand {
	var cycles uint64
	if rnd.clock != nil {
		cycles = rnd.clock.Cycles()
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewPCG(0, cycles))
	}
	return rand.New(rand.NewPCG(baseSeed, cycles))
}

// Intn returns a random number in the range 0 to n-1. The same number is
// returned for the same cycle count.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().IntN(n)
}
