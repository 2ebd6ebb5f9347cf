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

// Package limiter provides a rough and ready way of limiting the emulation to
// a fixed clock rate.
//
// Cycles are accounted for after every instruction. Once a slice worth of
// cycles has been accounted for, the limiter waits for the next tick of the
// slice timer. For example:
//
//	lim := limiter.NewLimiter(clocks.Apple1Hz)
//	defer lim.Stop()
//
//	for {
//		lim.Account(a1.Step())
//	}
//
// A clock rate of zero or less means that the limiter never waits.
package limiter

import (
	"sync"
	"time"
)

// SlicesPerSecond is the number of times per second the limiter synchronises
// with the host clock.
const SlicesPerSecond = 60

// Limiter keeps the number of cycles executed per second close to the
// requested clock rate.
type Limiter struct {
	crit sync.Mutex

	hz             int
	cyclesPerSlice int
	cycles         int

	ticker *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(hz int) *Limiter {
	lim := &Limiter{
		ticker: time.NewTicker(time.Second / SlicesPerSecond),
	}
	lim.SetClock(hz)
	return lim
}

// SetClock changes the clock rate. A value of zero or less turns the limiter
// off. Safe to call from a different goroutine to the emulation.
func (lim *Limiter) SetClock(hz int) {
	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.hz = hz
	lim.cycles = 0
	if hz > 0 {
		lim.cyclesPerSlice = max(1, hz/SlicesPerSecond)
	} else {
		lim.cyclesPerSlice = 0
	}
}

// Clock returns the current clock rate.
func (lim *Limiter) Clock() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.hz
}

// Account adds the number of cycles to the running total and waits if a slice
// worth of cycles has been reached. Returns true if the limiter waited.
func (lim *Limiter) Account(cycles int) bool {
	lim.crit.Lock()
	if lim.cyclesPerSlice == 0 {
		lim.crit.Unlock()
		return false
	}
	lim.cycles += cycles
	if lim.cycles < lim.cyclesPerSlice {
		lim.crit.Unlock()
		return false
	}
	lim.cycles -= lim.cyclesPerSlice
	lim.crit.Unlock()

	<-lim.ticker.C
	return true
}

// Stop the limiter. Account() must not be called after Stop().
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
