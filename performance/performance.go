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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher1/curated"
	"github.com/jetsetilly/gopher1/govern"
	"github.com/jetsetilly/gopher1/hardware"
	"github.com/jetsetilly/gopher1/hardware/clocks"
)

// DurationError is returned by Bench() when the duration is not positive.
const DurationError = "performance: bench duration must be positive (%v)"

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Measurement is the result of a period of benchmarking.
type Measurement struct {
	Instructions uint64
	Cycles       uint64
	Duration     time.Duration
}

// KIPS returns the number of thousands of instructions per second.
func (m Measurement) KIPS() float64 {
	return float64(m.Instructions) / m.Duration.Seconds() / 1000
}

// MHz returns the effective clock speed of the emulation.
func (m Measurement) MHz() float64 {
	return float64(m.Cycles) / m.Duration.Seconds() / 1000000
}

// Accuracy returns the effective clock speed as a percentage of the speed of
// the real Apple-1.
func (m Measurement) Accuracy() float64 {
	return 100 * m.MHz() / clocks.Apple1
}

func (m Measurement) String() string {
	return fmt.Sprintf("%.1f kinst/s %.3f MHz (%.1f%%)", m.KIPS(), m.MHz(), m.Accuracy())
}

// Bench runs the emulation as quickly as possible for the specified duration.
// A measurement is written to output every second and a final measurement for
// the whole period is returned.
//
// The Apple1 should be created with a nil display because nothing is printed
// to the output other than the measurements.
func Bench(output io.Writer, profile Profile, a1 *hardware.Apple1, dur time.Duration) (Measurement, error) {
	if dur <= 0 {
		return Measurement{}, curated.Errorf(DurationError, dur)
	}

	var total Measurement
	var current Measurement

	runner := func() error {
		timesUp := time.After(dur)
		tick := time.NewTicker(time.Second)
		defer tick.Stop()

		start := time.Now()
		startPeriod := start

		// only check for end of measurement period every PerformanceBrake CPU
		// instructions. checking the channels is relatively expensive
		performanceBrake := 0

		err := a1.Run(func() (govern.State, error) {
			current.Instructions++
			current.Cycles += uint64(a1.CPU.LastResult.Cycles)

			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case <-timesUp:
				return govern.Ending, timedOut
			case <-tick.C:
				current.Duration = time.Since(startPeriod)
				startPeriod = time.Now()
				io.WriteString(output, fmt.Sprintf("%s\n", current))
				total.Instructions += current.Instructions
				total.Cycles += current.Cycles
				current = Measurement{}
			default:
			}

			return govern.Running, nil
		})

		total.Instructions += current.Instructions
		total.Cycles += current.Cycles
		total.Duration = time.Since(start)

		return err
	}

	err := RunProfiler(profile, "bench", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return total, curated.Errorf("performance: %v", err)
	}

	return total, nil
}
