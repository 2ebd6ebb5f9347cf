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

package hardware

import (
	"github.com/jetsetilly/gopher1/curated"
	"github.com/jetsetilly/gopher1/govern"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// UnsupportedState is returned by Run() when the continue check returns a
// state that cannot be handled.
const UnsupportedState = "apple1: unsupported emulation state (%s) in Run() function"

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction and the emulation continues
// until it returns the Ending state or an error.
//
// The Resetting state causes the machine to be reset before the next
// instruction. The Paused state causes no instruction to be run. In both
// cases the continueCheck function is called again immediately so a paused
// host should block inside the function until the state changes.
func (a1 *Apple1) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}
	return a1.run(func(_ int) (govern.State, error) {
		return continueCheck()
	})
}

// RunForCycles sets the emulation running for at least the specified number
// of cycles. The number of cycles actually run is returned. The emulation can
// be stopped early if continueCheck returns the Ending state.
//
// The count is independent of the CPU cycle count, which is reset whenever the
// machine is reset.
func (a1 *Apple1) RunForCycles(cycles uint64, continueCheck func() (govern.State, error)) (uint64, error) {
	var count uint64

	err := a1.run(func(n int) (govern.State, error) {
		count += uint64(n)
		if count >= cycles {
			return govern.Ending, nil
		}
		if continueCheck == nil {
			return govern.Running, nil
		}
		return continueCheck()
	})

	return count, err
}

// the continueCheck function receives the number of cycles consumed since the
// previous call
func (a1 *Apple1) run(continueCheck func(int) (govern.State, error)) error {
	var err error

	state := govern.Running

	for state != govern.Ending {
		var n int

		switch state {
		case govern.Running:
			n = a1.Step()
		case govern.Resetting:
			a1.Reset()
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck(n)
		if err != nil {
			return err
		}
	}

	return nil
}
