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

package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher1/govern"
	"github.com/jetsetilly/gopher1/hardware"
	"github.com/jetsetilly/gopher1/logger"
	"github.com/jetsetilly/gopher1/performance/limiter"
	"github.com/jetsetilly/gopher1/userinput"
)

// Keyboard is the source of key presses from the host. Each byte is
// translated with userinput.Translate().
type Keyboard interface {
	Keys() <-chan uint8
}

// Flusher is optionally implemented by a Keyboard. Flush() is called when the
// emulation is reset so that keys typed before the reset are discarded.
type Flusher interface {
	Flush()
}

// Options for the Play() function.
type Options struct {
	// a nil limiter runs the emulation as quickly as possible
	Limiter *limiter.Limiter

	// closing the channel ends the emulation. can be nil
	Quit <-chan struct{}

	// text typed into the Apple-1 as soon as the emulation starts
	Preload string
}

// Play runs the Apple-1 until the user quits, the program is interrupted or
// the Quit channel is closed.
func Play(a1 *hardware.Apple1, kbd Keyboard, opts Options) error {
	// we need to make sure we return from the function normally even when
	// ctrl-c is pressed. redirect interrupt signal to an os.Signal channel
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var keys <-chan uint8
	if kbd != nil {
		keys = kbd.Keys()
	}

	var queue userinput.Queue
	queue.PushText(opts.Preload)

	lastCycles := a1.Cycles()
	var performanceFilter int

	return a1.Run(func() (govern.State, error) {
		if opts.Limiter != nil {
			c := a1.Cycles()
			if c < lastCycles {
				lastCycles = 0
			}
			opts.Limiter.Account(int(c - lastCycles))
			lastCycles = c
		}

		performanceFilter++
		if performanceFilter < hardware.PerformanceBrake {
			return govern.Running, nil
		}
		performanceFilter = 0

		for {
			select {
			case <-intChan:
				return govern.Ending, nil
			case <-opts.Quit:
				return govern.Ending, nil
			case b := <-keys:
				ev, ok := userinput.Translate(b)
				if !ok {
					continue
				}

				switch ev.Action {
				case userinput.ActionQuit:
					return govern.Ending, nil
				case userinput.ActionReset:
					logger.Log(a1.Env, "playmode", "reset")
					queue.Clear()
					if f, ok := kbd.(Flusher); ok {
						f.Flush()
					}
					lastCycles = 0
					return govern.Resetting, nil
				case userinput.ActionPaste:
					queue.Push(userinput.Clipboard()...)
				default:
					queue.Push(ev.Key)
				}
				continue
			default:
			}
			break
		}

		queue.Deliver(a1)

		return govern.Running, nil
	})
}
