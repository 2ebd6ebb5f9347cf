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

package environment

import (
	"github.com/jetsetilly/gopher1/random"
)

// Label is used to name the environment
type Label string

// List of valid emulation labels
const (
	MainEmulation   = Label("")
	BenchEmulation  = Label("bench")
	ScriptEmulation = Label("script")
)

// Environment is used to provide context for an emulation. Particularly useful
// when using multiple emulations
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retreived through
	// this structure
	Random *random.Random
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type. The clock argument is used to seed the random number generator.
func NewEnvironment(clock random.Clock) *Environment {
	return &Environment{
		Random: random.NewRandom(clock),
	}
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run of the test.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation and the script emulation are allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation() || env.IsEmulation(ScriptEmulation)
}
