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

package environment_test

import (
	"testing"

	"github.com/jetsetilly/gopher1/environment"
	"github.com/jetsetilly/gopher1/logger"
	"github.com/jetsetilly/gopher1/test"
)

type clock struct{}

func (clock) Cycles() uint64 {
	return 0
}

func TestPermission(t *testing.T) {
	env := environment.NewEnvironment(clock{})
	var p logger.Permission = env

	test.ExpectSuccess(t, env.IsMainEmulation())
	test.ExpectSuccess(t, p.AllowLogging())

	env.Label = environment.BenchEmulation
	test.ExpectFailure(t, env.IsMainEmulation())
	test.ExpectSuccess(t, env.IsEmulation(environment.BenchEmulation))
	test.ExpectFailure(t, p.AllowLogging())

	env.Label = environment.ScriptEmulation
	test.ExpectSuccess(t, p.AllowLogging())
}

func TestNormalise(t *testing.T) {
	a := environment.NewEnvironment(clock{})
	b := environment.NewEnvironment(clock{})
	a.Normalise()
	b.Normalise()
	test.ExpectEquality(t, a.Random.Intn(256), b.Random.Intn(256))
}
