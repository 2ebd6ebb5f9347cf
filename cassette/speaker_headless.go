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

//go:build headless

package cassette

import "github.com/jetsetilly/gopher1/curated"

// SpeakerAvailable is true if the program has been built with audio support.
const SpeakerAvailable = false

// OtoSpeaker is not available in headless builds.
type OtoSpeaker struct{}

// NewSpeaker always returns an error in headless builds.
func NewSpeaker() (*OtoSpeaker, error) {
	return nil, curated.Errorf("speaker: not available in headless build")
}

// Play implements the Speaker interface.
func (spk *OtoSpeaker) Play(_ Signal) {
}

// Close stops any tape that is playing.
func (spk *OtoSpeaker) Close() error {
	return nil
}
