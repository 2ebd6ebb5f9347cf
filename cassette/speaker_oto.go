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

//go:build !headless

package cassette

import (
	"bytes"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/gopher1/curated"
)

// SpeakerAvailable is true if the program has been built with audio support.
const SpeakerAvailable = true

// only one oto context can exist for the lifetime of the program
var speakerContext struct {
	once sync.Once
	ctx  *oto.Context
	err  error
}

// OtoSpeaker implements the Speaker interface. Tapes are played in the
// background. Starting a new tape stops any tape already playing.
type OtoSpeaker struct {
	crit   sync.Mutex
	player *oto.Player
}

// NewSpeaker is the preferred method of initialisation for the OtoSpeaker type.
func NewSpeaker() (*OtoSpeaker, error) {
	speakerContext.once.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		}

		var ready chan struct{}
		speakerContext.ctx, ready, speakerContext.err = oto.NewContext(op)
		if speakerContext.err == nil {
			<-ready
		}
	})

	if speakerContext.err != nil {
		return nil, curated.Errorf("speaker: %v", speakerContext.err)
	}

	return &OtoSpeaker{}, nil
}

// Play implements the Speaker interface. Signals not recorded at the speaker
// sample rate are resampled.
func (spk *OtoSpeaker) Play(sig Signal) {
	spk.crit.Lock()
	defer spk.crit.Unlock()

	if spk.player != nil {
		_ = spk.player.Close()
	}

	spk.player = speakerContext.ctx.NewPlayer(bytes.NewReader(pcm(sig)))
	spk.player.Play()
}

// Close stops any tape that is playing.
func (spk *OtoSpeaker) Close() error {
	spk.crit.Lock()
	defer spk.crit.Unlock()

	if spk.player == nil {
		return nil
	}
	err := spk.player.Close()
	spk.player = nil
	return err
}
