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

package cassette

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/jetsetilly/gopher1/logger"
	"github.com/jetsetilly/gopher1/paths"
)

// Picker chooses the tape file to use for a load or a save. Returning an empty
// string cancels the operation.
type Picker interface {
	PickLoad() (string, error)

	// the suggestion is a unique filename that can be used if the user has no
	// preference
	PickSave(suggestion string) (string, error)
}

// FixedPicker always picks the same file. If Filename is empty then loads are
// cancelled and saves use the suggested filename.
type FixedPicker struct {
	Filename string
}

// PickLoad implements the Picker interface.
func (p FixedPicker) PickLoad() (string, error) {
	return p.Filename, nil
}

// PickSave implements the Picker interface.
func (p FixedPicker) PickSave(suggestion string) (string, error) {
	if p.Filename == "" {
		return suggestion, nil
	}
	return p.Filename, nil
}

// Speaker plays the audio of a tape.
type Speaker interface {
	Play(sig Signal)
}

// the sub-directory of the resource path used for tapes saved with the
// suggested filename
const tapesPath = "tapes"

// Deck implements the aci.Storage interface.
type Deck struct {
	env     logger.Permission
	picker  Picker
	speaker Speaker

	// length of leader tone for audio tapes
	Leader time.Duration
}

// NewDeck is the preferred method of initialisation for the Deck type.
func NewDeck(env logger.Permission, picker Picker) *Deck {
	return &Deck{
		env:    env,
		picker: picker,
		Leader: LeaderDuration,
	}
}

// SetPicker changes how the tape file is chosen.
func (d *Deck) SetPicker(picker Picker) {
	d.picker = picker
}

// SetSpeaker attaches a speaker to the deck. A nil speaker is silent.
func (d *Deck) SetSpeaker(speaker Speaker) {
	d.speaker = speaker
}

func (d *Deck) play(sig Signal) {
	if d.speaker != nil && len(sig.Samples) > 0 {
		d.speaker.Play(sig)
	}
}

// Load implements the aci.Storage interface. Problems are logged and result
// in nothing being loaded.
func (d *Deck) Load(dest uint16) []uint8 {
	if d.picker == nil {
		return nil
	}

	filename, err := d.picker.PickLoad()
	if err != nil {
		logger.Log(d.env, "cassette", err)
		return nil
	}
	if filename == "" {
		logger.Log(d.env, "cassette", "load cancelled")
		return nil
	}

	data, sig, err := ReadFile(filename)
	if err != nil {
		logger.Log(d.env, "cassette", err)
		return nil
	}
	d.play(sig)

	logger.Logf(d.env, "cassette", "read %d bytes from %s for %04x", len(data), filename, dest)

	return data
}

// Save implements the aci.Storage interface.
func (d *Deck) Save(start uint16, end uint16, data []uint8) error {
	if d.picker == nil {
		return nil
	}

	suggestion := fmt.Sprintf("%s.wav", paths.UniqueFilename("tape", fmt.Sprintf("%04X-%04X", start, end)))

	filename, err := d.picker.PickSave(suggestion)
	if err != nil {
		return err
	}
	if filename == "" {
		logger.Log(d.env, "cassette", "save cancelled")
		return nil
	}

	if filename == suggestion {
		filename, err = paths.ResourcePath(tapesPath, filename)
		if err != nil {
			return err
		}
	}

	sig, err := WriteFile(filename, data, d.Leader)
	if err != nil {
		return err
	}
	d.play(sig)

	logger.Logf(d.env, "cassette", "wrote %d bytes to %s", len(data), filepath.Clean(filename))

	return nil
}
