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
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher1/curated"
)

// Format of a tape file.
type Format int

// List of valid Format values.
const (
	FormatBinary Format = iota
	FormatWAV
	FormatMP3
)

func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatWAV:
		return "wav"
	case FormatMP3:
		return "mp3"
	}
	return "unknown format"
}

// FormatFromFilename returns the tape format implied by the filename
// extension.
func FormatFromFilename(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return FormatWAV
	case ".mp3":
		return FormatMP3
	}
	return FormatBinary
}

// Sentinal error patterns.
const (
	ReadError     = "cassette: read: %v"
	WriteError    = "cassette: write: %v"
	FormatError   = "cassette: %v: %v"
	NotSupported  = "cassette: %v: writing is not supported"
	NoLeaderError = "cassette: no leader tone found"
)

var errNoLeader = curated.Errorf(NoLeaderError)

// ReadFile returns the data stored on a tape. For audio tapes the signal is
// also returned. Binary tapes return an empty signal.
func ReadFile(filename string) ([]uint8, Signal, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, Signal{}, curated.Errorf(ReadError, err)
	}
	defer f.Close()

	var sig Signal

	switch FormatFromFilename(filename) {
	case FormatWAV:
		sig, err = readWAV(f)
		if err != nil {
			return nil, Signal{}, curated.Errorf(FormatError, FormatWAV, err)
		}
	case FormatMP3:
		sig, err = readMP3(f)
		if err != nil {
			return nil, Signal{}, curated.Errorf(FormatError, FormatMP3, err)
		}
	default:
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, Signal{}, curated.Errorf(ReadError, err)
		}
		return data, Signal{}, nil
	}

	data, _, err := Decode(sig)
	if err != nil {
		return nil, sig, err
	}

	return data, sig, nil
}

// WriteFile stores data on a tape. For audio tapes the encoded signal is
// returned. Binary tapes return an empty signal.
func WriteFile(filename string, data []uint8, leader time.Duration) (_ Signal, rerr error) {
	format := FormatFromFilename(filename)
	if format == FormatMP3 {
		return Signal{}, curated.Errorf(NotSupported, format)
	}

	f, err := os.Create(filename)
	if err != nil {
		return Signal{}, curated.Errorf(WriteError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WriteError, err)
		}
	}()

	if format == FormatBinary {
		if _, err := f.Write(data); err != nil {
			return Signal{}, curated.Errorf(WriteError, err)
		}
		return Signal{}, nil
	}

	sig := Encode(data, leader)
	if err := writeWAV(f, sig); err != nil {
		return Signal{}, curated.Errorf(FormatError, FormatWAV, err)
	}

	return sig, nil
}

func writeWAV(w io.WriteSeeker, sig Signal) error {
	enc := wav.NewEncoder(w, sig.Rate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sig.Rate},
		Data:           make([]int, len(sig.Samples)),
		SourceBitDepth: 16,
	}
	for i, s := range sig.Samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

func readWAV(r io.ReadSeeker) (Signal, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Signal{}, curated.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Signal{}, err
	}

	numChans := max(int(dec.NumChans), 1)
	sig := Signal{
		Rate:    int(dec.SampleRate),
		Samples: make([]int16, 0, len(buf.Data)/numChans),
	}

	// first channel only. samples are scaled to 16 bits
	for i := 0; i < len(buf.Data); i += numChans {
		v := buf.Data[i]
		switch dec.BitDepth {
		case 8:
			v = (v - 128) << 8
		case 24:
			v >>= 8
		case 32:
			v >>= 16
		}
		sig.Samples = append(sig.Samples, int16(v))
	}

	return sig, nil
}

func readMP3(r io.Reader) (Signal, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Signal{}, err
	}

	sig := Signal{Rate: dec.SampleRate()}

	// the decoded stream is always 16bit little endian with two channels. we
	// only want the left channel
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			sig.Samples = append(sig.Samples, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return Signal{}, err
		}
	}

	return sig, nil
}
