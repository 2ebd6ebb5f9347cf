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
	"math"
	"time"
)

// SampleRate of audio created by the encoder.
const SampleRate = 44100

// Frequencies and durations used by the ACI recording format. Durations are
// in microseconds.
const (
	leaderFreq   = 770
	zeroFreq     = 2000
	oneFreq      = 1000
	syncFirstUS  = 200.0
	syncSecondUS = 250.0

	// full cycles shorter than this are zero bits
	bitThresholdUS = 750.0

	// half cycles longer than this are part of the leader
	leaderHalfMinUS = 550.0

	// the first half cycle of the sync cycle is shorter than this
	syncHalfMaxUS = 400.0

	// full cycles longer than this end the data
	dataEndUS = 1250.0

	// number of leader half cycles required before the sync cycle is looked
	// for
	leaderMinHalfCycles = 64
)

// LeaderDuration is the length of the leader tone recorded before the data.
const LeaderDuration = 2 * time.Second

// amplitude of the encoded square wave
const amplitude = 0x5fff

// Signal is mono audio.
type Signal struct {
	Rate    int
	Samples []int16
}

// Duration returns the playing time of the signal.
func (sig Signal) Duration() time.Duration {
	if sig.Rate == 0 {
		return 0
	}
	return time.Duration(len(sig.Samples)) * time.Second / time.Duration(sig.Rate)
}

// encoder builds a square wave from a sequence of half cycles.
type encoder struct {
	sig   Signal
	level int16

	// time in microseconds at the end of the last half cycle
	t float64
}

func (enc *encoder) half(us float64) {
	enc.t += us
	end := int(math.Round(enc.t * float64(enc.sig.Rate) / 1000000.0))
	for len(enc.sig.Samples) < end {
		enc.sig.Samples = append(enc.sig.Samples, enc.level)
	}
	enc.level = -enc.level
}

func (enc *encoder) cycle(freq float64) {
	us := 500000.0 / freq
	enc.half(us)
	enc.half(us)
}

// Encode data as ACI audio with a leader of the specified length.
func Encode(data []uint8, leader time.Duration) Signal {
	enc := encoder{
		sig:   Signal{Rate: SampleRate},
		level: amplitude,
	}

	leaderHalf := 500000.0 / leaderFreq
	n := int(float64(leader.Microseconds()) / leaderHalf)
	for range n {
		enc.half(leaderHalf)
	}

	enc.half(syncFirstUS)
	enc.half(syncSecondUS)

	for _, b := range data {
		for i := 7; i >= 0; i-- {
			if b&(1<<i) == 0 {
				enc.cycle(zeroFreq)
			} else {
				enc.cycle(oneFreq)
			}
		}
	}

	// the terminating half cycle closes the last bit
	enc.half(leaderHalf)

	return enc.sig
}

// halfCycles returns the length in microseconds of every half cycle in the
// signal. A half cycle is measured from one zero crossing to the next.
func halfCycles(sig Signal) []float64 {
	var halves []float64

	if len(sig.Samples) == 0 || sig.Rate == 0 {
		return halves
	}

	usPerSample := 1000000.0 / float64(sig.Rate)
	positive := sig.Samples[0] >= 0
	last := -1

	for i, s := range sig.Samples {
		p := s >= 0
		if p == positive {
			continue
		}
		positive = p

		// the period before the first crossing is not a complete half cycle
		if last >= 0 {
			halves = append(halves, float64(i-last)*usPerSample)
		}
		last = i
	}

	return halves
}

// Decode ACI audio. Returns the decoded data and the number of bits that did
// not make a complete byte.
func Decode(sig Signal) ([]uint8, int, error) {
	halves := halfCycles(sig)

	// find leader followed by the sync cycle
	i := 0
	leader := 0
	for ; i < len(halves); i++ {
		if halves[i] >= leaderHalfMinUS {
			leader++
			continue
		}
		if leader >= leaderMinHalfCycles && halves[i] < syncHalfMaxUS {
			break
		}
		leader = 0
	}

	if i >= len(halves) {
		return nil, 0, errNoLeader
	}

	// skip both halves of the sync cycle
	i += 2

	var data []uint8
	var b uint8
	var bits int

	for ; i+1 < len(halves); i += 2 {
		full := halves[i] + halves[i+1]
		if full >= dataEndUS {
			break
		}

		b <<= 1
		if full >= bitThresholdUS {
			b |= 0x01
		}
		bits++

		if bits == 8 {
			data = append(data, b)
			b = 0
			bits = 0
		}
	}

	return data, bits, nil
}
