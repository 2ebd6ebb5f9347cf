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

// pcm converts a signal to signed 16 bit little endian samples at the speaker
// sample rate. Resampling uses the nearest sample.
func pcm(sig Signal) []byte {
	if sig.Rate <= 0 || len(sig.Samples) == 0 {
		return nil
	}

	n := len(sig.Samples)
	if sig.Rate != SampleRate {
		n = int(int64(n) * SampleRate / int64(sig.Rate))
	}

	b := make([]byte, 0, n*2)
	for i := range n {
		s := sig.Samples[min(int(int64(i)*int64(sig.Rate)/SampleRate), len(sig.Samples)-1)]
		b = append(b, uint8(s), uint8(uint16(s)>>8))
	}

	return b
}
