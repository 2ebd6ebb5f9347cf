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

// Package cassette stores programs saved and loaded by the Apple Cassette
// Interface. The Deck type implements the aci.Storage interface and is plumbed
// into the ACI when the emulation is created.
//
// Tapes can be stored as raw binary data or as audio. Audio tapes use the
// recording format of the ACI: a leader tone of 770Hz, a single sync cycle and
// then every bit of every byte as one cycle of either 2000Hz (for a zero) or
// 1000Hz (for a one). The most significant bit of each byte is recorded first.
//
// The format of a tape file is chosen by the file extension:
//
//	.wav		audio, read and write
//	.mp3		audio, read only
//	other		raw binary, read and write
//
// A Picker chooses the file to use for each load and save. The console
// package prompts the user for a filename; the FixedPicker type always uses
// the same filename.
//
// When a Speaker is attached to a Deck, the audio of each tape is played as
// it is loaded or saved.
package cassette
