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

// Package functional_test runs the 6502 functional test as defined by Klaus
// Dormann. https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The binary is not distributed with the source. To run the test, assemble
// 6502_functional_test.a65 with the ROM_vectors test disabled and with the
// decimal mode tests disabled, and place the binary in the testdata directory
// as 6502_functional_test.bin. The test is skipped if the binary is missing.
//
// Decimal mode tests must be disabled because the zero flag after a decimal
// mode ADC or SBC reflects the adjusted result, rather than the binary result
// of the NMOS 6502.
package functional_test
