// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package wfdb

import "fmt"

const (
	format212GroupSize = 3
	format212Leads     = 2
)

// decode212 unpacks two interleaved 12-bit leads. Each 3 byte group holds
// one sample of each lead: the low byte of the first lead, a byte whose low
// nibble is the high nibble of the first lead and whose high nibble is the
// high nibble of the second lead, and the low byte of the second lead.
func decode212(data []byte, hdr *Header) ([][]int16, error) {
	if len(hdr.Leads) != format212Leads {
		return nil, &HeaderFormatError{Line: -1, Reason: fmt.Sprintf("format 212 requires exactly %d leads, header declares %d", format212Leads, len(hdr.Leads))}
	}

	if !holdsFrames(len(data), format212GroupSize, hdr.Samples) {
		return nil, brokenData("expected %d samples of %d leads, got %d bytes", hdr.Samples, len(hdr.Leads), len(data))
	}

	first := make([]int16, 0, hdr.Samples)
	second := make([]int16, 0, hdr.Samples)

	for off := 0; off+format212GroupSize <= len(data); off += format212GroupSize {
		a, b := unpack212(data[off], data[off+1], data[off+2])
		first = append(first, a)
		second = append(second, b)
	}

	return [][]int16{first, second}, nil
}

func unpack212(b0, b1, b2 byte) (int16, int16) {
	high := int(b1 & 0x0F)
	low := int(b1>>4) & 0x0F

	return signExtend12(high<<8 | int(b0)), signExtend12(low<<8 | int(b2))
}

// pack212 is the inverse of unpack212. Both samples must fit in 12 bits.
func pack212(a, b int16) (byte, byte, byte) {
	ua, ub := uint16(a)&0x0FFF, uint16(b)&0x0FFF
	return byte(ua), byte(ua>>8) | byte(ub>>8)<<4, byte(ub)
}

func signExtend12(v int) int16 {
	if v >= 1<<11 {
		v -= 1 << 12
	}
	return int16(v)
}

func fits12(v int16) bool {
	return v >= -(1<<11) && v < 1<<11
}
