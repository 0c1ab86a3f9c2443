// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package wfdb

import "encoding/binary"

// decode16 reads round-robin interleaved little-endian 16-bit samples, one
// frame of len(hdr.Leads) words per sample index.
func decode16(data []byte, hdr *Header) ([][]int16, error) {
	frameSize := len(hdr.Leads) * 2
	if !holdsFrames(len(data), frameSize, hdr.Samples) {
		return nil, brokenData("expected %d samples of %d leads, got %d bytes", hdr.Samples, len(hdr.Leads), len(data))
	}

	leads := make([][]int16, len(hdr.Leads))
	if len(leads) == 0 {
		return leads, nil
	}
	for i := range leads {
		leads[i] = make([]int16, hdr.Samples)
	}

	for n := 0; n < hdr.Samples; n++ {
		frame := data[n*frameSize : (n+1)*frameSize]
		for i := range leads {
			leads[i][n] = int16(binary.LittleEndian.Uint16(frame[i*2:]))
		}
	}

	return leads, nil
}

// holdsFrames reports whether n bytes are exactly samples frames of
// frameSize bytes, without multiplying the header-declared sample count.
func holdsFrames(n, frameSize, samples int) bool {
	if frameSize == 0 {
		return n == 0
	}
	return n%frameSize == 0 && n/frameSize == samples
}
