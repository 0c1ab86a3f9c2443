// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package wfdb

// validate cross-checks decoded samples against the initial values and
// checksums declared in the header. leads is indexed like hdr.Leads.
func validate(hdr *Header, leads [][]int16) error {
	if len(leads) != len(hdr.Leads) {
		return brokenData("decoded %d leads, header declares %d", len(leads), len(hdr.Leads))
	}

	for i, lead := range hdr.Leads {
		samples := leads[i]
		if len(samples) != hdr.Samples {
			return brokenLead(lead, "decoded %d samples, header declares %d", len(samples), hdr.Samples)
		}
		if len(samples) == 0 {
			return brokenLead(lead, "no samples to check initial value %d", hdr.InitialValue(lead))
		}
		if samples[0] != hdr.InitialValue(lead) {
			return brokenLead(lead, "initial value %d does not match header value %d", samples[0], hdr.InitialValue(lead))
		}
	}

	for i, lead := range hdr.Leads {
		if sum := checksum(leads[i]); sum != hdr.Checksum(lead) {
			return brokenLead(lead, "checksum %d does not match header checksum %d", sum, hdr.Checksum(lead))
		}
	}

	return nil
}

// checksum is the 16-bit two's complement wraparound sum of the samples.
func checksum(samples []int16) int16 {
	var sum int16
	for _, s := range samples {
		sum += s
	}
	return sum
}
