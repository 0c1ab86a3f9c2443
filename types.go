// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package wfdb

import "strconv"

// Format is a WFDB signal storage format code.
type Format int

const (
	// Format16 stores one little-endian 16-bit word per sample per lead.
	Format16 Format = 16
	// Format212 packs two leads into 12-bit fields across 3 bytes.
	Format212 Format = 212
)

func (f Format) String() string {
	return strconv.Itoa(int(f))
}

// LeadType identifies an ECG lead by electrode placement.
type LeadType uint8

const (
	LeadI LeadType = iota
	LeadII
	LeadIII
	LeadAVR
	LeadAVL
	LeadAVF
	LeadV1
	LeadV2
	LeadV3
	LeadV4
	LeadV5
	LeadV6
	LeadVX // Frank vector lead, never decoded
	LeadVY // Frank vector lead, never decoded
	LeadVZ // Frank vector lead, never decoded

	numLeadTypes = iota
)

var leadNames = [numLeadTypes]string{
	"I", "II", "III", "aVR", "aVL", "aVF",
	"V1", "V2", "V3", "V4", "V5", "V6",
	"VX", "VY", "VZ",
}

func (l LeadType) String() string {
	if int(l) < len(leadNames) {
		return leadNames[l]
	}
	return "LeadType(" + strconv.Itoa(int(l)) + ")"
}

// IsVector reports whether the lead is one of the VX/VY/VZ vector leads.
func (l LeadType) IsVector() bool {
	return l == LeadVX || l == LeadVY || l == LeadVZ
}

func (l LeadType) valid() bool {
	return int(l) < numLeadTypes
}

// leadSet is a presence bitset over LeadType.
type leadSet uint16

func (s leadSet) has(l LeadType) bool { return l.valid() && s&(1<<l) != 0 }

func (s *leadSet) add(l LeadType) { *s |= 1 << l }

// Header represents the acquisition metadata and per-lead calibration of a
// WFDB record header (.hea) file.
type Header struct {
	FileID            string     // Record name from the first header line
	SamplingFrequency int        // Sampling frequency in Hz
	Samples           int        // Number of samples per lead
	Leads             []LeadType // Leads in header order, vector leads excluded
	RawFormat         Format     // Storage format declared by the first lead line

	present    leadSet
	gain       [numLeadTypes]float64
	resolution [numLeadTypes]int
	zero       [numLeadTypes]int16
	initial    [numLeadTypes]int16
	checksum   [numLeadTypes]int16
}

// Has reports whether the lead was declared in the header.
func (h *Header) Has(l LeadType) bool { return h.present.has(l) }

// Gain returns the ADC gain of the lead in ADC units per physical unit.
func (h *Header) Gain(l LeadType) float64 {
	if !h.Has(l) {
		return 0
	}
	return h.gain[l]
}

// Resolution returns the ADC resolution of the lead in bits.
func (h *Header) Resolution(l LeadType) int {
	if !h.Has(l) {
		return 0
	}
	return h.resolution[l]
}

// ZeroValue returns the ADC value corresponding to 0 physical units.
func (h *Header) ZeroValue(l LeadType) int16 {
	if !h.Has(l) {
		return 0
	}
	return h.zero[l]
}

// InitialValue returns the expected first sample of the lead.
func (h *Header) InitialValue(l LeadType) int16 {
	if !h.Has(l) {
		return 0
	}
	return h.initial[l]
}

// Checksum returns the expected 16-bit wraparound sum of the lead's samples.
func (h *Header) Checksum(l LeadType) int16 {
	if !h.Has(l) {
		return 0
	}
	return h.checksum[l]
}

// Calibration describes a single lead line of a header.
type Calibration struct {
	Lead         LeadType
	Gain         float64
	Resolution   int
	ZeroValue    int16
	InitialValue int16
	Checksum     int16
}

func (h *Header) addLead(c Calibration) {
	h.Leads = append(h.Leads, c.Lead)
	h.present.add(c.Lead)
	h.gain[c.Lead] = c.Gain
	h.resolution[c.Lead] = c.Resolution
	h.zero[c.Lead] = c.ZeroValue
	h.initial[c.Lead] = c.InitialValue
	h.checksum[c.Lead] = c.Checksum
}
