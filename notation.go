// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package wfdb

// NotationTable maps the lead labels used by a particular database to
// LeadType values. Lookups are case-sensitive.
type NotationTable struct {
	name   string
	labels map[string]LeadType
}

var (
	// PTBNotation is the lead notation of the PTB diagnostic ECG database.
	PTBNotation = newNotationTable("ptb", map[string]LeadType{
		"i": LeadI, "ii": LeadII, "iii": LeadIII,
		"avr": LeadAVR, "avl": LeadAVL, "avf": LeadAVF,
		"v1": LeadV1, "v2": LeadV2, "v3": LeadV3,
		"v4": LeadV4, "v5": LeadV5, "v6": LeadV6,
		"vx": LeadVX, "vy": LeadVY, "vz": LeadVZ,
	})

	// MITBIHNotation is the lead notation of the MIT-BIH arrhythmia database.
	MITBIHNotation = newNotationTable("mit-bih", map[string]LeadType{
		"MLI": LeadI, "MLII": LeadII, "MLIII": LeadIII,
		"aVR": LeadAVR, "aVL": LeadAVL, "aVF": LeadAVF,
		"V1": LeadV1, "V2": LeadV2, "V3": LeadV3,
		"V4": LeadV4, "V5": LeadV5, "V6": LeadV6,
		"VX": LeadVX, "VY": LeadVY, "VZ": LeadVZ,
	})
)

func newNotationTable(name string, labels map[string]LeadType) NotationTable {
	return NotationTable{name: name, labels: labels}
}

// Lookup resolves a lead label.
func (t NotationTable) Lookup(label string) (LeadType, bool) {
	l, ok := t.labels[label]
	return l, ok
}

// Label returns the label the table uses for the given lead.
func (t NotationTable) Label(l LeadType) (string, bool) {
	for label, lead := range t.labels {
		if lead == l {
			return label, true
		}
	}
	return "", false
}

func (t NotationTable) String() string {
	return t.name
}

// NotationFor returns the notation table conventionally paired with a storage
// format: PTB for format 16 and MIT-BIH for format 212.
func NotationFor(f Format) (NotationTable, error) {
	switch f {
	case Format16:
		return PTBNotation, nil
	case Format212:
		return MITBIHNotation, nil
	default:
		return NotationTable{}, &UnsupportedFormatError{Format: f}
	}
}
