// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package wfdb

// defaultGain is the WFDB convention for a header gain of zero, in ADC units
// per millivolt.
const defaultGain = 200

// Record is a decoded and validated ECG record. A Record is immutable.
type Record struct {
	hdr   Header
	leads [numLeadTypes][]int16
}

// assemble takes ownership of leads, which is indexed like hdr.Leads.
func assemble(hdr *Header, leads [][]int16) *Record {
	rec := &Record{hdr: *hdr}
	rec.hdr.Leads = append([]LeadType(nil), hdr.Leads...)
	for i, lead := range hdr.Leads {
		rec.leads[lead] = leads[i]
	}
	return rec
}

// Header returns a copy of the metadata the record was decoded with.
func (r *Record) Header() *Header {
	hdr := r.hdr
	hdr.Leads = r.Leads()
	return &hdr
}

// Leads returns the decoded leads in header order.
func (r *Record) Leads() []LeadType {
	return append([]LeadType(nil), r.hdr.Leads...)
}

// Samples returns a copy of the digital samples of a lead, or nil if the
// lead is not part of the record.
func (r *Record) Samples(l LeadType) []int16 {
	if !r.hdr.Has(l) {
		return nil
	}
	return append([]int16(nil), r.leads[l]...)
}

// Physical converts the samples of a lead to physical units (usually mV)
// using the lead's ADC gain and zero value.
func (r *Record) Physical(l LeadType) []float64 {
	if !r.hdr.Has(l) {
		return nil
	}

	gain := r.hdr.Gain(l)
	if gain == 0 {
		gain = defaultGain
	}
	zero := r.hdr.ZeroValue(l)

	physical := make([]float64, len(r.leads[l]))
	for i, d := range r.leads[l] {
		physical[i] = convertDigitalToPhysical(d, zero, gain)
	}
	return physical
}

func convertDigitalToPhysical(digital, zero int16, gain float64) float64 {
	return (float64(digital) - float64(zero)) / gain
}
