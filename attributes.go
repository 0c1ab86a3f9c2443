// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package wfdb

import (
	"errors"
	"fmt"
)

var (
	// ErrAttributeMissing is matched when a key has not been set.
	ErrAttributeMissing = errors.New("attribute not found")
	// ErrAttributeType is matched when a key holds a value of another type.
	ErrAttributeType = errors.New("attribute has unexpected type")
)

// AttributeError is returned by Get.
type AttributeError struct {
	Key string
	Err error // ErrAttributeMissing or ErrAttributeType
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("attribute %q: %s", e.Key, e.Err)
}

func (e *AttributeError) Unwrap() error { return e.Err }

// Key names an attribute holding a value of type T.
type Key[T any] struct {
	Name string
}

// Attributes is a heterogeneous key/value store with type-checked access,
// used to hand records to processing pipelines.
type Attributes struct {
	values map[string]any
}

// NewAttributes returns an empty store.
func NewAttributes() *Attributes {
	return &Attributes{values: make(map[string]any)}
}

// Set stores v under k, replacing any previous value.
func Set[T any](a *Attributes, k Key[T], v T) {
	a.values[k.Name] = v
}

// Get returns the value stored under k.
func Get[T any](a *Attributes, k Key[T]) (T, error) {
	var zero T

	v, ok := a.values[k.Name]
	if !ok {
		return zero, &AttributeError{Key: k.Name, Err: ErrAttributeMissing}
	}

	t, ok := v.(T)
	if !ok {
		return zero, &AttributeError{Key: k.Name, Err: ErrAttributeType}
	}
	return t, nil
}

// Has reports whether any value is stored under name.
func (a *Attributes) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Well-known record attributes.
var (
	AttrFileID            = Key[string]{Name: "fileId"}
	AttrSamplingFrequency = Key[int]{Name: "samplingFrequency"}
	AttrNumberOfSamples   = Key[int]{Name: "numberOfSamples"}
	AttrRawFormat         = Key[Format]{Name: "rawFormat"}
	AttrLeadsPresented    = Key[[]LeadType]{Name: "leadsPresented"}
	AttrADCGain           = Key[map[LeadType]float64]{Name: "adcGain"}
	AttrADCResolution     = Key[map[LeadType]int]{Name: "adcResolution"}
	AttrADCZeroValue      = Key[map[LeadType]int16]{Name: "adcZeroValue"}
	AttrInitialValues     = Key[map[LeadType]int16]{Name: "initialValues"}
	AttrChecksums         = Key[map[LeadType]int16]{Name: "checksums"}
	AttrLeads             = Key[map[LeadType][]int16]{Name: "leads"}
)

// Attributes exports the record as a fresh attribute store. Values are
// copies; modifying them does not affect the record.
func (r *Record) Attributes() *Attributes {
	a := NewAttributes()

	Set(a, AttrFileID, r.hdr.FileID)
	Set(a, AttrSamplingFrequency, r.hdr.SamplingFrequency)
	Set(a, AttrNumberOfSamples, r.hdr.Samples)
	Set(a, AttrRawFormat, r.hdr.RawFormat)
	Set(a, AttrLeadsPresented, r.Leads())

	gain := make(map[LeadType]float64, len(r.hdr.Leads))
	resolution := make(map[LeadType]int, len(r.hdr.Leads))
	zero := make(map[LeadType]int16, len(r.hdr.Leads))
	initial := make(map[LeadType]int16, len(r.hdr.Leads))
	sums := make(map[LeadType]int16, len(r.hdr.Leads))
	leads := make(map[LeadType][]int16, len(r.hdr.Leads))
	for _, l := range r.hdr.Leads {
		gain[l] = r.hdr.Gain(l)
		resolution[l] = r.hdr.Resolution(l)
		zero[l] = r.hdr.ZeroValue(l)
		initial[l] = r.hdr.InitialValue(l)
		sums[l] = r.hdr.Checksum(l)
		leads[l] = r.Samples(l)
	}

	Set(a, AttrADCGain, gain)
	Set(a, AttrADCResolution, resolution)
	Set(a, AttrADCZeroValue, zero)
	Set(a, AttrInitialValues, initial)
	Set(a, AttrChecksums, sums)
	Set(a, AttrLeads, leads)

	return a
}
