// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package wfdb_test

import (
	"testing"

	"github.com/OpenPSG/wfdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributes(t *testing.T) {
	a := wfdb.NewAttributes()

	count := wfdb.Key[int]{Name: "count"}
	_, err := wfdb.Get(a, count)
	require.ErrorIs(t, err, wfdb.ErrAttributeMissing)
	assert.False(t, a.Has("count"))

	wfdb.Set(a, count, 7)
	v, err := wfdb.Get(a, count)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.True(t, a.Has("count"))

	// Same name, different type.
	_, err = wfdb.Get(a, wfdb.Key[string]{Name: "count"})
	require.ErrorIs(t, err, wfdb.ErrAttributeType)

	var ae *wfdb.AttributeError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "count", ae.Key)
	assert.Contains(t, ae.Error(), `"count"`)
}

func TestRecordAttributes(t *testing.T) {
	rec, err := wfdb.ReadRecord("testdata/100.hea", "testdata/100.dat", wfdb.Format212)
	require.NoError(t, err)

	a := rec.Attributes()

	fileID, err := wfdb.Get(a, wfdb.AttrFileID)
	require.NoError(t, err)
	assert.Equal(t, "100", fileID)

	fs, err := wfdb.Get(a, wfdb.AttrSamplingFrequency)
	require.NoError(t, err)
	assert.Equal(t, 360, fs)

	n, err := wfdb.Get(a, wfdb.AttrNumberOfSamples)
	require.NoError(t, err)
	assert.Equal(t, 360, n)

	format, err := wfdb.Get(a, wfdb.AttrRawFormat)
	require.NoError(t, err)
	assert.Equal(t, wfdb.Format212, format)

	leads, err := wfdb.Get(a, wfdb.AttrLeadsPresented)
	require.NoError(t, err)
	assert.Equal(t, []wfdb.LeadType{wfdb.LeadII, wfdb.LeadV5}, leads)

	zero, err := wfdb.Get(a, wfdb.AttrADCZeroValue)
	require.NoError(t, err)
	assert.Equal(t, map[wfdb.LeadType]int16{wfdb.LeadII: 1024, wfdb.LeadV5: 1024}, zero)

	sums, err := wfdb.Get(a, wfdb.AttrChecksums)
	require.NoError(t, err)
	assert.Equal(t, int16(6115), sums[wfdb.LeadV5])

	samples, err := wfdb.Get(a, wfdb.AttrLeads)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, rec.Samples(wfdb.LeadV5), samples[wfdb.LeadV5])

	// Exported values are copies.
	samples[wfdb.LeadV5][0] = 0
	assert.Equal(t, int16(-1483), rec.Samples(wfdb.LeadV5)[0])
}
