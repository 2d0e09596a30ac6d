// Copyright 2024 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMbps(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		input  string
		expect float64
		ok     bool
	}{
		{input: "300 Mbps", expect: 300, ok: true},
		{input: "1.5 Gbps", expect: 1500, ok: true},
		{input: "1,000 Mbps", expect: 1000, ok: true},
		{input: "Up to 400Mbps", expect: 400, ok: true},
		{input: "2 Gbps", expect: 2000, ok: true},
		{input: "\u00a0120\u00a0Mbps", expect: 120, ok: true},
		{input: "150 Mbps (gigabit ports)", expect: 150, ok: true},
		{input: "100", expect: 100, ok: true},
		{input: "N/A"},
		{input: ""},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			v, ok := ParseMbps(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expect, v)
		})
	}
}

func TestParseUsersRange(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		input  string
		lo, hi int
		ok     bool
	}{
		{input: "1-60", lo: 1, hi: 60, ok: true},
		{input: "1\u201360", lo: 1, hi: 60, ok: true},
		{input: "50 \u2014 150", lo: 50, hi: 150, ok: true},
		{input: "Up to 150", lo: 150, hi: 150, ok: true},
		{input: "500+", lo: 500, hi: 500, ok: true},
		{input: "1,000-2,000", lo: 1000, hi: 2000, ok: true},
		{input: "200-100", lo: 100, hi: 200, ok: true},
		{input: "many"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			lo, hi, ok := ParseUsersRange(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.lo, lo)
			assert.Equal(t, tc.hi, hi)
		})
	}
}

func TestParseIntPrefix(t *testing.T) {
	t.Parallel()
	n, ok := ParseIntPrefix("2 (5G)")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	n, ok = ParseIntPrefix("Dual: 12")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	_, ok = ParseIntPrefix("none")
	assert.False(t, ok)
}

func TestYesNo(t *testing.T) {
	t.Parallel()
	testCases := map[string]string{
		"yes":         "Yes",
		" Yes (2x2) ": "Yes",
		"Y":           "Yes",
		"no":          "No",
		"None":        "No",
		"Optional":    "Optional",
		"":            "",
	}
	for input, expect := range testCases {
		assert.Equal(t, expect, YesNo(input), input)
	}
}
