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

package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionsText(t *testing.T) {
	t.Parallel()

	c := fixtureCatalog(t)
	testCases := map[string]struct {
		params   url.Values
		expected string
	}{
		"default": {
			params:   url.Values{},
			expected: "Client Category: Essential",
		},
		"everything": {
			params: url.Values{
				"category":            {"Mobile Routers"},
				AttrSeries:            {"HD"},
				AttrModemGroup:        {"Multi"},
				"minUsers":            {"10"},
				"minRouterThroughput": {"500"},
				"client_category":     {"Business"},
			},
			expected: "Category: Mobile Routers\n" +
				"Client Category: Business\n" +
				"Modem Group: Multi\n" +
				"Series: HD\n" +
				"Min Router Throughput: 500 Mbps\n" +
				"Min Users: 10",
		},
		"fractional minimum": {
			params:   url.Values{"minSpeedFusion": {"12.5"}},
			expected: "Client Category: Essential\nMin SpeedFusion: 12.5 Mbps",
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, SelectionsText(c.ComputeView(tc.params)))
		})
	}
}
