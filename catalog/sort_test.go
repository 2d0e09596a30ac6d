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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aigentincubator/sales-ctonet/model"
)

func TestSort(t *testing.T) {
	t.Parallel()

	testCases := map[model.SortKey][]string{
		model.SortName: {
			"balance 20X", "FlexSwitch 8", "HD2 Dome", "MAX BR1 Mini", "MAX Transit Duo",
		},
		model.SortRouterThroughput: {
			"HD2 Dome", "balance 20X", "MAX Transit Duo", "MAX BR1 Mini", "FlexSwitch 8",
		},
		// Ties on 100 broken by name; unknown values last, by name.
		model.SortSpeedFusion: {
			"HD2 Dome", "balance 20X", "MAX BR1 Mini", "FlexSwitch 8", "MAX Transit Duo",
		},
		model.SortUsers: {
			"MAX Transit Duo", "balance 20X", "MAX BR1 Mini", "FlexSwitch 8", "HD2 Dome",
		},
		"": {
			"balance 20X", "FlexSwitch 8", "HD2 Dome", "MAX BR1 Mini", "MAX Transit Duo",
		},
	}
	for key, expected := range testCases {
		key, expected := key, expected
		t.Run(string(key), func(t *testing.T) {
			t.Parallel()
			records := fixtureRecords()
			before := names(records)

			assert.Equal(t, expected, names(Sort(records, key)))
			assert.Equal(t, before, names(records), "input order must not change")
		})
	}
}

func TestSortNameCase(t *testing.T) {
	t.Parallel()

	records := []model.HardwareRecord{
		{Name: "b"},
		{Name: "B"},
		{Name: "a"},
		{Name: "A"},
	}
	assert.Equal(t, []string{"A", "a", "B", "b"}, names(Sort(records, model.SortName)))
}

func TestSortOrderProperty(t *testing.T) {
	t.Parallel()

	for _, key := range SortKeys {
		metric, ok := key.Metric()
		if !ok {
			continue
		}
		sorted := Sort(fixtureRecords(), key)
		for i := 1; i < len(sorted); i++ {
			a, b := sorted[i-1], sorted[i]
			va, oka := a.Metric(metric)
			vb, okb := b.Metric(metric)
			switch {
			case oka && okb:
				assert.True(t, va > vb || (va == vb && lessName(a.Name, b.Name)),
					"%s: %s before %s", key, a.Name, b.Name)
			case !oka:
				assert.False(t, okb, "%s: unknown %s before known %s", key, a.Name, b.Name)
				assert.True(t, lessName(a.Name, b.Name))
			}
		}
	}
}
