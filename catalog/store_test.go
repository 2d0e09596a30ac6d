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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigentincubator/sales-ctonet/model"
)

func TestNewStore(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		records []model.HardwareRecord
		err     error
	}{
		"ok": {
			records: fixtureRecords(),
		},
		"empty store": {
			records: []model.HardwareRecord{},
		},
		"duplicate name": {
			records: []model.HardwareRecord{
				{Name: "A", Category: "Routers"},
				{Name: "A", Category: "Switches"},
			},
			err: ErrDuplicateName,
		},
		"empty name": {
			records: []model.HardwareRecord{
				{Name: "  ", Category: "Routers"},
			},
			err: ErrEmptyName,
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			s, err := NewStore(tc.records)
			if tc.err != nil {
				assert.Nil(t, s)
				assert.Equal(t, tc.err, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.records), s.Len())
			assert.NotEmpty(t, s.Revision())
		})
	}
}

func TestStoreSchemaIsolation(t *testing.T) {
	t.Parallel()

	s := fixtureStore(t)
	mobile := s.Schema("Mobile Routers")
	mobile["Ports"] = map[string]struct{}{"8": {}}
	mobile[AttrModemGroup]["Triple"] = struct{}{}
	delete(mobile, Attr5G)

	again := s.Schema("Mobile Routers")
	assert.False(t, again.Has("Ports"))
	assert.False(t, again.Permits(AttrModemGroup, "Triple"))
	assert.True(t, again.Has(Attr5G))

	fs := Normalize(s, url.Values{
		"category":     {"Mobile Routers"},
		AttrModemGroup: {"Triple"},
	}, nil)
	assert.Empty(t, fs.Selections)
}

func TestStoreIndex(t *testing.T) {
	t.Parallel()

	s := fixtureStore(t)
	assert.Equal(t,
		[]string{"Mobile Routers", "SD-WAN Routers", "Switches"},
		s.Categories())
	assert.True(t, s.HasCategory("Switches"))
	assert.False(t, s.HasCategory("switches"))
	assert.False(t, s.HasCategory(""))

	assert.Equal(t,
		[]string{"MAX BR1 Mini", "MAX Transit Duo", "HD2 Dome", "balance 20X", "FlexSwitch 8"},
		names(s.Records()))

	rec, ok := s.Record("HD2 Dome")
	require.True(t, ok)
	assert.Equal(t, "Mobile Routers", rec.Category)
	_, ok = s.Record("HD4")
	assert.False(t, ok)

	mobile := s.Schema("Mobile Routers")
	assert.Equal(t, []string{Attr5G, AttrModemGroup, AttrSeries}, mobile.Names())
	assert.True(t, mobile.Permits(AttrModemGroup, "Multi"))
	assert.False(t, mobile.Permits(AttrModemGroup, "None"))
	assert.False(t, mobile.Has("Ports"))

	all := s.Schema("")
	assert.True(t, all.Has("Ports"))
	assert.True(t, all.Permits(AttrSeries, "Balance"))
	assert.Equal(t, all, s.Schema("Printers"))
}

func TestStoreIsolation(t *testing.T) {
	t.Parallel()

	records := fixtureRecords()
	s, err := NewStore(records)
	require.NoError(t, err)

	records[0].Attributes[Attr5G] = "No"
	records[0].Metrics[model.MetricRouterThroughput] = 1

	rec, _ := s.Record("MAX BR1 Mini")
	assert.Equal(t, "Yes", rec.Attributes[Attr5G])
	assert.Equal(t, 500.0, rec.Metrics[model.MetricRouterThroughput])
}

func TestStoreRevision(t *testing.T) {
	t.Parallel()

	a := fixtureStore(t)
	b := fixtureStore(t)
	assert.Equal(t, a.Revision(), b.Revision())

	records := fixtureRecords()
	records[0].Attributes[AttrSeries] = "MAX Mini"
	c, err := NewStore(records)
	require.NoError(t, err)
	assert.NotEqual(t, a.Revision(), c.Revision())
}
