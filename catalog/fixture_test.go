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

	"github.com/stretchr/testify/require"

	"github.com/aigentincubator/sales-ctonet/model"
)

func metrics(rt, sf, users float64) map[model.Metric]float64 {
	m := map[model.Metric]float64{}
	if rt >= 0 {
		m[model.MetricRouterThroughput] = rt
	}
	if sf >= 0 {
		m[model.MetricSpeedFusion] = sf
	}
	if users >= 0 {
		m[model.MetricUsers] = users
	}
	return m
}

// fixtureRecords spans three categories; -1 marks an unknown metric.
func fixtureRecords() []model.HardwareRecord {
	return []model.HardwareRecord{
		{
			Name:     "MAX BR1 Mini",
			Category: "Mobile Routers",
			Attributes: map[string]string{
				Attr5G:         "Yes",
				AttrModemGroup: "Single",
				AttrSeries:     "MAX",
			},
			Metrics: metrics(500, 100, 60),
		},
		{
			Name:     "MAX Transit Duo",
			Category: "Mobile Routers",
			Attributes: map[string]string{
				Attr5G:         "No",
				AttrModemGroup: "Multi",
				AttrSeries:     "MAX",
			},
			Metrics: metrics(800, -1, 150),
		},
		{
			Name:     "HD2 Dome",
			Category: "Mobile Routers",
			Attributes: map[string]string{
				Attr5G:         "Yes",
				AttrModemGroup: "Multi",
				AttrSeries:     "HD",
			},
			Metrics: metrics(1000, 400, -1),
		},
		{
			Name:     "balance 20X",
			Category: "SD-WAN Routers",
			Attributes: map[string]string{
				AttrSeries: "Balance",
				"Ports":    "5",
			},
			Metrics: metrics(900, 100, 60),
		},
		{
			Name:     "FlexSwitch 8",
			Category: "Switches",
			Attributes: map[string]string{
				"Ports": "8",
			},
			Metrics: metrics(-1, -1, -1),
		},
	}
}

func fixtureStore(t *testing.T) *Store {
	s, err := NewStore(fixtureRecords())
	require.NoError(t, err)
	return s
}

func fixtureCatalog(t *testing.T) *Catalog {
	return New(fixtureStore(t))
}

func names(records []model.HardwareRecord) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Name
	}
	return out
}
