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

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := fixtureStore(t)
	opts := SummarizeOptions{
		QuickPicks:    DefaultQuickPicks,
		MaxAttributes: DefaultMaxFacetAttributes,
	}
	testCases := map[string]struct {
		spec     model.FilterSpec
		expected Facets
	}{
		"no selection": {
			spec: model.NewFilterSpec(),
			expected: Facets{
				Categories: []CategoryFacet{
					{Name: "Mobile Routers", Count: 3},
					{Name: "SD-WAN Routers", Count: 1},
					{Name: "Switches", Count: 1},
				},
				Attributes: []AttributeFacet{
					{Name: AttrModemGroup, Values: []ValueFacet{
						{Value: "Multi", Count: 2},
						{Value: "Single", Count: 1},
					}},
					{Name: Attr5G, Values: []ValueFacet{
						{Value: "No", Count: 1},
						{Value: "Yes", Count: 2},
					}},
					{Name: "Ports", Values: []ValueFacet{
						{Value: "5", Count: 1},
						{Value: "8", Count: 1},
					}},
				},
				QuickPicks: []QuickPickFacet{},
			},
		},
		"quick-pick attribute selected": {
			spec: spec("Mobile Routers",
				map[string]string{AttrModemGroup: "Multi"}, nil, ""),
			expected: Facets{
				Categories: []CategoryFacet{
					{Name: "Mobile Routers", Count: 3, Selected: true},
					{Name: "SD-WAN Routers", Count: 1},
					{Name: "Switches", Count: 1},
				},
				Subcategories: &AttributeFacet{
					Name: AttrSeries,
					Values: []ValueFacet{
						{Value: "HD", Count: 1},
						{Value: "MAX", Count: 1},
					},
				},
				Attributes: []AttributeFacet{
					{Name: AttrModemGroup, Values: []ValueFacet{
						{Value: "Multi", Count: 2, Selected: true},
						{Value: "Single", Count: 1},
					}},
					{Name: Attr5G, Values: []ValueFacet{
						{Value: "No", Count: 1},
						{Value: "Yes", Count: 2},
					}},
				},
				QuickPicks: []QuickPickFacet{
					{QuickPick: DefaultQuickPicks[0], Count: 1},
					{QuickPick: DefaultQuickPicks[1], Count: 2, Active: true},
					{QuickPick: DefaultQuickPicks[2], Count: 2},
				},
			},
		},
		"minimums narrow categories": {
			spec: spec("", nil, map[model.Metric]float64{
				model.MetricRouterThroughput: 900,
			}, ""),
			expected: Facets{
				Categories: []CategoryFacet{
					{Name: "Mobile Routers", Count: 1},
					{Name: "SD-WAN Routers", Count: 1},
				},
				Attributes: []AttributeFacet{
					{Name: AttrModemGroup, Values: []ValueFacet{
						{Value: "Multi", Count: 1},
					}},
					{Name: Attr5G, Values: []ValueFacet{
						{Value: "Yes", Count: 1},
					}},
					{Name: "Ports", Values: []ValueFacet{
						{Value: "5", Count: 1},
					}},
				},
				QuickPicks: []QuickPickFacet{},
			},
		},
		"empty candidate set": {
			spec: spec("Switches", nil, map[model.Metric]float64{
				model.MetricUsers: 1,
			}, ""),
			expected: Facets{
				Categories: []CategoryFacet{
					{Name: "Mobile Routers", Count: 2},
					{Name: "SD-WAN Routers", Count: 1},
				},
				Attributes: []AttributeFacet{},
				QuickPicks: []QuickPickFacet{},
			},
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, Summarize(s, tc.spec, opts))
		})
	}
}

func TestSummarizeMaxAttributes(t *testing.T) {
	t.Parallel()

	s := fixtureStore(t)
	facets := Summarize(s,
		spec("", map[string]string{"Ports": "8"}, nil, ""),
		SummarizeOptions{MaxAttributes: 1})

	// Modem Group makes the cut but no record with 8 ports has one; the
	// selected Ports attribute is kept beyond the cap.
	assert.Equal(t, []AttributeFacet{
		{Name: "Ports", Values: []ValueFacet{
			{Value: "5", Count: 1},
			{Value: "8", Count: 1, Selected: true},
		}},
	}, facets.Attributes)
}

func TestSummarizeSoundness(t *testing.T) {
	t.Parallel()

	s := fixtureStore(t)
	specs := []model.FilterSpec{
		model.NewFilterSpec(),
		spec("Mobile Routers", nil, nil, ""),
		spec("Mobile Routers", map[string]string{Attr5G: "Yes"}, nil, ""),
		spec("Mobile Routers", map[string]string{AttrSeries: "MAX"}, map[model.Metric]float64{
			model.MetricUsers: 100,
		}, ""),
		spec("", map[string]string{"Ports": "5"}, nil, ""),
		spec("Mobile Routers", nil, map[model.Metric]float64{
			model.MetricRouterThroughput: 900,
		}, ""),
		spec("Mobile Routers", map[string]string{AttrModemGroup: "Single"}, map[model.Metric]float64{
			model.MetricUsers: 100,
		}, ""),
	}
	for _, fs := range specs {
		exclusive := quickPickAttributes(DefaultQuickPicks, fs.Category)
		facets := Summarize(s, fs, SummarizeOptions{QuickPicks: DefaultQuickPicks})

		attrs := facets.Attributes
		if facets.Subcategories != nil {
			attrs = append(attrs, *facets.Subcategories)
		}
		for _, f := range attrs {
			for _, v := range f.Values {
				target := fs.Without(f.Name)
				if contains(exclusive, f.Name) {
					target = target.Without(exclusive...)
				}
				target = target.With(f.Name, v.Value)
				assert.Positive(t, v.Count)
				assert.Equal(t, Count(s.Records(), target), v.Count,
					"%s=%s under %+v", f.Name, v.Value, fs)
			}
		}
		for _, c := range facets.Categories {
			target := fs.WithoutSelections()
			target.Category = c.Name
			assert.Positive(t, c.Count)
			assert.Equal(t, Count(s.Records(), target), c.Count)
		}
		for _, qp := range facets.QuickPicks {
			target := fs.Without(exclusive...).With(qp.Attribute, qp.Value)
			assert.Positive(t, qp.Count, "%s under %+v", qp.ID, fs)
			assert.Equal(t, Count(s.Records(), target), qp.Count)
		}
	}
}

func TestSummarizeSkipsEmptyQuickPicks(t *testing.T) {
	t.Parallel()

	facets := Summarize(fixtureStore(t),
		spec("Mobile Routers", nil, map[model.Metric]float64{
			model.MetricRouterThroughput: 900,
		}, ""),
		SummarizeOptions{QuickPicks: DefaultQuickPicks})

	// Only HD2 Dome (multi modem, 5G) reaches 900 Mbps.
	assert.Equal(t, []QuickPickFacet{
		{QuickPick: DefaultQuickPicks[1], Count: 1},
		{QuickPick: DefaultQuickPicks[2], Count: 1},
	}, facets.QuickPicks)
}
