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

package http

import (
	"github.com/aigentincubator/sales-ctonet/catalog"
	"github.com/aigentincubator/sales-ctonet/model"
)

var sortLabels = map[model.SortKey]string{
	model.SortName:             "Name (A-Z)",
	model.SortRouterThroughput: "Router Throughput",
	model.SortSpeedFusion:      "SpeedFusion Throughput",
	model.SortUsers:            "Recommended Users",
}

type categoryChip struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
	URL      string `json:"url"`
}

type valueChip struct {
	Value    string `json:"value"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
	URL      string `json:"url"`
}

type attributeResponse struct {
	Name          string      `json:"name"`
	SelectedCount int         `json:"selected_count"`
	OptionsCount  int         `json:"options_count"`
	Values        []valueChip `json:"values"`
}

type quickPickChip struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
	Count     int    `json:"count"`
	Active    bool   `json:"active"`
	URL       string `json:"url"`
}

type sortChip struct {
	Key      model.SortKey `json:"key"`
	Label    string        `json:"label"`
	Selected bool          `json:"selected"`
	URL      string        `json:"url"`
}

type tierChip struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
	URL      string `json:"url"`
}

// minimumChip is an active numeric threshold; URL removes it.
type minimumChip struct {
	Param string  `json:"param"`
	Label string  `json:"label"`
	Unit  string  `json:"unit,omitempty"`
	Value float64 `json:"value"`
	URL   string  `json:"url"`
}

type linksResponse struct {
	Self  string `json:"self"`
	Clear string `json:"clear"`
}

type viewResponse struct {
	Revision         string              `json:"revision"`
	Category         string              `json:"category,omitempty"`
	ClientCategory   string              `json:"client_category,omitempty"`
	Embed            bool                `json:"embed"`
	Filter           model.FilterSpec    `json:"filter"`
	Count            int                 `json:"count"`
	Results          []cardResponse      `json:"results"`
	Categories       []categoryChip      `json:"categories"`
	Subcategories    *attributeResponse  `json:"subcategories,omitempty"`
	Attributes       []attributeResponse `json:"attributes"`
	QuickPicks       []quickPickChip     `json:"quick_picks"`
	Sorts            []sortChip          `json:"sorts"`
	ClientCategories []tierChip          `json:"client_categories"`
	Minimums         []minimumChip       `json:"minimums"`
	SelectionsText   string              `json:"selections_text"`
	Links            linksResponse       `json:"links"`
}

func newAttributeResponse(
	v catalog.View,
	links *catalog.Links,
	f catalog.AttributeFacet,
) attributeResponse {
	resp := attributeResponse{
		Name:         f.Name,
		OptionsCount: len(f.Values),
		Values:       make([]valueChip, len(f.Values)),
	}
	for i, value := range f.Values {
		if value.Selected {
			resp.SelectedCount++
		}
		resp.Values[i] = valueChip{
			Value:    value.Value,
			Count:    value.Count,
			Selected: value.Selected,
			URL:      links.Toggle(v, f.Name, value.Value),
		}
	}
	return resp
}

// newViewResponse attaches the navigation URLs to a computed view.
func newViewResponse(v catalog.View, links *catalog.Links) viewResponse {
	resp := viewResponse{
		Revision:         v.Revision,
		Category:         v.Filter.Category,
		ClientCategory:   v.ClientTier,
		Embed:            v.Embed,
		Filter:           v.Filter,
		Count:            len(v.Results),
		Results:          make([]cardResponse, len(v.Results)),
		Categories:       make([]categoryChip, len(v.Facets.Categories)),
		Attributes:       make([]attributeResponse, len(v.Facets.Attributes)),
		QuickPicks:       make([]quickPickChip, len(v.Facets.QuickPicks)),
		Sorts:            make([]sortChip, len(catalog.SortKeys)),
		ClientCategories: make([]tierChip, len(links.ClientTiers())),
		Minimums:         []minimumChip{},
		SelectionsText:   catalog.SelectionsText(v),
		Links: linksResponse{
			Self:  links.Self(v),
			Clear: links.Clear(),
		},
	}
	for i, rec := range v.Results {
		resp.Results[i] = newCard(rec, v.ClientTier)
	}
	for i, c := range v.Facets.Categories {
		resp.Categories[i] = categoryChip{
			Name:     c.Name,
			Count:    c.Count,
			Selected: c.Selected,
			URL:      links.Category(v, c.Name),
		}
	}
	if v.Facets.Subcategories != nil {
		sub := newAttributeResponse(v, links, *v.Facets.Subcategories)
		resp.Subcategories = &sub
	}
	for i, f := range v.Facets.Attributes {
		resp.Attributes[i] = newAttributeResponse(v, links, f)
	}
	for i, qp := range v.Facets.QuickPicks {
		resp.QuickPicks[i] = quickPickChip{
			ID:        qp.ID,
			Label:     qp.Label,
			Attribute: qp.Attribute,
			Value:     qp.Value,
			Count:     qp.Count,
			Active:    qp.Active,
			URL:       links.Toggle(v, qp.Attribute, qp.Value),
		}
	}
	for i, key := range catalog.SortKeys {
		resp.Sorts[i] = sortChip{
			Key:      key,
			Label:    sortLabels[key],
			Selected: key == v.Filter.Sort,
			URL:      links.Sort(v, key),
		}
	}
	for i, tier := range links.ClientTiers() {
		resp.ClientCategories[i] = tierChip{
			Name:     tier,
			Selected: tier == v.ClientTier,
			URL:      links.ClientTier(v, tier),
		}
	}
	for _, mp := range catalog.MetricParams {
		if min, ok := v.Filter.Minimums[mp.Metric]; ok {
			resp.Minimums = append(resp.Minimums, minimumChip{
				Param: mp.Names[0],
				Label: mp.Label,
				Unit:  mp.Unit,
				Value: min,
				URL:   links.WithoutMinimum(v, mp.Metric),
			})
		}
	}
	return resp
}
