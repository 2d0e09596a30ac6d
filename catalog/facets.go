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
	"sort"

	"github.com/aigentincubator/sales-ctonet/model"
)

type CategoryFacet struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
}

type ValueFacet struct {
	Value    string `json:"value"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
}

type AttributeFacet struct {
	Name   string       `json:"name"`
	Values []ValueFacet `json:"values"`
}

// Selected returns the selected value of the facet, if any.
func (f AttributeFacet) Selected() (string, bool) {
	for _, v := range f.Values {
		if v.Selected {
			return v.Value, true
		}
	}
	return "", false
}

type QuickPickFacet struct {
	QuickPick
	Count  int  `json:"count"`
	Active bool `json:"active"`
}

// Facets lists the choices that still lead to results.
type Facets struct {
	Categories    []CategoryFacet  `json:"categories"`
	Subcategories *AttributeFacet  `json:"subcategories,omitempty"`
	Attributes    []AttributeFacet `json:"attributes"`
	QuickPicks    []QuickPickFacet `json:"quick_picks"`
}

// SummarizeOptions tunes Summarize.
type SummarizeOptions struct {
	QuickPicks []QuickPick
	// MaxAttributes caps the attribute facets; selected attributes are
	// always included. Zero means no cap.
	MaxAttributes int
}

// Summarize computes the facets for spec.
//
// Each attribute facet is evaluated against the records matching every
// constraint except that attribute, so a value's count is the number of
// results selecting it would give. Category facets only honour the metric
// minimums since switching category clears attribute selections. Values and
// quick picks with no matching record are never reported.
func Summarize(store *Store, spec model.FilterSpec, opts SummarizeOptions) Facets {
	facets := Facets{
		Categories: summarizeCategories(store, spec),
		Attributes: []AttributeFacet{},
		QuickPicks: []QuickPickFacet{},
	}
	schema := store.schema(spec.Category)
	exclusive := quickPickAttributes(opts.QuickPicks, spec.Category)

	if spec.Category != "" && schema.Has(AttrSeries) {
		if f, ok := summarizeAttribute(store, spec, AttrSeries, exclusive); ok {
			facets.Subcategories = &f
		}
	}
	for _, attr := range attributeOrder(store, spec, opts.MaxAttributes) {
		if f, ok := summarizeAttribute(store, spec, attr, exclusive); ok {
			facets.Attributes = append(facets.Attributes, f)
		}
	}
	for _, pick := range opts.QuickPicks {
		if pick.Category != spec.Category || !schema.Has(pick.Attribute) {
			continue
		}
		target := spec.Without(exclusive...).With(pick.Attribute, pick.Value)
		n := Count(store.Records(), target)
		if n == 0 {
			continue
		}
		selected, _ := spec.Selected(pick.Attribute)
		facets.QuickPicks = append(facets.QuickPicks, QuickPickFacet{
			QuickPick: pick,
			Count:     n,
			Active:    selected == pick.Value,
		})
	}
	return facets
}

func summarizeCategories(store *Store, spec model.FilterSpec) []CategoryFacet {
	base := spec.WithoutSelections()
	base.Category = ""
	counts := map[string]int{}
	for _, rec := range Filter(store.Records(), base) {
		counts[rec.Category]++
	}
	out := []CategoryFacet{}
	for _, category := range store.Categories() {
		if n := counts[category]; n > 0 {
			out = append(out, CategoryFacet{
				Name:     category,
				Count:    n,
				Selected: category == spec.Category,
			})
		}
	}
	return out
}

// quickPickAttributes returns the attributes of the quick picks of category.
func quickPickAttributes(picks []QuickPick, category string) []string {
	var attrs []string
	seen := map[string]bool{}
	for _, pick := range picks {
		if pick.Category == category && !seen[pick.Attribute] {
			seen[pick.Attribute] = true
			attrs = append(attrs, pick.Attribute)
		}
	}
	return attrs
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func summarizeAttribute(
	store *Store,
	spec model.FilterSpec,
	attr string,
	exclusive []string,
) (AttributeFacet, bool) {
	relaxed := spec.Without(attr)
	if contains(exclusive, attr) {
		relaxed = relaxed.Without(exclusive...)
	}
	counts := map[string]int{}
	for _, rec := range Filter(store.Records(), relaxed) {
		if v, ok := rec.Attribute(attr); ok {
			counts[v]++
		}
	}
	if len(counts) == 0 {
		return AttributeFacet{}, false
	}
	selected, _ := spec.Selected(attr)
	facet := AttributeFacet{
		Name:   attr,
		Values: make([]ValueFacet, 0, len(counts)),
	}
	for value, n := range counts {
		facet.Values = append(facet.Values, ValueFacet{
			Value:    value,
			Count:    n,
			Selected: value == selected,
		})
	}
	sort.Slice(facet.Values, func(i, j int) bool {
		return lessName(facet.Values[i].Value, facet.Values[j].Value)
	})
	return facet, true
}

// attributeOrder picks the attributes shown as facets: preferred names
// first, then the most discriminating ones. Attributes with a single value
// across the scope are skipped unless preferred.
func attributeOrder(store *Store, spec model.FilterSpec, max int) []string {
	schema := store.schema(spec.Category)
	var order []string
	for _, attr := range PreferredAttributes {
		if schema.Has(attr) {
			order = append(order, attr)
		}
	}
	type salience struct {
		name     string
		distinct int
	}
	var ranked []salience
	for name, values := range schema {
		if name == AttrSeries || len(values) <= 1 || contains(order, name) {
			continue
		}
		ranked = append(ranked, salience{name: name, distinct: len(values)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].distinct != ranked[j].distinct {
			return ranked[i].distinct > ranked[j].distinct
		}
		return ranked[i].name < ranked[j].name
	})
	for _, r := range ranked {
		order = append(order, r.name)
	}
	if max > 0 && len(order) > max {
		order = order[:max]
	}
	for _, attr := range sortedKeys(spec.Selections) {
		if attr == AttrSeries && spec.Category != "" {
			continue
		}
		if !contains(order, attr) {
			order = append(order, attr)
		}
	}
	return order
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
