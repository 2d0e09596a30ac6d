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
	"strconv"

	"github.com/aigentincubator/sales-ctonet/model"
)

// Links builds the shareable URLs of the next possible views. All state
// lives in the query string, so each link is a complete view description.
type Links struct {
	base  string
	picks []QuickPick
	tiers []string
}

func NewLinks(base string, c *Catalog) *Links {
	return &Links{
		base:  base,
		picks: c.opts.QuickPicks,
		tiers: c.opts.ClientTiers,
	}
}

// Encode is the canonical query of a view state. Normalizing the result
// yields spec again.
func (l *Links) Encode(spec model.FilterSpec, embed bool, tier string) url.Values {
	q := url.Values{}
	if spec.Category != "" {
		q.Set(ParamCategory, spec.Category)
	}
	for attr, value := range spec.Selections {
		q.Set(attr, value)
	}
	for _, mp := range MetricParams {
		if min, ok := spec.Minimums[mp.Metric]; ok {
			q.Set(mp.Names[0], strconv.FormatFloat(min, 'f', -1, 64))
		}
	}
	if spec.Sort != "" && spec.Sort != model.SortName {
		q.Set(ParamSort, string(spec.Sort))
	}
	if embed {
		q.Set(ParamEmbed, "1")
	}
	if tier != "" && len(l.tiers) > 0 && tier != l.tiers[0] {
		q.Set(ParamClientTier, tier)
	}
	return q
}

func (l *Links) url(spec model.FilterSpec, embed bool, tier string) string {
	q := l.Encode(spec, embed, tier)
	if len(q) == 0 {
		return l.base
	}
	return l.base + "?" + q.Encode()
}

// Self is the URL of the view itself.
func (l *Links) Self(v View) string {
	return l.url(v.Filter, v.Embed, v.ClientTier)
}

// Clear drops every selection.
func (l *Links) Clear() string {
	return l.base
}

// Category switches category; attribute selections are dropped since they
// may not exist in the other category.
func (l *Links) Category(v View, category string) string {
	spec := v.Filter.WithoutSelections()
	spec.Category = category
	return l.url(spec, v.Embed, v.ClientTier)
}

// Toggle selects attr=value, or deselects it when already selected.
// Selecting a quick-pick attribute clears the other quick-pick attributes of
// the category.
func (l *Links) Toggle(v View, attr, value string) string {
	spec := v.Filter
	if current, ok := spec.Selected(attr); ok && current == value {
		spec = spec.Without(attr)
	} else {
		exclusive := quickPickAttributes(l.picks, spec.Category)
		if contains(exclusive, attr) {
			spec = spec.Without(exclusive...)
		}
		spec = spec.With(attr, value)
	}
	return l.url(spec, v.Embed, v.ClientTier)
}

// Sort changes the sort key.
func (l *Links) Sort(v View, key model.SortKey) string {
	spec := v.Filter.Clone()
	spec.Sort = key
	return l.url(spec, v.Embed, v.ClientTier)
}

// WithoutMinimum drops the minimum on metric m.
func (l *Links) WithoutMinimum(v View, m model.Metric) string {
	spec := v.Filter.Clone()
	delete(spec.Minimums, m)
	return l.url(spec, v.Embed, v.ClientTier)
}

// ClientTiers lists the pricing tiers links may switch to.
func (l *Links) ClientTiers() []string {
	return l.tiers
}

// ClientTier changes the pricing tier.
func (l *Links) ClientTier(v View, tier string) string {
	return l.url(v.Filter, v.Embed, tier)
}
