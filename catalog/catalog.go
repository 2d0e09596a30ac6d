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

	"github.com/aigentincubator/sales-ctonet/model"
)

const DefaultMaxFacetAttributes = 12

type Options struct {
	QuickPicks  []QuickPick
	ClientTiers []string

	// MaxFacetAttributes caps the number of attribute facets; zero
	// disables the cap.
	MaxFacetAttributes *int
}

func NewOptions(opts ...*Options) *Options {
	maxAttrs := DefaultMaxFacetAttributes
	ret := &Options{
		QuickPicks:         DefaultQuickPicks,
		ClientTiers:        DefaultClientTiers,
		MaxFacetAttributes: &maxAttrs,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.QuickPicks != nil {
			ret.QuickPicks = opt.QuickPicks
		}
		if opt.ClientTiers != nil {
			ret.ClientTiers = opt.ClientTiers
		}
		if opt.MaxFacetAttributes != nil {
			ret.MaxFacetAttributes = opt.MaxFacetAttributes
		}
	}
	return ret
}

func (opts *Options) SetQuickPicks(picks []QuickPick) *Options {
	opts.QuickPicks = picks
	return opts
}

func (opts *Options) SetClientTiers(tiers []string) *Options {
	opts.ClientTiers = tiers
	return opts
}

func (opts *Options) SetMaxFacetAttributes(max int) *Options {
	opts.MaxFacetAttributes = &max
	return opts
}

// Catalog answers view requests against one immutable Store.
type Catalog struct {
	store *Store
	opts  *Options
}

func New(store *Store, opts ...*Options) *Catalog {
	return &Catalog{
		store: store,
		opts:  NewOptions(opts...),
	}
}

func (c *Catalog) Store() *Store {
	return c.store
}

func (c *Catalog) QuickPicks() []QuickPick {
	return c.opts.QuickPicks
}

func (c *Catalog) ClientTiers() []string {
	return c.opts.ClientTiers
}

// View is the outcome of one request.
type View struct {
	Revision   string                 `json:"revision"`
	Filter     model.FilterSpec       `json:"filter"`
	Results    []model.HardwareRecord `json:"results"`
	Facets     Facets                 `json:"facets"`
	Embed      bool                   `json:"embed"`
	ClientTier string                 `json:"client_category,omitempty"`
}

// Normalize builds the FilterSpec for params.
func (c *Catalog) Normalize(params url.Values) model.FilterSpec {
	return Normalize(c.store, params, c.opts.QuickPicks)
}

// ComputeView normalizes params, filters and sorts the store and summarizes
// the facets. It is a pure function of the store and params.
func (c *Catalog) ComputeView(params url.Values) View {
	spec := c.Normalize(params)
	results := Sort(Filter(c.store.Records(), spec), spec.Sort)
	return View{
		Revision: c.store.Revision(),
		Filter:   spec,
		Results:  results,
		Facets: Summarize(c.store, spec, SummarizeOptions{
			QuickPicks:    c.opts.QuickPicks,
			MaxAttributes: *c.opts.MaxFacetAttributes,
		}),
		Embed:      ParseEmbed(params),
		ClientTier: ParseClientTier(params, c.opts.ClientTiers),
	}
}
