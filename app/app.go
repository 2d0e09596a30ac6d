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

package app

import (
	"context"
	"net/url"

	"github.com/pkg/errors"

	"github.com/mendersoftware/go-lib-micro/log"

	"github.com/aigentincubator/sales-ctonet/catalog"
	"github.com/aigentincubator/sales-ctonet/dataset"
	"github.com/aigentincubator/sales-ctonet/model"
	"github.com/aigentincubator/sales-ctonet/store"
)

// Errors expected from App interface
var (
	ErrDataUnavailable = errors.New("Catalog data is unavailable")
	ErrRecordNotFound  = errors.New("Record not found")
)

// CategorySummary is one category with its record count.
type CategorySummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type App interface {
	HealthCheck(ctx context.Context) error

	// catalog
	ComputeView(ctx context.Context, params url.Values) catalog.View
	GetRecord(ctx context.Context, name string) (*model.HardwareRecord, error)
	ListCategories(ctx context.Context) []CategorySummary

	// Links returns the URL builder for views served under base.
	Links(base string) *catalog.Links
}

type Catalog struct {
	db      store.DataStore
	catalog *catalog.Catalog
}

// Load reads the dataset from db and builds the immutable catalog. Any
// failure is reported as ErrDataUnavailable.
func Load(ctx context.Context, db store.DataStore, opts ...*catalog.Options) (*Catalog, error) {
	l := log.FromContext(ctx)
	opt := catalog.NewOptions(opts...)

	raw, err := db.LoadRecords(ctx)
	if err != nil {
		l.Errorf("failed to load dataset: %s", err)
		return nil, errors.Wrap(ErrDataUnavailable, err.Error())
	}
	records, err := dataset.Prepare(raw, opt.ClientTiers)
	if err != nil {
		l.Errorf("invalid dataset: %s", err)
		return nil, errors.Wrap(ErrDataUnavailable, err.Error())
	}
	s, err := catalog.NewStore(records)
	if err != nil {
		l.Errorf("failed to index dataset: %s", err)
		return nil, errors.Wrap(ErrDataUnavailable, err.Error())
	}
	l.Infof("catalog ready: %d records in %d categories (revision %s)",
		s.Len(), len(s.Categories()), s.Revision())

	return &Catalog{
		db:      db,
		catalog: catalog.New(s, opt),
	}, nil
}

// Store exposes the loaded records.
func (c *Catalog) Store() *catalog.Store {
	return c.catalog.Store()
}

func (c *Catalog) HealthCheck(ctx context.Context) error {
	if err := c.db.Ping(ctx); err != nil {
		return errors.Wrap(err, "error reaching the dataset source")
	}
	return nil
}

func (c *Catalog) ComputeView(ctx context.Context, params url.Values) catalog.View {
	view := c.catalog.ComputeView(params)
	log.FromContext(ctx).Debugf("view %q: %d results",
		view.Filter.Category, len(view.Results))
	return view
}

func (c *Catalog) GetRecord(ctx context.Context, name string) (*model.HardwareRecord, error) {
	rec, ok := c.catalog.Store().Record(name)
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &rec, nil
}

func (c *Catalog) ListCategories(ctx context.Context) []CategorySummary {
	s := c.catalog.Store()
	counts := map[string]int{}
	for _, rec := range s.Records() {
		counts[rec.Category]++
	}
	categories := s.Categories()
	out := make([]CategorySummary, len(categories))
	for i, name := range categories {
		out[i] = CategorySummary{Name: name, Count: counts[name]}
	}
	return out
}

func (c *Catalog) Links(base string) *catalog.Links {
	return catalog.NewLinks(base, c.catalog)
}
