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
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/aigentincubator/sales-ctonet/model"
)

var (
	ErrDuplicateName = errors.New("duplicate record name")
	ErrEmptyName     = errors.New("record name is empty")
)

// revisionNamespace seeds the name-based revision UUIDs.
var revisionNamespace = uuid.MustParse("5b8ad1e6-7c37-4f0c-9d0e-3f0d2a6f1c42")

// Schema maps attribute names to the set of values they take.
type Schema map[string]map[string]struct{}

// Has reports whether attr is known.
func (s Schema) Has(attr string) bool {
	_, ok := s[attr]
	return ok
}

// Permits reports whether value is one of the values seen for attr.
func (s Schema) Permits(attr, value string) bool {
	values, ok := s[attr]
	if !ok {
		return false
	}
	_, ok = values[value]
	return ok
}

// Names returns the attribute names in ascending order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s Schema) clone() Schema {
	out := make(Schema, len(s))
	for attr, values := range s {
		cp := make(map[string]struct{}, len(values))
		for v := range values {
			cp[v] = struct{}{}
		}
		out[attr] = cp
	}
	return out
}

func (s Schema) add(attr, value string) {
	values, ok := s[attr]
	if !ok {
		values = map[string]struct{}{}
		s[attr] = values
	}
	values[value] = struct{}{}
}

// Store is the immutable in-memory record collection. It is safe for
// concurrent use since nothing mutates it after NewStore returns.
type Store struct {
	records    []model.HardwareRecord
	byName     map[string]int
	categories []string
	schemas    map[string]Schema
	all        Schema
	revision   string
}

// NewStore indexes records, keeping their order. Names must be unique and
// non-empty.
func NewStore(records []model.HardwareRecord) (*Store, error) {
	s := &Store{
		records: make([]model.HardwareRecord, len(records)),
		byName:  make(map[string]int, len(records)),
		schemas: map[string]Schema{},
		all:     Schema{},
	}
	for i, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			return nil, errors.Wrapf(ErrEmptyName, "record #%d", i)
		}
		if _, dup := s.byName[rec.Name]; dup {
			return nil, errors.Wrap(ErrDuplicateName, rec.Name)
		}
		s.byName[rec.Name] = i
		s.records[i] = copyRecord(rec)

		schema, ok := s.schemas[rec.Category]
		if !ok {
			schema = Schema{}
			s.schemas[rec.Category] = schema
			s.categories = append(s.categories, rec.Category)
		}
		for attr, value := range rec.Attributes {
			schema.add(attr, value)
			s.all.add(attr, value)
		}
	}
	b, err := json.Marshal(s.records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute store revision")
	}
	s.revision = uuid.NewSHA1(revisionNamespace, b).String()
	return s, nil
}

func copyRecord(rec model.HardwareRecord) model.HardwareRecord {
	out := rec
	out.Attributes = make(map[string]string, len(rec.Attributes))
	for k, v := range rec.Attributes {
		out.Attributes[k] = v
	}
	if rec.Metrics != nil {
		out.Metrics = make(map[model.Metric]float64, len(rec.Metrics))
		for k, v := range rec.Metrics {
			out.Metrics[k] = v
		}
	}
	if rec.Prices != nil {
		out.Prices = make(map[string]float64, len(rec.Prices))
		for k, v := range rec.Prices {
			out.Prices[k] = v
		}
	}
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns the records in store order. Callers must not modify the
// returned records.
func (s *Store) Records() []model.HardwareRecord {
	return s.records[:len(s.records):len(s.records)]
}

// Record looks a record up by name.
func (s *Store) Record(name string) (model.HardwareRecord, bool) {
	i, ok := s.byName[name]
	if !ok {
		return model.HardwareRecord{}, false
	}
	return s.records[i], true
}

// Categories returns the categories in first-seen order.
func (s *Store) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

func (s *Store) HasCategory(category string) bool {
	_, ok := s.schemas[category]
	return ok
}

// Schema returns a copy of the attribute schema of category, or of the
// whole store when category is empty or unknown.
func (s *Store) Schema(category string) Schema {
	return s.schema(category).clone()
}

// schema is the shared, read-only schema used on the request path.
func (s *Store) schema(category string) Schema {
	if schema, ok := s.schemas[category]; ok {
		return schema
	}
	return s.all
}

// Revision identifies the store content.
func (s *Store) Revision() string {
	return s.revision
}
