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

package model

// SortKey selects the result ordering.
type SortKey string

const (
	SortName             SortKey = "Name"
	SortRouterThroughput SortKey = "RouterThroughput"
	SortSpeedFusion      SortKey = "SpeedFusion"
	SortUsers            SortKey = "Users"
)

// Metric returns the metric a numeric sort key orders by.
func (k SortKey) Metric() (Metric, bool) {
	switch k {
	case SortRouterThroughput:
		return MetricRouterThroughput, true
	case SortSpeedFusion:
		return MetricSpeedFusion, true
	case SortUsers:
		return MetricUsers, true
	}
	return "", false
}

// FilterSpec is the typed form of one request's selections. It is built
// per request and never stored.
type FilterSpec struct {
	// Category is the selected category; empty means all categories.
	Category string `json:"category,omitempty"`

	// Selections maps attribute name to the single required value.
	Selections map[string]string `json:"selections"`

	// Minimums maps a metric to its inclusive lower bound.
	Minimums map[Metric]float64 `json:"minimums"`

	Sort SortKey `json:"sort"`
}

func NewFilterSpec() FilterSpec {
	return FilterSpec{
		Selections: map[string]string{},
		Minimums:   map[Metric]float64{},
		Sort:       SortName,
	}
}

// Selected returns the selected value for attribute attr.
func (f FilterSpec) Selected(attr string) (string, bool) {
	v, ok := f.Selections[attr]
	return v, ok
}

// Clone returns a deep copy of f.
func (f FilterSpec) Clone() FilterSpec {
	out := FilterSpec{
		Category:   f.Category,
		Selections: make(map[string]string, len(f.Selections)),
		Minimums:   make(map[Metric]float64, len(f.Minimums)),
		Sort:       f.Sort,
	}
	for k, v := range f.Selections {
		out.Selections[k] = v
	}
	for k, v := range f.Minimums {
		out.Minimums[k] = v
	}
	return out
}

// With returns a copy of f with attr required to equal value.
func (f FilterSpec) With(attr, value string) FilterSpec {
	out := f.Clone()
	out.Selections[attr] = value
	return out
}

// Without returns a copy of f with the given attribute selections removed.
func (f FilterSpec) Without(attrs ...string) FilterSpec {
	out := f.Clone()
	for _, attr := range attrs {
		delete(out.Selections, attr)
	}
	return out
}

// WithoutSelections returns a copy of f keeping only the category,
// minimums and sort key.
func (f FilterSpec) WithoutSelections() FilterSpec {
	out := f.Clone()
	out.Selections = map[string]string{}
	return out
}
