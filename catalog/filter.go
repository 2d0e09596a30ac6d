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
	"github.com/aigentincubator/sales-ctonet/model"
)

// Matches reports whether rec satisfies every active constraint of spec.
// A record lacking a constrained attribute or metric never matches.
func Matches(rec model.HardwareRecord, spec model.FilterSpec) bool {
	if spec.Category != "" && rec.Category != spec.Category {
		return false
	}
	for attr, want := range spec.Selections {
		got, ok := rec.Attribute(attr)
		if !ok || got != want {
			return false
		}
	}
	for metric, min := range spec.Minimums {
		got, ok := rec.Metric(metric)
		if !ok || got < min {
			return false
		}
	}
	return true
}

// Filter returns the records matching spec, in input order.
func Filter(records []model.HardwareRecord, spec model.FilterSpec) []model.HardwareRecord {
	out := make([]model.HardwareRecord, 0, len(records))
	for _, rec := range records {
		if Matches(rec, spec) {
			out = append(out, rec)
		}
	}
	return out
}

// Count returns how many records match spec.
func Count(records []model.HardwareRecord, spec model.FilterSpec) int {
	n := 0
	for _, rec := range records {
		if Matches(rec, spec) {
			n++
		}
	}
	return n
}
