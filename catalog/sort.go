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
	"strings"

	"github.com/aigentincubator/sales-ctonet/model"
)

// lessName orders names case-insensitively, falling back to a byte-wise
// comparison so distinct names never compare equal.
func lessName(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}

// Sort returns a sorted copy of records. Name sorts ascending; metric keys
// sort descending with unknown values last and ties broken by name.
func Sort(records []model.HardwareRecord, key model.SortKey) []model.HardwareRecord {
	out := make([]model.HardwareRecord, len(records))
	copy(out, records)

	metric, byMetric := key.Metric()
	if !byMetric {
		sort.SliceStable(out, func(i, j int) bool {
			return lessName(out[i].Name, out[j].Name)
		})
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		vi, oki := out[i].Metric(metric)
		vj, okj := out[j].Metric(metric)
		switch {
		case oki && !okj:
			return true
		case !oki && okj:
			return false
		case oki && okj && vi != vj:
			return vi > vj
		}
		return lessName(out[i].Name, out[j].Name)
	})
	return out
}
