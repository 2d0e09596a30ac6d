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
	"strconv"
	"strings"

	"github.com/aigentincubator/sales-ctonet/utils"
)

// SelectionsText renders the selections of v as plain text, one per line,
// for pasting into a CRM note.
func SelectionsText(v View) string {
	var lines []string
	if v.Filter.Category != "" {
		lines = append(lines, "Category: "+utils.NormalizeDisplay(v.Filter.Category))
	}
	if v.ClientTier != "" {
		lines = append(lines, "Client Category: "+utils.NormalizeDisplay(v.ClientTier))
	}
	attrs := sortedKeys(v.Filter.Selections)
	sort.SliceStable(attrs, func(i, j int) bool {
		return strings.ToLower(attrs[i]) < strings.ToLower(attrs[j])
	})
	for _, attr := range attrs {
		lines = append(lines,
			utils.NormalizeDisplay(attr)+": "+
				utils.NormalizeDisplay(v.Filter.Selections[attr]))
	}
	for _, mp := range MetricParams {
		min, ok := v.Filter.Minimums[mp.Metric]
		if !ok {
			continue
		}
		line := mp.Label + ": " + strconv.FormatFloat(min, 'f', -1, 64)
		if mp.Unit != "" {
			line += " " + mp.Unit
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
