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
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/aigentincubator/sales-ctonet/model"
)

// flatten reduces repeated parameters to their last value.
func flatten(params url.Values) map[string]string {
	raw := make(map[string]string, len(params))
	for name, values := range params {
		if len(values) == 0 {
			continue
		}
		raw[name] = values[len(values)-1]
	}
	return raw
}

// expandQuickPick rewrites a pick parameter into the category and attribute
// parameters it stands for. Other quick-pick attributes of the same category
// are dropped so picks stay mutually exclusive.
func expandQuickPick(raw map[string]string, picks []QuickPick) {
	id, ok := raw[ParamQuickPick]
	if !ok {
		return
	}
	delete(raw, ParamQuickPick)
	var pick *QuickPick
	for i := range picks {
		if picks[i].ID == id {
			pick = &picks[i]
			break
		}
	}
	if pick == nil {
		return
	}
	for _, other := range picks {
		if other.Category == pick.Category {
			delete(raw, other.Attribute)
		}
	}
	raw[ParamCategory] = pick.Category
	raw[pick.Attribute] = pick.Value
}

// Normalize turns raw query parameters into a FilterSpec. It never fails:
// anything unknown, malformed or out of range is left out.
func Normalize(store *Store, params url.Values, picks []QuickPick) model.FilterSpec {
	spec := model.NewFilterSpec()
	raw := flatten(params)
	expandQuickPick(raw, picks)

	if category := raw[ParamCategory]; category != "" && store.HasCategory(category) {
		spec.Category = category
	}

	schema := store.schema(spec.Category)
	for name, value := range raw {
		if IsReserved(name) {
			continue
		}
		if schema.Permits(name, value) {
			spec.Selections[name] = value
		}
	}

	for _, mp := range MetricParams {
		if min, ok := parseMinimum(raw, mp.Names); ok {
			spec.Minimums[mp.Metric] = min
		}
	}

	if key, ok := sortKeys[raw[ParamSort]]; ok {
		spec.Sort = key
	}
	return spec
}

// parseMinimum reads the first present parameter of names. Empty, negative
// and non-finite values mean "no minimum".
func parseMinimum(raw map[string]string, names []string) (float64, bool) {
	for _, name := range names {
		s, ok := raw[name]
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, false
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// ParseEmbed reads the presentation-only embed flag.
func ParseEmbed(params url.Values) bool {
	switch strings.ToLower(strings.TrimSpace(flatten(params)[ParamEmbed])) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// ParseClientTier returns the requested pricing tier, falling back to the
// first tier.
func ParseClientTier(params url.Values, tiers []string) string {
	tier := flatten(params)[ParamClientTier]
	for _, t := range tiers {
		if t == tier {
			return t
		}
	}
	if len(tiers) > 0 {
		return tiers[0]
	}
	return ""
}
