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

package dataset

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/aigentincubator/sales-ctonet/model"
)

// Source attribute names.
const (
	AttrCellularModems    = "Number of Cellular Modems"
	AttrModemCategoryOpts = "Cellular Modem Category options"
	AttrModemGroup        = "Modem Group"
	Attr5G                = "5G support"
	AttrWiFiAP            = "Wi\u2011Fi AP"
	AttrRouterThroughput  = "Router Throughput"
	AttrSpeedFusionPlain  = "SpeedFusion Throughput (no encryption)"
	AttrSpeedFusionVPN    = "SpeedFusion VPN Throughput (No Encryption)"
	AttrSpeedFusionAES    = "SpeedFusion Throughput (256\u2011bit AES)"
	AttrSpeedFusionVPNAES = "SpeedFusion VPN Throughput (256\u2011bit AES)"
	AttrRecommendedUsers  = "Number of Recommended Users"
)

// Modem groups derived from the modem count.
const (
	ModemGroupNone   = "None"
	ModemGroupSingle = "Single"
	ModemGroupMulti  = "Multi"
)

var ErrInvalidRecord = errors.New("invalid record")

// Enrich returns a copy of rec with derived attributes and metrics.
func Enrich(rec model.HardwareRecord) model.HardwareRecord {
	attrs := make(map[string]string, len(rec.Attributes)+4)
	for k, v := range rec.Attributes {
		attrs[k] = v
	}
	out := rec
	out.Attributes = attrs

	modems := 0
	if raw, ok := attrs[AttrCellularModems]; ok {
		modems, _ = ParseIntPrefix(raw)
	}
	switch {
	case modems <= 0:
		attrs[AttrModemGroup] = ModemGroupNone
	case modems == 1:
		attrs[AttrModemGroup] = ModemGroupSingle
	default:
		attrs[AttrModemGroup] = ModemGroupMulti
	}

	for _, attr := range []string{AttrWiFiAP, Attr5G} {
		if v, ok := attrs[attr]; ok {
			attrs[attr] = YesNo(v)
		}
	}
	has5G := false
	for _, s := range []string{
		attrs[AttrCellularModems],
		attrs[AttrModemCategoryOpts],
		rec.Description,
	} {
		if strings.Contains(strings.ToLower(s), "5g") {
			has5G = true
			break
		}
	}
	if cur, ok := attrs[Attr5G]; has5G {
		attrs[Attr5G] = "Yes"
	} else if !ok || strings.TrimSpace(cur) == "" {
		attrs[Attr5G] = "No"
	}

	if _, ok := attrs[AttrSpeedFusionPlain]; !ok {
		if v, ok := attrs[AttrSpeedFusionVPN]; ok {
			attrs[AttrSpeedFusionPlain] = v
		}
	}
	if _, ok := attrs[AttrSpeedFusionAES]; !ok {
		if v, ok := attrs[AttrSpeedFusionVPNAES]; ok {
			attrs[AttrSpeedFusionAES] = v
		}
	}

	out.Metrics = make(map[model.Metric]float64, len(model.Metrics))
	for m, v := range rec.Metrics {
		out.Metrics[m] = v
	}
	// Metrics supplied by the source win over the parsed attributes.
	known := func(m model.Metric) bool {
		_, ok := out.Metrics[m]
		return ok
	}
	if v, ok := attrs[AttrRouterThroughput]; ok && !known(model.MetricRouterThroughput) {
		if mbps, ok := ParseMbps(v); ok {
			out.Metrics[model.MetricRouterThroughput] = mbps
		}
	}
	if v, ok := attrs[AttrSpeedFusionPlain]; ok && !known(model.MetricSpeedFusion) {
		if mbps, ok := ParseMbps(v); ok {
			out.Metrics[model.MetricSpeedFusion] = mbps
		}
	}
	if v, ok := attrs[AttrRecommendedUsers]; ok && !known(model.MetricUsers) {
		if _, hi, ok := ParseUsersRange(v); ok {
			out.Metrics[model.MetricUsers] = float64(hi)
		}
	}
	return out
}

// Prepare enriches and validates records and attaches prices for tiers.
// Names must be unique.
func Prepare(records []model.HardwareRecord, tiers []string) ([]model.HardwareRecord, error) {
	out := make([]model.HardwareRecord, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return nil, errors.Wrapf(ErrInvalidRecord, "%q: %s", rec.Name, err)
		}
		if _, dup := seen[rec.Name]; dup {
			return nil, errors.Wrapf(ErrInvalidRecord, "%q: duplicate name", rec.Name)
		}
		seen[rec.Name] = struct{}{}
		out = append(out, Enrich(rec))
	}
	AssignPrices(out, tiers)
	return out, nil
}

// Tier price offsets over the base price, by tier position.
var tierOffsets = []float64{0, 190, 340}

// AssignPrices sets deterministic list prices per tier. The base price
// grows with the category position and the product position by name within
// its category.
func AssignPrices(records []model.HardwareRecord, tiers []string) {
	catIndex := map[string]int{}
	byCategory := map[string][]int{}
	for i, rec := range records {
		if _, ok := catIndex[rec.Category]; !ok {
			catIndex[rec.Category] = len(catIndex)
		}
		byCategory[rec.Category] = append(byCategory[rec.Category], i)
	}
	for category, idx := range byCategory {
		sort.SliceStable(idx, func(a, b int) bool {
			return records[idx[a]].Name < records[idx[b]].Name
		})
		for pos, i := range idx {
			base := 800 + float64(catIndex[category])*220 + float64(pos)*25
			prices := make(map[string]float64, len(tiers))
			for t, tier := range tiers {
				if t >= len(tierOffsets) {
					break
				}
				prices[tier] = base + tierOffsets[t]
			}
			records[i].Prices = prices
		}
	}
}
