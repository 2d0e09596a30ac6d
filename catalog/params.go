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

// Query parameters with a fixed meaning. Every other parameter is either an
// attribute name known to the store or ignored.
const (
	ParamCategory   = "category"
	ParamSort       = "sort"
	ParamQuickPick  = "pick"
	ParamEmbed      = "embed"
	ParamClientTier = "client_category"
)

// MetricParam binds a metric to its minimum-threshold query parameters. The
// first name is canonical and used when building URLs.
type MetricParam struct {
	Metric model.Metric
	Names  []string
	Label  string
	Unit   string
}

// MetricParams is the fixed table of numeric minimum parameters.
var MetricParams = []MetricParam{
	{
		Metric: model.MetricRouterThroughput,
		Names:  []string{"minRouterThroughput", "min_router_mbps"},
		Label:  "Min Router Throughput",
		Unit:   "Mbps",
	},
	{
		Metric: model.MetricSpeedFusion,
		Names:  []string{"minSpeedFusion", "min_speedfusion_mbps"},
		Label:  "Min SpeedFusion",
		Unit:   "Mbps",
	},
	{
		Metric: model.MetricUsers,
		Names:  []string{"minUsers", "min_users"},
		Label:  "Min Users",
	},
}

// sortKeys maps accepted sort parameter values to sort keys.
var sortKeys = map[string]model.SortKey{
	string(model.SortName):             model.SortName,
	string(model.SortRouterThroughput): model.SortRouterThroughput,
	string(model.SortSpeedFusion):      model.SortSpeedFusion,
	string(model.SortUsers):            model.SortUsers,

	"name_asc":         model.SortName,
	"router_desc":      model.SortRouterThroughput,
	"speedfusion_desc": model.SortSpeedFusion,
	"users_desc":       model.SortUsers,
}

// SortKeys lists the canonical sort keys.
var SortKeys = []model.SortKey{
	model.SortName,
	model.SortRouterThroughput,
	model.SortSpeedFusion,
	model.SortUsers,
}

var reserved = func() map[string]struct{} {
	m := map[string]struct{}{
		ParamCategory:   {},
		ParamSort:       {},
		ParamQuickPick:  {},
		ParamEmbed:      {},
		ParamClientTier: {},
	}
	for _, mp := range MetricParams {
		for _, name := range mp.Names {
			m[name] = struct{}{}
		}
	}
	return m
}()

// IsReserved reports whether name is a parameter with a fixed meaning.
func IsReserved(name string) bool {
	_, ok := reserved[name]
	return ok
}

// QuickPick is a named shortcut for a category plus one attribute value.
type QuickPick struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Category  string `json:"category"`
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// Attribute names the catalog treats specially.
const (
	AttrSeries     = "Series"
	AttrModemGroup = "Modem Group"
	Attr5G         = "5G support"
)

// DefaultQuickPicks are the shortcuts offered for mobile routers.
var DefaultQuickPicks = []QuickPick{
	{
		ID:        "single-modem",
		Label:     "Single Modem",
		Category:  "Mobile Routers",
		Attribute: AttrModemGroup,
		Value:     "Single",
	},
	{
		ID:        "multi-modem",
		Label:     "Multi Modem",
		Category:  "Mobile Routers",
		Attribute: AttrModemGroup,
		Value:     "Multi",
	},
	{
		ID:        "5g",
		Label:     "5G",
		Category:  "Mobile Routers",
		Attribute: Attr5G,
		Value:     "Yes",
	},
}

// DefaultClientTiers are the pricing tiers; the first one is the default.
var DefaultClientTiers = []string{
	"Essential",
	"Business",
	"Enterprise",
}

// PreferredAttributes come first in the attribute facet list.
var PreferredAttributes = []string{
	"Number of Cellular Modems",
	AttrModemGroup,
	Attr5G,
	"Wi\u2011Fi AP",
	"Wi\u2011Fi Radio",
	"Number of Ethernet WAN ports",
	"Number of Ethernet LAN ports",
	"Router Throughput",
	"SpeedFusion Throughput (no encryption)",
	"SpeedFusion VPN Throughput (No Encryption)",
	"SIM Slots",
	"Number of Recommended Users",
}
