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

package http

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/aigentincubator/sales-ctonet/catalog"
	"github.com/aigentincubator/sales-ctonet/model"
	"github.com/aigentincubator/sales-ctonet/utils"
)

const maxSummaryPairs = 8

var (
	speedFusionKeys = []string{
		"SpeedFusion Throughput (no encryption)",
		"SpeedFusion VPN Throughput (No Encryption)",
	}

	summaryPriorityKeys = []string{
		"Number of Ethernet WAN ports",
		"Number of Ethernet LAN ports",
		"Wi\u2011Fi AP",
		"Wi\u2011Fi Radio",
		"", // SpeedFusion, whichever variant the record has
		"Router Throughput",
		"Number of Recommended Users",
	}

	summaryExtraKeys = []string{
		catalog.Attr5G,
		"Number of Cellular Modems",
		catalog.AttrModemGroup,
		"SIM Slots",
		catalog.AttrSeries,
	}

	pricePrinter = message.NewPrinter(language.English)
)

type summaryPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type priceResponse struct {
	ClientCategory string  `json:"client_category"`
	Amount         float64 `json:"amount"`
	Display        string  `json:"display"`
}

type cardResponse struct {
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	Description  string         `json:"description,omitempty"`
	DocumentLink string         `json:"document_link,omitempty"`
	Price        *priceResponse `json:"price,omitempty"`
	Summary      []summaryPair  `json:"summary"`
	// CopyText is the summary with display normalization applied, one
	// "key: value" per line.
	CopyText string `json:"copy_text"`
}

// summaryKeys picks the attributes shown on a result card: priority keys,
// then extras, then the remaining attributes by name.
func summaryKeys(rec model.HardwareRecord) []string {
	keys := make([]string, 0, maxSummaryPairs)
	add := func(k string) {
		if _, ok := rec.Attribute(k); ok && !containsKey(keys, k) {
			keys = append(keys, k)
		}
	}
	for _, k := range summaryPriorityKeys {
		if k == "" {
			for _, sf := range speedFusionKeys {
				if _, ok := rec.Attribute(sf); ok {
					add(sf)
					break
				}
			}
			continue
		}
		add(k)
	}
	for _, k := range summaryExtraKeys {
		add(k)
	}
	if len(keys) < maxSummaryPairs {
		rest := make([]string, 0, len(rec.Attributes))
		for k := range rec.Attributes {
			if !containsKey(keys, k) {
				rest = append(rest, k)
			}
		}
		sort.Slice(rest, func(i, j int) bool {
			a, b := strings.ToLower(rest[i]), strings.ToLower(rest[j])
			if a != b {
				return a < b
			}
			return rest[i] < rest[j]
		})
		for _, k := range rest {
			if len(keys) >= maxSummaryPairs {
				break
			}
			keys = append(keys, k)
		}
	}
	if len(keys) > maxSummaryPairs {
		keys = keys[:maxSummaryPairs]
	}
	return keys
}

func containsKey(keys []string, k string) bool {
	for _, key := range keys {
		if key == k {
			return true
		}
	}
	return false
}

// formatPrice renders whole amounts as "$1,234" and others as "$1,234.50".
func formatPrice(amount float64) string {
	if math.Abs(amount-math.Round(amount)) < 1e-6 {
		return pricePrinter.Sprintf("$%d", int64(math.Round(amount)))
	}
	return pricePrinter.Sprintf("$%.2f", amount)
}

func newCard(rec model.HardwareRecord, tier string) cardResponse {
	card := cardResponse{
		Name:         rec.Name,
		Category:     rec.Category,
		Description:  rec.Description,
		DocumentLink: rec.DocumentLink,
		Summary:      []summaryPair{},
	}
	var copyLines []string
	if amount, ok := rec.Prices[tier]; ok {
		card.Price = &priceResponse{
			ClientCategory: tier,
			Amount:         amount,
			Display:        formatPrice(amount),
		}
		label := "Price (" + tier + ")"
		card.Summary = append(card.Summary, summaryPair{Key: label, Value: card.Price.Display})
		copyLines = append(copyLines,
			utils.NormalizeDisplay(label)+": "+utils.NormalizeDisplay(card.Price.Display))
	}
	for _, k := range summaryKeys(rec) {
		v, _ := rec.Attribute(k)
		card.Summary = append(card.Summary, summaryPair{Key: k, Value: v})
		copyLines = append(copyLines, utils.NormalizeDisplay(k)+": "+utils.NormalizeDisplay(v))
	}
	card.CopyText = strings.Join(copyLines, "\n")
	return card
}
