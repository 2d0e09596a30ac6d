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

import (
	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

// Metric names one of the numeric properties a record may carry.
type Metric string

const (
	MetricRouterThroughput Metric = "RouterThroughput"
	MetricSpeedFusion      Metric = "SpeedFusion"
	MetricUsers            Metric = "Users"
)

// Metrics lists the supported metrics in presentation order.
var Metrics = []Metric{
	MetricRouterThroughput,
	MetricSpeedFusion,
	MetricUsers,
}

func (m Metric) Valid() bool {
	switch m {
	case MetricRouterThroughput, MetricSpeedFusion, MetricUsers:
		return true
	}
	return false
}

var ErrInvalidDocumentLink = errors.New("must be a valid URL")

// HardwareRecord is one product specification sheet.
type HardwareRecord struct {
	// Name is unique across the catalog.
	Name     string `json:"name" bson:"_id"`
	Category string `json:"category" bson:"category"`

	// Attributes maps attribute name to its value. A missing key is not
	// the same as an empty value.
	Attributes map[string]string `json:"attributes" bson:"attributes"`

	// Metrics holds the known numeric metrics; an absent key is "unknown".
	Metrics map[Metric]float64 `json:"metrics,omitempty" bson:"-"`

	DocumentLink string `json:"document_link,omitempty" bson:"pdf_url,omitempty"`
	Description  string `json:"description,omitempty" bson:"short_description,omitempty"`

	// Prices per client tier.
	Prices map[string]float64 `json:"prices,omitempty" bson:"-"`
}

// Attribute returns the value of the named attribute and whether the record
// has it at all.
func (r HardwareRecord) Attribute(name string) (string, bool) {
	v, ok := r.Attributes[name]
	return v, ok
}

// Metric returns the metric value and whether it is known.
func (r HardwareRecord) Metric(m Metric) (float64, bool) {
	v, ok := r.Metrics[m]
	return v, ok
}

func (r HardwareRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, lengthIn1To200),
		validation.Field(&r.Category, validation.Required, lengthIn1To200),
		validation.Field(&r.DocumentLink, validation.By(isDocumentLink)),
	)
}

func isDocumentLink(value interface{}) error {
	link, _ := value.(string)
	if link == "" {
		return nil
	}
	if !govalidator.IsURL(link) {
		return ErrInvalidDocumentLink
	}
	return nil
}
