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

// Package dataset reads the hardware specification dataset and derives the
// normalized attributes and metrics the catalog filters on.
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/aigentincubator/sales-ctonet/model"
)

// Keys of a product object that are not attributes.
const (
	KeyDocumentLink = "pdf_url"
	KeyDescription  = "short_description"
	KeyCitations    = "Citations"
)

var ErrMalformed = errors.New("malformed dataset")

// Decode reads a dataset of the form
//
//	{"<category>": {"<product name>": {"<attribute>": <value>, ...}, ...}, ...}
//
// keeping categories and products in file order.
func Decode(r io.Reader) ([]model.HardwareRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	records := []model.HardwareRecord{}
	for dec.More() {
		category, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		products, err := decodeCategory(dec, category)
		if err != nil {
			return nil, errors.WithMessagef(err, "category %q", category)
		}
		records = append(records, products...)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeCategory(dec *json.Decoder, category string) ([]model.HardwareRecord, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.Wrapf(ErrMalformed, "expected object, got %v", tok)
	}
	var records []model.HardwareRecord
	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		var fields map[string]interface{}
		if err := dec.Decode(&fields); err != nil {
			return nil, errors.Wrapf(ErrMalformed, "product %q: %s", name, err)
		}
		records = append(records, NewRecord(category, name, fields))
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return records, nil
}

// NewRecord builds the record of one product from its raw fields.
func NewRecord(category, name string, fields map[string]interface{}) model.HardwareRecord {
	rec := model.HardwareRecord{
		Name:       name,
		Category:   category,
		Attributes: make(map[string]string, len(fields)),
	}
	for key, raw := range fields {
		value, ok := stringify(raw)
		switch key {
		case KeyCitations:
			continue
		case KeyDocumentLink:
			rec.DocumentLink = strings.TrimSpace(value)
			continue
		case KeyDescription:
			rec.Description = value
			continue
		}
		if ok {
			rec.Attributes[key] = value
		}
	}
	return rec
}

// stringify renders a decoded value as an attribute value. Null and objects
// have no attribute representation.
func stringify(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case int:
		return strconv.Itoa(t), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		if t {
			return "Yes", true
		}
		return "No", true
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := stringify(item); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", "), true
	}
	return "", false
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", errors.Wrap(ErrMalformed, err.Error())
	}
	key, ok := tok.(string)
	if !ok {
		return "", errors.Wrapf(ErrMalformed, "expected key, got %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(ErrMalformed, err.Error())
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errors.Wrap(ErrMalformed, fmt.Sprintf("expected %q, got %v", want, tok))
	}
	return nil
}
