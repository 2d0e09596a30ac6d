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

package store

import (
	"context"
	"errors"

	"github.com/aigentincubator/sales-ctonet/model"
)

var (
	// ErrEmptyDataset is returned when the source holds no records.
	ErrEmptyDataset = errors.New("dataset is empty")
)

// DataStore loads the raw hardware records in dataset order.
type DataStore interface {
	Ping(ctx context.Context) error
	LoadRecords(ctx context.Context) ([]model.HardwareRecord, error)
}
