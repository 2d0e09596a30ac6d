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

// Package blob loads the catalog dataset from a JSON document kept in an
// object store.
package blob

import (
	"context"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/aigentincubator/sales-ctonet/dataset"
	"github.com/aigentincubator/sales-ctonet/model"
	"github.com/aigentincubator/sales-ctonet/storage"
	"github.com/aigentincubator/sales-ctonet/store"
	"github.com/aigentincubator/sales-ctonet/utils"
)

const DefaultMaxSize = 32 * 1024 * 1024

type Options struct {
	// MaxSize is the largest document accepted; non-positive values
	// disable the check.
	MaxSize *int64
}

func NewOptions(opts ...*Options) *Options {
	maxSize := int64(DefaultMaxSize)
	ret := &Options{MaxSize: &maxSize}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.MaxSize != nil {
			ret.MaxSize = opt.MaxSize
		}
	}
	return ret
}

func (opts *Options) SetMaxSize(size int64) *Options {
	opts.MaxSize = &size
	return opts
}

type DataStore struct {
	objects storage.ObjectReader
	path    string
	maxSize int64
}

func NewDataStore(objects storage.ObjectReader, path string, opts ...*Options) *DataStore {
	opt := NewOptions(opts...)
	return &DataStore{
		objects: objects,
		path:    path,
		maxSize: *opt.MaxSize,
	}
}

func (db *DataStore) Ping(ctx context.Context) error {
	if err := db.objects.HealthCheck(ctx); err != nil {
		return err
	}
	_, err := db.objects.StatObject(ctx, db.path)
	return err
}

func (db *DataStore) LoadRecords(ctx context.Context) ([]model.HardwareRecord, error) {
	body, err := db.objects.GetObject(ctx, db.path)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to open dataset %q", db.path)
	}
	defer body.Close()

	r := utils.ReadAtMost(body, db.maxSize)
	records, err := dataset.Decode(r)
	if db.maxSize > 0 && r.Count() > db.maxSize {
		return nil, errors.Wrapf(utils.ErrStreamTooLarge,
			"dataset %q exceeds %d bytes", db.path, db.maxSize)
	} else if err != nil {
		return nil, errors.WithMessagef(err, "failed to decode dataset %q", db.path)
	} else if len(records) == 0 {
		return nil, store.ErrEmptyDataset
	}
	log.FromContext(ctx).Infof("loaded %d records (%d bytes) from %q",
		len(records), r.Count(), db.path)
	return records, nil
}
