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

package manager

import (
	"context"
	"errors"

	"github.com/aigentincubator/sales-ctonet/storage"
	"github.com/aigentincubator/sales-ctonet/storage/azblob"
	"github.com/aigentincubator/sales-ctonet/storage/file"
	"github.com/aigentincubator/sales-ctonet/storage/s3"
)

var (
	ErrInvalidProvider = errors.New("manager: invalid storage provider")
)

type Provider string

const (
	ProviderFile  Provider = "file"
	ProviderS3    Provider = "s3"
	ProviderAzure Provider = "azblob"
)

// Settings select and configure the object store holding the dataset.
type Settings struct {
	Provider Provider

	// Root is the base directory of the file provider.
	Root string

	// Bucket is the s3 bucket or azure container name.
	Bucket string

	S3    *s3.Options
	Azure *azblob.Options
}

// New returns the object reader for the configured provider.
func New(ctx context.Context, settings Settings) (storage.ObjectReader, error) {
	switch settings.Provider {
	case ProviderFile:
		return file.New(settings.Root), nil
	case ProviderS3:
		client, err := s3.New(ctx, settings.Bucket, settings.S3)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderAzure:
		return azblob.New(ctx, settings.Bucket, settings.Azure)
	}
	return nil, ErrInvalidProvider
}
