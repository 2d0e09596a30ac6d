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

package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrObjectNotFound = errors.New("object not found")
)

// ObjectReader gives read access to the objects holding the catalog dataset.
type ObjectReader interface {
	HealthCheck(ctx context.Context) error
	GetObject(ctx context.Context, path string) (io.ReadCloser, error)
	StatObject(ctx context.Context, path string) (*ObjectInfo, error)
}

type ObjectInfo struct {
	Path string

	Size *int64

	LastModified *time.Time
}
