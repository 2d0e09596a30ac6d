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

// Package file serves dataset objects from the local filesystem.
package file

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/aigentincubator/sales-ctonet/storage"
)

type Directory struct {
	root string
}

// New returns a reader resolving object paths relative to root.
func New(root string) *Directory {
	return &Directory{root: root}
}

func (d *Directory) resolve(path string) string {
	if filepath.IsAbs(path) || d.root == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(d.root, path)
}

func classify(err error, path string) error {
	if errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(storage.ErrObjectNotFound, path)
	}
	return errors.WithMessage(err, "file: failed to access object")
}

func (d *Directory) HealthCheck(ctx context.Context) error {
	if d.root == "" {
		return nil
	}
	info, err := os.Stat(d.root)
	if err != nil {
		return classify(err, d.root)
	} else if !info.IsDir() {
		return errors.Errorf("file: %s is not a directory", d.root)
	}
	return nil
}

func (d *Directory) GetObject(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(d.resolve(path))
	if err != nil {
		return nil, classify(err, path)
	}
	return f, nil
}

func (d *Directory) StatObject(ctx context.Context, path string) (*storage.ObjectInfo, error) {
	info, err := os.Stat(d.resolve(path))
	if err != nil {
		return nil, classify(err, path)
	}
	size := info.Size()
	modTime := info.ModTime()
	return &storage.ObjectInfo{
		Path:         path,
		Size:         &size,
		LastModified: &modTime,
	}, nil
}
