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

package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aigentincubator/sales-ctonet/dataset"
	"github.com/aigentincubator/sales-ctonet/storage"
	"github.com/aigentincubator/sales-ctonet/storage/file"
	"github.com/aigentincubator/sales-ctonet/store"
	"github.com/aigentincubator/sales-ctonet/utils"
)

const testDataset = `{
  "Mobile Routers": {
    "MAX BR1 Mini": {"Number of Cellular Modems": "1"},
    "MAX Transit Duo": {"Number of Cellular Modems": "2"}
  },
  "Switches": {
    "FlexSwitch 8": {"Ports": 8}
  }
}`

func writeFile(t *testing.T, dir, name, content string) {
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadRecords(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "products.json", testDataset)
	writeFile(t, dir, "empty.json", `{}`)
	writeFile(t, dir, "broken.json", `{"Routers": [}`)
	writeFile(t, dir, "large.json", `{"Routers": {"A": {"Notes": "`+
		strings.Repeat("x", 256)+`"}}}`)

	testCases := map[string]struct {
		path    string
		maxSize int64

		count int
		err   error
	}{
		"ok": {
			path:  "products.json",
			count: 3,
		},
		"ok, unlimited": {
			path:    "products.json",
			maxSize: -1,
			count:   3,
		},
		"empty": {
			path: "empty.json",
			err:  store.ErrEmptyDataset,
		},
		"malformed": {
			path: "broken.json",
			err:  dataset.ErrMalformed,
		},
		"too large": {
			path:    "large.json",
			maxSize: 64,
			err:     utils.ErrStreamTooLarge,
		},
		"missing": {
			path: "missing.json",
			err:  storage.ErrObjectNotFound,
		},
	}
	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			opts := NewOptions()
			if tc.maxSize != 0 {
				opts.SetMaxSize(tc.maxSize)
			}
			db := NewDataStore(file.New(dir), tc.path, opts)
			records, err := db.LoadRecords(context.Background())
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else if assert.NoError(t, err) {
				assert.Len(t, records, tc.count)
				assert.Equal(t, "MAX BR1 Mini", records[0].Name)
				assert.Equal(t, "Switches", records[2].Category)
			}
		})
	}
}

func TestPing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "products.json", testDataset)

	db := NewDataStore(file.New(dir), "products.json")
	assert.NoError(t, db.Ping(context.Background()))

	db = NewDataStore(file.New(dir), "missing.json")
	assert.ErrorIs(t, db.Ping(context.Background()), storage.ErrObjectNotFound)
}
