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

package azblob

import (
	"context"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/aigentincubator/sales-ctonet/storage"
)

type client struct {
	*azblob.Client
	container string
}

// New returns a reader for the blobs of container.
func New(ctx context.Context, container string, opts ...*Options) (storage.ObjectReader, error) {
	var (
		err    error
		azc    *azblob.Client
		azCred *azblob.SharedKeyCredential
	)
	opt := NewOptions(opts...)
	if opt.ConnectionString != nil {
		azc, err = azblob.NewClientFromConnectionString(
			*opt.ConnectionString, opt.clientOptions(),
		)
	} else if sk := opt.SharedKey; sk != nil {
		var serviceURL string
		serviceURL, azCred, err = sk.azParams()
		if err == nil {
			azc, err = azblob.NewClientWithSharedKeyCredential(
				serviceURL,
				azCred,
				opt.clientOptions(),
			)
		}
	} else {
		err = ErrNoCredentials
	}
	if err != nil {
		return nil, OpError{
			Op:      OpNew,
			Message: "failed to initialize client",
			Reason:  err,
		}
	}
	return &client{
		Client:    azc,
		container: container,
	}, nil
}

func (c *client) HealthCheck(ctx context.Context) error {
	_, err := c.ServiceClient().
		NewContainerClient(c.container).
		GetProperties(ctx, nil)
	if err != nil {
		return OpError{
			Op:     OpHealthCheck,
			Reason: classify(err),
		}
	}
	return nil
}

func (c *client) GetObject(
	ctx context.Context,
	path string,
) (io.ReadCloser, error) {
	rsp, err := c.DownloadStream(ctx, c.container, path, nil)
	if err != nil {
		return nil, OpError{
			Op:      OpGetObject,
			Message: "failed to download blob",
			Reason:  classify(err),
		}
	}
	return rsp.Body, nil
}

func (c *client) StatObject(
	ctx context.Context,
	path string,
) (*storage.ObjectInfo, error) {
	rsp, err := c.ServiceClient().
		NewContainerClient(c.container).
		NewBlobClient(path).
		GetProperties(ctx, nil)
	if err != nil {
		return nil, OpError{
			Op:      OpStatObject,
			Message: "failed to retrieve object properties",
			Reason:  classify(err),
		}
	}
	return &storage.ObjectInfo{
		Path:         path,
		LastModified: rsp.LastModified,
		Size:         rsp.ContentLength,
	}, nil
}
