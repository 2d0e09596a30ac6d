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

package s3

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsHttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"

	"github.com/aigentincubator/sales-ctonet/storage"
)

// SimpleStorageService - AWS S3 client.
// Read-only access to the bucket holding the catalog dataset.
type SimpleStorageService struct {
	client *s3.Client
	bucket string
}

type StaticCredentials struct {
	Key    string `json:"key"`
	Secret string `json:"secret"`
	Token  string `json:"token"`
}

func (creds StaticCredentials) Validate() error {
	return validation.ValidateStruct(&creds,
		validation.Field(&creds.Key, validation.Required),
		validation.Field(&creds.Secret, validation.Required),
	)
}

func (creds StaticCredentials) awsCredentials() aws.Credentials {
	return aws.Credentials{
		AccessKeyID:     creds.Key,
		SecretAccessKey: creds.Secret,
		SessionToken:    creds.Token,
		Source:          "catalog:StaticCredentials",
	}
}

func (creds StaticCredentials) Retrieve(context.Context) (aws.Credentials, error) {
	return creds.awsCredentials(), nil
}

func New(ctx context.Context, bucket string, opts ...*Options) (*SimpleStorageService, error) {
	opt := NewOptions(opts...)
	if err := opt.Validate(); err != nil {
		return nil, errors.WithMessage(err, "s3: invalid configuration")
	}

	cfg, err := awsConfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &SimpleStorageService{
		client: s3.NewFromConfig(cfg, opt.toS3Options()),
		bucket: bucket,
	}, nil
}

// classify maps the HTTP status of a failed request to storage errors.
func (s *SimpleStorageService) classify(err error, path string) error {
	var rspErr *awsHttp.ResponseError
	if errors.As(err, &rspErr) {
		switch rspErr.Response.StatusCode {
		case http.StatusNotFound:
			return errors.Wrapf(storage.ErrObjectNotFound,
				"s3: s3://%s/%s", s.bucket, path)
		case http.StatusForbidden:
			return fmt.Errorf(
				"s3: insufficient permissions for accessing bucket '%s'",
				s.bucket,
			)
		}
	}
	return err
}

func (s *SimpleStorageService) HealthCheck(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return errors.WithMessage(s.classify(err, ""), "s3: health check failed")
	}
	return nil
}

func (s *SimpleStorageService) GetObject(
	ctx context.Context,
	path string,
) (io.ReadCloser, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	}
	rsp, err := s.client.GetObject(ctx, params)
	if err != nil {
		return nil, errors.WithMessage(s.classify(err, path), "s3: error getting object")
	}
	return rsp.Body, nil
}

func (s *SimpleStorageService) StatObject(
	ctx context.Context,
	path string,
) (*storage.ObjectInfo, error) {
	params := &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	}
	rsp, err := s.client.HeadObject(ctx, params)
	if err != nil {
		return nil, errors.WithMessage(s.classify(err, path), "s3: error getting object info")
	}

	return &storage.ObjectInfo{
		Path:         path,
		Size:         rsp.ContentLength,
		LastModified: rsp.LastModified,
	}, nil
}
