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

package main

import (
	"context"
	"net/http"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/pkg/errors"

	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"

	api "github.com/aigentincubator/sales-ctonet/api/http"
	"github.com/aigentincubator/sales-ctonet/app"
	"github.com/aigentincubator/sales-ctonet/catalog"
	dconfig "github.com/aigentincubator/sales-ctonet/config"
	"github.com/aigentincubator/sales-ctonet/storage/azblob"
	"github.com/aigentincubator/sales-ctonet/storage/manager"
	"github.com/aigentincubator/sales-ctonet/storage/s3"
	"github.com/aigentincubator/sales-ctonet/store"
	"github.com/aigentincubator/sales-ctonet/store/blob"
	mstore "github.com/aigentincubator/sales-ctonet/store/mongo"
)

func SetupS3(c config.Reader) *s3.Options {
	options := s3.NewOptions().
		SetForcePathStyle(c.GetBool(dconfig.SettingAwsS3ForcePathStyle)).
		SetUseAccelerate(c.GetBool(dconfig.SettingAwsS3UseAccelerate))

	// The following parameters falls back on AWS_* environment if not set
	if c.IsSet(dconfig.SettingAwsS3Region) {
		options.SetRegion(c.GetString(dconfig.SettingAwsS3Region))
	}
	if c.IsSet(dconfig.SettingsAwsAuth) ||
		(c.IsSet(dconfig.SettingAwsAuthKeyId) &&
			c.IsSet(dconfig.SettingAwsAuthSecret)) {
		options.SetStaticCredentials(
			c.GetString(dconfig.SettingAwsAuthKeyId),
			c.GetString(dconfig.SettingAwsAuthSecret),
			c.GetString(dconfig.SettingAwsAuthToken),
		)
	}
	if c.IsSet(dconfig.SettingAwsURI) {
		options.SetURI(c.GetString(dconfig.SettingAwsURI))
	}
	return options
}

func SetupAzure(c config.Reader) *azblob.Options {
	options := azblob.NewOptions()
	if connStr := c.GetString(dconfig.SettingAzureConnectionString); connStr != "" {
		return options.SetConnectionString(connStr)
	}
	creds := azblob.SharedKeyCredentials{
		AccountName: c.GetString(dconfig.SettingAzureAuthAccountName),
		AccountKey:  c.GetString(dconfig.SettingAzureAuthAccountKey),
	}
	if c.IsSet(dconfig.SettingAzureAuthURI) {
		uri := c.GetString(dconfig.SettingAzureAuthURI)
		creds.URI = &uri
	}
	return options.SetSharedKey(creds)
}

// SetupDataStore connects to the configured dataset source. The returned
// function releases its resources.
func SetupDataStore(ctx context.Context, c config.Reader) (store.DataStore, func(), error) {
	source := c.GetString(dconfig.SettingDatasetSource)
	if source == dconfig.SourceMongo {
		return setupMongo(ctx, c)
	}

	settings := manager.Settings{
		Provider: manager.Provider(source),
		Root:     c.GetString(dconfig.SettingDatasetRoot),
	}
	switch source {
	case dconfig.SourceS3:
		settings.Bucket = c.GetString(dconfig.SettingAwsS3Bucket)
		settings.S3 = SetupS3(c)
	case dconfig.SourceAzure:
		settings.Bucket = c.GetString(dconfig.SettingAzureContainer)
		settings.Azure = SetupAzure(c)
	}
	objects, err := manager.New(ctx, settings)
	if err != nil {
		return nil, nil, errors.WithMessagef(err,
			"main: failed to setup %s dataset storage", source)
	}
	ds := blob.NewDataStore(objects,
		c.GetString(dconfig.SettingDatasetPath),
		blob.NewOptions().SetMaxSize(int64(c.GetInt(dconfig.SettingDatasetMaxSize))),
	)
	return ds, func() {}, nil
}

func setupMongo(ctx context.Context, c config.Reader) (*mstore.DataStoreMongo, func(), error) {
	client, err := mstore.NewMongoClient(ctx, c)
	if err != nil {
		return nil, nil, err
	}
	ds := mstore.NewDataStoreMongoWithClient(client).WithCollection(
		c.GetString(dconfig.SettingDbName),
		c.GetString(dconfig.SettingDbCollection),
	)
	return ds, func() {
		_ = client.Disconnect(context.Background())
	}, nil
}

// Migrate creates the indexes of the mongo dataset source.
func Migrate(ctx context.Context, c config.Reader) error {
	if source := c.GetString(dconfig.SettingDatasetSource); source != dconfig.SourceMongo {
		return errors.Errorf("migrate: dataset source %q is not %q",
			source, dconfig.SourceMongo)
	}
	ds, closer, err := setupMongo(ctx, c)
	if err != nil {
		return err
	}
	defer closer()
	return ds.Migrate(ctx, mstore.DbVersion, true)
}

func SetupCatalogOptions(c config.Reader) *catalog.Options {
	return catalog.NewOptions().
		SetClientTiers(c.GetStringSlice(dconfig.SettingClientTiers)).
		SetMaxFacetAttributes(c.GetInt(dconfig.SettingMaxFacetAttributes))
}

// LoadCatalog reads and indexes the dataset once.
func LoadCatalog(ctx context.Context, c config.Reader) (*app.Catalog, func(), error) {
	ds, closer, err := SetupDataStore(ctx, c)
	if err != nil {
		return nil, nil, err
	}
	catalogApp, err := app.Load(ctx, ds, SetupCatalogOptions(c))
	if err != nil {
		closer()
		return nil, nil, err
	}
	return catalogApp, closer, nil
}

func NewHandler(c config.Reader, catalogApp app.App) (http.Handler, error) {
	apiConf := api.NewConfig().
		SetViewURL(c.GetString(dconfig.SettingBaseURL))
	router, err := api.NewRouter(catalogApp, apiConf)
	if err != nil {
		return nil, err
	}

	restApi := rest.NewApi()
	SetupMiddleware(c, restApi)
	restApi.SetApp(router)

	return restApi.MakeHandler(), nil
}

func RunServer(ctx context.Context) error {
	c := config.Config
	l := log.FromContext(ctx)

	catalogApp, closer, err := LoadCatalog(ctx, c)
	if err != nil {
		return err
	}
	defer closer()

	handler, err := NewHandler(c, catalogApp)
	if err != nil {
		return err
	}

	listen := c.GetString(dconfig.SettingListen)
	l.Infof("listening on %s", listen)

	if c.IsSet(dconfig.SettingHttps) {

		cert := c.GetString(dconfig.SettingHttpsCertificate)
		key := c.GetString(dconfig.SettingHttpsKey)

		return http.ListenAndServeTLS(listen, cert, key, handler)
	}

	return http.ListenAndServe(listen, handler)
}
