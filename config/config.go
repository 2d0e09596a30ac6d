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

package config

import (
	"fmt"
	"os"

	"github.com/mendersoftware/go-lib-micro/config"
)

const (
	EnvProd = "prod"
	EnvDev  = "dev"
)

const (
	SettingListen        = "listen"
	SettingListenDefault = ":8080"

	SettingHttps            = "https"
	SettingHttpsCertificate = SettingHttps + ".certificate"
	SettingHttpsKey         = SettingHttps + ".key"

	SettingMiddleware        = "middleware"
	SettingMiddlewareDefault = EnvProd

	SettingDebugLog        = "debug_log"
	SettingDebugLogDefault = false

	// Dataset source: file, s3, azblob or mongo.
	SettingDataset               = "dataset"
	SettingDatasetSource         = SettingDataset + ".source"
	SettingDatasetSourceDefault  = SourceFile
	SettingDatasetRoot           = SettingDataset + ".root"
	SettingDatasetPath           = SettingDataset + ".path"
	SettingDatasetPathDefault    = "data/hardware_data.json"
	// SettingDatasetMaxSize caps the dataset document size in bytes.
	SettingDatasetMaxSize        = SettingDataset + ".max_size"
	SettingDatasetMaxSizeDefault = 32 * 1024 * 1024

	SettingsAws                       = "aws"
	SettingAwsS3Region                = SettingsAws + ".region"
	SettingAwsS3Bucket                = SettingsAws + ".bucket"
	SettingAwsS3BucketDefault         = "catalog-dataset"
	SettingAwsURI                     = SettingsAws + ".uri"
	SettingAwsS3ForcePathStyle        = SettingsAws + ".force_path_style"
	SettingAwsS3ForcePathStyleDefault = true
	SettingAwsS3UseAccelerate         = SettingsAws + ".use_accelerate"
	SettingAwsS3UseAccelerateDefault  = false
	SettingsAwsAuth                   = SettingsAws + ".auth"
	SettingAwsAuthKeyId               = SettingsAwsAuth + ".key"
	SettingAwsAuthSecret              = SettingsAwsAuth + ".secret"
	SettingAwsAuthToken               = SettingsAwsAuth + ".token"

	SettingAzure                 = "azure"
	SettingAzureContainer        = SettingAzure + ".container"
	SettingAzureContainerDefault = "catalog-dataset"
	SettingAzureConnectionString = SettingAzure + ".connection_string"
	SettingsAzureAuth            = SettingAzure + ".auth"
	SettingAzureAuthAccountName  = SettingsAzureAuth + ".account_name"
	SettingAzureAuthAccountKey   = SettingsAzureAuth + ".account_key"
	SettingAzureAuthURI          = SettingsAzureAuth + ".uri"

	SettingMongo                  = "mongo-url"
	SettingMongoDefault           = "mongodb://mongo-catalog:27017"
	SettingDbName                 = "mongo_dbname"
	SettingDbNameDefault          = "catalog"
	SettingDbCollection           = "mongo_collection"
	SettingDbCollectionDefault    = "products"
	SettingDbSSL                  = "mongo_ssl"
	SettingDbSSLDefault           = false
	SettingDbSSLSkipVerify        = "mongo_ssl_skipverify"
	SettingDbSSLSkipVerifyDefault = false
	SettingDbUsername             = "mongo_username"
	SettingDbPassword             = "mongo_password"

	SettingCatalog                   = "catalog"
	SettingMaxFacetAttributes        = SettingCatalog + ".max_facet_attributes"
	SettingMaxFacetAttributesDefault = 12
	SettingClientTiers               = SettingCatalog + ".client_tiers"
	// SettingBaseURL is the path or absolute URL the chip links point to.
	SettingBaseURL                   = SettingCatalog + ".base_url"
	SettingBaseURLDefault            = "/api/management/v1/catalog/view"

	SettingEmbedFrameAncestors = "embed.frame_ancestors"
)

// Dataset sources.
const (
	SourceFile  = "file"
	SourceS3    = "s3"
	SourceAzure = "azblob"
	SourceMongo = "mongo"
)

var (
	SettingClientTiersDefault         = []string{"Essential", "Business", "Enterprise"}
	SettingEmbedFrameAncestorsDefault = []string{"'self'"}

	Sources = []string{SourceFile, SourceS3, SourceAzure, SourceMongo}
)

var (
	Defaults = []config.Default{
		{Key: SettingListen, Value: SettingListenDefault},
		{Key: SettingMiddleware, Value: SettingMiddlewareDefault},
		{Key: SettingDebugLog, Value: SettingDebugLogDefault},
		{Key: SettingDatasetSource, Value: SettingDatasetSourceDefault},
		{Key: SettingDatasetPath, Value: SettingDatasetPathDefault},
		{Key: SettingDatasetMaxSize, Value: SettingDatasetMaxSizeDefault},
		{Key: SettingAwsS3Bucket, Value: SettingAwsS3BucketDefault},
		{Key: SettingAwsS3ForcePathStyle, Value: SettingAwsS3ForcePathStyleDefault},
		{Key: SettingAwsS3UseAccelerate, Value: SettingAwsS3UseAccelerateDefault},
		{Key: SettingAzureContainer, Value: SettingAzureContainerDefault},
		{Key: SettingMongo, Value: SettingMongoDefault},
		{Key: SettingDbName, Value: SettingDbNameDefault},
		{Key: SettingDbCollection, Value: SettingDbCollectionDefault},
		{Key: SettingDbSSL, Value: SettingDbSSLDefault},
		{Key: SettingDbSSLSkipVerify, Value: SettingDbSSLSkipVerifyDefault},
		{Key: SettingMaxFacetAttributes, Value: SettingMaxFacetAttributesDefault},
		{Key: SettingClientTiers, Value: SettingClientTiersDefault},
		{Key: SettingBaseURL, Value: SettingBaseURLDefault},
		{Key: SettingEmbedFrameAncestors, Value: SettingEmbedFrameAncestorsDefault},
	}

	Validators = []config.Validator{
		ValidateHttps,
		ValidateDataset,
		ValidateAwsAuth,
		ValidateAzure,
	}
)

// ValidateAwsAuth validates configuration of SettingsAwsAuth section if provided.
func ValidateAwsAuth(c config.Reader) error {

	if c.IsSet(SettingsAwsAuth) {
		required := []string{SettingAwsAuthKeyId, SettingAwsAuthSecret}
		for _, key := range required {
			if !c.IsSet(key) {
				return MissingOptionError(key)
			}

			if c.GetString(key) == "" {
				return MissingOptionError(key)
			}
		}
	}

	return nil
}

// ValidateHttps validates configuration of SettingHttps section if provided.
func ValidateHttps(c config.Reader) error {

	if c.IsSet(SettingHttps) {
		required := []string{SettingHttpsCertificate, SettingHttpsKey}
		for _, key := range required {
			if !c.IsSet(key) {
				return MissingOptionError(key)
			}

			value := c.GetString(key)
			if value == "" {
				return MissingOptionError(key)
			}

			if _, err := os.Stat(value); err != nil {
				return err
			}
		}
	}

	return nil
}

// ValidateDataset checks the dataset source and the options it needs.
func ValidateDataset(c config.Reader) error {
	source := c.GetString(SettingDatasetSource)
	switch source {
	case SourceFile, SourceS3, SourceAzure:
		if c.GetString(SettingDatasetPath) == "" {
			return MissingOptionError(SettingDatasetPath)
		}
	case SourceMongo:
		if c.GetString(SettingMongo) == "" {
			return MissingOptionError(SettingMongo)
		}
	default:
		return fmt.Errorf("Invalid option '%s': %q is not one of %v",
			SettingDatasetSource, source, Sources)
	}
	if c.GetInt(SettingMaxFacetAttributes) < 0 {
		return fmt.Errorf("Invalid option '%s': must not be negative",
			SettingMaxFacetAttributes)
	}
	if len(c.GetStringSlice(SettingClientTiers)) == 0 {
		return MissingOptionError(SettingClientTiers)
	}
	return nil
}

// ValidateAzure requires credentials when the dataset lives in azure blob
// storage.
func ValidateAzure(c config.Reader) error {
	if c.GetString(SettingDatasetSource) != SourceAzure {
		return nil
	}
	if c.GetString(SettingAzureConnectionString) != "" {
		return nil
	}
	for _, key := range []string{SettingAzureAuthAccountName, SettingAzureAuthAccountKey} {
		if c.GetString(key) == "" {
			return MissingOptionError(key)
		}
	}
	return nil
}

// Generate error with missing required option message.
func MissingOptionError(option string) error {
	return fmt.Errorf("Required option: '%s'", option)
}
