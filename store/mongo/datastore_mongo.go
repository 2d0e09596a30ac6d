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

package mongo

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"

	dconfig "github.com/aigentincubator/sales-ctonet/config"
	"github.com/aigentincubator/sales-ctonet/dataset"
	"github.com/aigentincubator/sales-ctonet/model"
	"github.com/aigentincubator/sales-ctonet/store"
)

const (
	DbName         = "catalog"
	CollectionName = "products"
)

const (
	StorageKeyId           = "_id"
	StorageKeyCategory     = "category"
	StorageKeyAttributes   = "attributes"
	StorageKeyDocumentLink = "pdf_url"
	StorageKeyDescription  = "short_description"
	StorageKeyPosition     = "position"
)

// recordDocument is the stored shape of one product.
type recordDocument struct {
	Name         string                 `bson:"_id"`
	Category     string                 `bson:"category"`
	Attributes   map[string]interface{} `bson:"attributes"`
	DocumentLink string                 `bson:"pdf_url,omitempty"`
	Description  string                 `bson:"short_description,omitempty"`
	Position     int64                  `bson:"position,omitempty"`
}

func (doc recordDocument) record() model.HardwareRecord {
	fields := make(map[string]interface{}, len(doc.Attributes)+2)
	for key, value := range doc.Attributes {
		fields[key] = plainValue(value)
	}
	if doc.DocumentLink != "" {
		fields[dataset.KeyDocumentLink] = doc.DocumentLink
	}
	if doc.Description != "" {
		fields[dataset.KeyDescription] = doc.Description
	}
	return dataset.NewRecord(doc.Category, doc.Name, fields)
}

// plainValue converts BSON arrays into the plain slices the dataset package
// understands.
func plainValue(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.A:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = plainValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = plainValue(item)
		}
		return out
	}
	return v
}

type DataStoreMongo struct {
	client     *mongo.Client
	dbName     string
	collection string
}

func NewDataStoreMongoWithClient(client *mongo.Client) *DataStoreMongo {
	return &DataStoreMongo{
		client:     client,
		dbName:     DbName,
		collection: CollectionName,
	}
}

// WithCollection overrides the database and collection holding the records.
func (db *DataStoreMongo) WithCollection(dbName, collection string) *DataStoreMongo {
	if dbName != "" {
		db.dbName = dbName
	}
	if collection != "" {
		db.collection = collection
	}
	return db
}

func NewMongoClient(ctx context.Context, c config.Reader) (*mongo.Client, error) {

	clientOptions := mopts.Client()
	mongoURL := c.GetString(dconfig.SettingMongo)
	if !strings.Contains(mongoURL, "://") {
		return nil, errors.Errorf("Invalid mongoURL %q: missing schema.",
			mongoURL)
	}
	clientOptions.ApplyURI(mongoURL)

	username := c.GetString(dconfig.SettingDbUsername)
	if username != "" {
		credentials := mopts.Credential{
			Username: c.GetString(dconfig.SettingDbUsername),
		}
		password := c.GetString(dconfig.SettingDbPassword)
		if password != "" {
			credentials.Password = password
			credentials.PasswordSet = true
		}
		clientOptions.SetAuth(credentials)
	}

	if c.GetBool(dconfig.SettingDbSSL) {
		tlsConfig := &tls.Config{}
		tlsConfig.InsecureSkipVerify = c.GetBool(dconfig.SettingDbSSLSkipVerify)
		clientOptions.SetTLSConfig(tlsConfig)
	}

	// Set 10s timeout
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to connect to mongo server")
	}

	// Validate connection
	if err = client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "Error reaching mongo server")
	}

	return client, nil
}

func (db *DataStoreMongo) Ping(ctx context.Context) error {
	res := db.client.Database(db.dbName).RunCommand(ctx, bson.M{"ping": 1})
	return res.Err()
}

// LoadRecords reads every product ordered by position, then name.
func (db *DataStoreMongo) LoadRecords(ctx context.Context) ([]model.HardwareRecord, error) {
	collection := db.client.Database(db.dbName).Collection(db.collection)

	findOpts := mopts.Find().
		SetSort(bson.D{
			{Key: StorageKeyPosition, Value: 1},
			{Key: StorageKeyId, Value: 1},
		})
	cursor, err := collection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query records")
	}
	var docs []recordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode records")
	}
	if len(docs) == 0 {
		return nil, store.ErrEmptyDataset
	}

	records := make([]model.HardwareRecord, len(docs))
	for i, doc := range docs {
		records[i] = doc.record()
	}
	log.FromContext(ctx).Infof("loaded %d records from %s.%s",
		len(records), db.dbName, db.collection)
	return records, nil
}
