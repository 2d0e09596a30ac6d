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
	"fmt"

	"github.com/mendersoftware/go-lib-micro/mongo/migrate"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"
)

const IndexNamePosition = "position_1__id_1"

type migration_1_0_0 struct {
	client     *mongo.Client
	db         string
	collection string
}

// Up creates the index LoadRecords sorts by
func (m *migration_1_0_0) Up(from migrate.Version) error {
	ctx := context.Background()
	idx := m.client.
		Database(m.db).
		Collection(m.collection).
		Indexes()

	_, err := idx.CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: StorageKeyPosition, Value: 1},
			{Key: StorageKeyId, Value: 1},
		},
		Options: mopts.Index().SetName(IndexNamePosition),
	})
	if err != nil {
		return fmt.Errorf("mongo(1.0.0): failed to create index: %w", err)
	}
	return nil
}

func (m *migration_1_0_0) Version() migrate.Version {
	return migrate.MakeVersion(1, 0, 0)
}
