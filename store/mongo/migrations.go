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

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/mongo/migrate"
	"github.com/pkg/errors"
)

const (
	DbVersion = "1.0.0"
)

// Migrate applies the migrations up to version on the records database.
// With automigrate off it only checks that the database is up to date.
func (db *DataStoreMongo) Migrate(ctx context.Context, version string, automigrate bool) error {
	l := log.FromContext(ctx)

	l.Infof("migrating %s", db.dbName)

	ver, err := migrate.NewVersion(version)
	if err != nil {
		return errors.Wrap(err, "failed to parse service version")
	}

	m := migrate.SimpleMigrator{
		Client:      db.client,
		Db:          db.dbName,
		Automigrate: automigrate,
	}

	migrations := []migrate.Migration{
		&migration_1_0_0{
			client:     db.client,
			db:         db.dbName,
			collection: db.collection,
		},
	}

	err = m.Apply(ctx, *ver, migrations)
	if err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}
