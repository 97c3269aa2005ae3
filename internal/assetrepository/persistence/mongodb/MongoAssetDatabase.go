/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package mongodb provides a MongoDB implementation of the asset database.
// Shells and submodels are stored as documents in the assets and submodels
// collections.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eclipse-basyx/dpp-go-components/internal/assetrepository/persistence"
	"github.com/eclipse-basyx/dpp-go-components/internal/common"
)

const (
	shellCollection    = "assets"
	submodelCollection = "submodels"
)

type document struct {
	ID        string    `bson:"_id"`
	Data      bson.M    `bson:"data"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoAssetDatabase stores shells and submodels in a MongoDB database.
type MongoAssetDatabase struct {
	shells    *mongo.Collection
	submodels *mongo.Collection
}

// NewMongoAssetDatabase connects to the given MongoDB instance and verifies
// the connection with a ping. The caller should Close the database when done.
func NewMongoAssetDatabase(ctx context.Context, uri string, database string) (*MongoAssetDatabase, func(context.Context) error, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(database)
	backend := &MongoAssetDatabase{
		shells:    db.Collection(shellCollection),
		submodels: db.Collection(submodelCollection),
	}
	return backend, client.Disconnect, nil
}

// GetShell retrieves a shell record by its identifier.
func (m *MongoAssetDatabase) GetShell(ctx context.Context, id string) (persistence.Record, error) {
	return get(ctx, m.shells, id)
}

// PutShell inserts or replaces a shell record.
func (m *MongoAssetDatabase) PutShell(ctx context.Context, record persistence.Record) error {
	return put(ctx, m.shells, record)
}

// DeleteShell removes a shell record.
func (m *MongoAssetDatabase) DeleteShell(ctx context.Context, id string) error {
	return remove(ctx, m.shells, id)
}

// ListShells returns all stored shell records ordered by identifier.
func (m *MongoAssetDatabase) ListShells(ctx context.Context) ([]persistence.Record, error) {
	cursor, err := m.shells.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("query shells: %w", err)
	}
	defer cursor.Close(ctx)

	var records []persistence.Record
	for cursor.Next(ctx) {
		var doc document
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		record, err := toRecord(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, cursor.Err()
}

// GetSubmodel retrieves a submodel record by its identifier.
func (m *MongoAssetDatabase) GetSubmodel(ctx context.Context, id string) (persistence.Record, error) {
	return get(ctx, m.submodels, id)
}

// PutSubmodel inserts or replaces a submodel record.
func (m *MongoAssetDatabase) PutSubmodel(ctx context.Context, record persistence.Record) error {
	return put(ctx, m.submodels, record)
}

// DeleteSubmodel removes a submodel record.
func (m *MongoAssetDatabase) DeleteSubmodel(ctx context.Context, id string) error {
	return remove(ctx, m.submodels, id)
}

func get(ctx context.Context, collection *mongo.Collection, id string) (persistence.Record, error) {
	var doc document
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return persistence.Record{}, common.NewErrNotFound(id)
	}
	if err != nil {
		return persistence.Record{}, fmt.Errorf("query document: %w", err)
	}
	return toRecord(doc)
}

func put(ctx context.Context, collection *mongo.Collection, record persistence.Record) error {
	var payload bson.M
	if err := bson.UnmarshalExtJSON(record.Data, false, &payload); err != nil {
		return common.NewErrBadRequest("document is not valid JSON: " + err.Error())
	}

	now := time.Now().UTC()
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err := collection.UpdateOne(ctx,
		bson.M{"_id": record.ID},
		bson.M{
			"$set":         bson.M{"data": payload, "updated_at": now},
			"$setOnInsert": bson.M{"created_at": createdAt},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

func remove(ctx context.Context, collection *mongo.Collection, id string) error {
	result, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if result.DeletedCount == 0 {
		return common.NewErrNotFound(id)
	}
	return nil
}

func toRecord(doc document) (persistence.Record, error) {
	data, err := bson.MarshalExtJSON(doc.Data, false, false)
	if err != nil {
		return persistence.Record{}, fmt.Errorf("serialize document: %w", err)
	}
	return persistence.Record{
		ID:        doc.ID,
		Data:      data,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
