package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"groomer/config"
	"groomer/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// document is the shape of a stored entry: the key as _id and the value as a
// JSON string. Keeping the value opaque preserves the get/set-whole-document
// contract regardless of what callers store.
type document struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

// MongoStore implements Store on a single MongoDB collection.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a Store backed by the "kv_store" collection.
func NewMongoStore() *MongoStore {
	coll := database.MongoClient.
		Database(config.AppConfig.MongoDatabase).
		Collection("kv_store")
	return &MongoStore{coll: coll}
}

func (s *MongoStore) Get(ctx context.Context, key string, out interface{}) error {
	var doc document
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("kv get %q: %w", key, err)
	}
	if err := json.Unmarshal([]byte(doc.Value), out); err != nil {
		return fmt.Errorf("kv get %q: decode value: %w", key, err)
	}
	return nil
}

func (s *MongoStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv set %q: encode value: %w", key, err)
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, document{Key: key, Value: string(data)}, opts); err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

func (s *MongoStore) GetMulti(ctx context.Context, keys []string) ([]json.RawMessage, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	cur, err := s.coll.Find(ctx, bson.M{"_id": bson.M{"$in": keys}})
	if err != nil {
		return nil, fmt.Errorf("kv mget: %w", err)
	}
	defer cur.Close(ctx)

	byKey := make(map[string]json.RawMessage, len(keys))
	for cur.Next(ctx) {
		var doc document
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("kv mget: decode: %w", err)
		}
		byKey[doc.Key] = json.RawMessage(doc.Value)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("kv mget: %w", err)
	}

	// Preserve request order, skipping keys with no value.
	values := make([]json.RawMessage, 0, len(keys))
	for _, k := range keys {
		if v, ok := byKey[k]; ok {
			values = append(values, v)
		}
	}
	return values, nil
}

func (s *MongoStore) DeleteMulti(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := s.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": keys}}); err != nil {
		return fmt.Errorf("kv mdel: %w", err)
	}
	return nil
}
