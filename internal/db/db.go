package db

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DarkSword7/KodoMart/pkg/crypto"
)

func Connect(ctx context.Context, uri, name string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client.Database(name), nil
}

// EnsureIndexes creates the unique email index. The duplicate-key error it
// produces on insert/update is the authoritative conflict signal; the
// handlers do not pre-check for an existing email.
func EnsureIndexes(ctx context.Context, d *mongo.Database) error {
	_, err := d.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// SeedAdmin upserts an administrator account. This is the only path that sets
// is_admin; no HTTP endpoint exposes the flag.
func SeedAdmin(ctx context.Context, d *mongo.Database, email, password string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil
	}
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = d.Collection("users").UpdateOne(
		ctx,
		bson.M{"email": email},
		bson.M{
			"$set":         bson.M{"username": "admin", "password_hash": hash, "is_admin": true},
			"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
