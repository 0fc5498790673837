package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DarkSword7/KodoMart/internal/apperr"
	"github.com/DarkSword7/KodoMart/internal/models"
)

// UserPatch carries a partial update: nil fields keep their stored value.
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

// UserRepo is the single collection behind every account operation.
// GetByEmail is the only read that returns the password hash (login needs
// it); every other read projects it out.
type UserRepo interface {
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type userRepoMongo struct{ d *mongo.Database }

func NewUserRepoMongo(d *mongo.Database) UserRepo { return &userRepoMongo{d: d} }

func (r *userRepoMongo) col() *mongo.Collection { return r.d.Collection("users") }

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash,omitempty"`
	IsAdmin      bool               `bson:"is_admin"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func (d *userDoc) toUser() *models.User {
	return &models.User{
		ID:           oidHex(d.ID),
		Username:     d.Username,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		IsAdmin:      d.IsAdmin,
		CreatedAt:    d.CreatedAt,
	}
}

// withoutHash excludes password_hash from a read. The unique email index is
// the authoritative duplicate signal, see db.EnsureIndexes.
var withoutHash = bson.M{"password_hash": 0}

func (r *userRepoMongo) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	now := time.Now().UTC()
	res, err := r.col().InsertOne(ctx, bson.M{
		"username":      username,
		"email":         email,
		"password_hash": passwordHash,
		"is_admin":      false,
		"created_at":    now,
	})
	if mongo.IsDuplicateKeyError(err) {
		return nil, apperr.ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:        oidHex(res.InsertedID.(primitive.ObjectID)),
		Username:  username,
		Email:     email,
		IsAdmin:   false,
		CreatedAt: now,
	}, nil
}

func (r *userRepoMongo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc userDoc
	err := r.col().FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toUser(), nil
}

func (r *userRepoMongo) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := mustOID(id)
	if err != nil {
		return nil, apperr.ErrUserNotFound
	}
	var doc userDoc
	err = r.col().FindOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(withoutHash)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toUser(), nil
}

func (r *userRepoMongo) List(ctx context.Context) ([]*models.User, error) {
	cur, err := r.col().Find(ctx, bson.M{}, options.Find().SetProjection(withoutHash))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []*models.User{}
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		users = append(users, doc.toUser())
	}
	return users, cur.Err()
}

func (r *userRepoMongo) Update(ctx context.Context, id string, patch UserPatch) (*models.User, error) {
	oid, err := mustOID(id)
	if err != nil {
		return nil, apperr.ErrUserNotFound
	}
	set := bson.M{}
	if patch.Username != nil {
		set["username"] = *patch.Username
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		set["password_hash"] = *patch.PasswordHash
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	var doc userDoc
	err = r.col().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After).SetProjection(withoutHash),
	).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		return nil, apperr.ErrEmailTaken
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toUser(), nil
}

func (r *userRepoMongo) Delete(ctx context.Context, id string) error {
	oid, err := mustOID(id)
	if err != nil {
		return apperr.ErrUserNotFound
	}
	res, err := r.col().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.ErrUserNotFound
	}
	return nil
}
