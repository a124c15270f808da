package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"megacart/internal/domain"
)

// userDoc is the persisted shape of a user document.
type userDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	HashedPassword string             `bson:"hashed_password"`
	IsActive       bool               `bson:"is_active"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		Email:          d.Email,
		HashedPassword: d.HashedPassword,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
	}
}

type UserRepo struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("users")}
}

var _ domain.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	doc := userDoc{
		Name:           u.Name,
		Email:          u.Email,
		HashedPassword: u.HashedPassword,
		IsActive:       u.IsActive,
		CreatedAt:      time.Now().UTC(),
	}

	return withRetry(ctx, func() error {
		res, err := r.col.InsertOne(ctx, doc)
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrConflict
		}
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			u.ID = oid.Hex()
		}
		u.CreatedAt = doc.CreatedAt
		return nil
	})
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user *domain.User
	err := withRetry(ctx, func() error {
		var doc userDoc
		err := r.col.FindOne(ctx, filter).Decode(&doc)
		if errors.Is(err, mongo.ErrNoDocuments) {
			user = nil
			return nil
		}
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}
		user = doc.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
