package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/intervuo/interview-platform/internal/logger"
	"github.com/intervuo/interview-platform/internal/models"
)

const usersCollection = "users"

// userDoc is the stored shape of a user. Field names match the original
// collection schema.
type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
}

func (d *userDoc) toModel() *models.User {
	return &models.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
	}
}

type UserReadRepository struct {
	db *mongo.Database
}

func NewUserReadRepository(db *mongo.Database) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail looks a user up by exact (case-sensitive) email match.
// Returns (nil, nil) when no user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc userDoc
	err := r.db.Collection(usersCollection).
		FindOne(ctx, bson.M{"email": email}).
		Decode(&doc)

	logger.Log.Infow("user lookup",
		"collection", usersCollection,
		"email", email,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return doc.toModel(), nil
}

// GetByID looks a user up by the hex form of its storage identifier.
// A malformed or unknown id yields (nil, nil).
func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc userDoc
	err = r.db.Collection(usersCollection).
		FindOne(ctx, bson.M{"_id": oid}).
		Decode(&doc)

	logger.Log.Infow("user lookup",
		"collection", usersCollection,
		"id", id,
		"error", err,
	)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return doc.toModel(), nil
}

type UserWriteRepository struct {
	db *mongo.Database
}

func NewUserWriteRepository(db *mongo.Database) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the generated identifier in hex form.
func (r *UserWriteRepository) Save(ctx context.Context, name, email, passwordHash string) (string, error) {
	doc := userDoc{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}

	res, err := r.db.Collection(usersCollection).InsertOne(ctx, doc)

	logger.Log.Infow("user insert",
		"collection", usersCollection,
		"email", email,
		"error", err,
	)

	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}

	return oid.Hex(), nil
}
