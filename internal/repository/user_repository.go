package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dethrtrns/techwondoe-test-task/internal/domain"
)

const usersCollection = "users"

// MongoUserRepository implements UserRepository on a MongoDB collection.
type MongoUserRepository struct {
	coll *mongo.Collection
}

// NewMongoUserRepository creates a new MongoUserRepository.
func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

// userDoc is the persisted shape of a user. The _id stays an ObjectID
// inside the store; the rest of the system only ever sees its hex form.
type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Role      string             `bson:"role"`
	Avatar    string             `bson:"avatar"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Role:      d.Role,
		Avatar:    d.Avatar,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

// Create inserts a user and returns it with the store-assigned id and
// creation timestamp filled in.
func (r *MongoUserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	doc := userDoc{
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		Status:    user.Status,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.User{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	doc.ID = oid

	return doc.toDomain(), nil
}

// List returns all users ordered by creation time.
func (r *MongoUserRepository) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]domain.User, 0)
	for cursor.Next(ctx) {
		var doc userDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}

	return users, nil
}

// Update applies the patch to the user with the given id and returns the
// updated record as confirmed by the store.
func (r *MongoUserRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An id the store could not have minted matches nothing.
		return domain.User{}, domain.ErrUserNotFound
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}

	var doc userDoc
	if len(set) == 0 {
		err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	} else {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}

	return doc.toDomain(), nil
}

// Delete removes the user with the given id.
func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
