package users

import (
	"context"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *UserMongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	result, err := r.Collection.InsertOne(ctx, user)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *UserMongoRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var user models.User
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

// ConsumeFreeTrial is a compare-and-set: it only matches while the trial
// is still unused, so racing bookings cannot both spend it.
func (r *UserMongoRepository) ConsumeFreeTrial(ctx context.Context, userID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID, "has_used_free_trial": false}
	update := bson.M{"$set": bson.M{"has_used_free_trial": true, "updated_at": time.Now()}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

// ConsumeSessionCredit decrements remaining_sessions only while positive,
// keeping the counter non-negative under concurrent bookings.
func (r *UserMongoRepository) ConsumeSessionCredit(ctx context.Context, userID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID, "remaining_sessions": bson.M{"$gt": 0}}
	update := bson.M{
		"$inc": bson.M{"remaining_sessions": -1},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *UserMongoRepository) RefundSessionCredit(ctx context.Context, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$inc": bson.M{"remaining_sessions": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *UserMongoRepository) ApplySubscription(ctx context.Context, userID, plan string, sessions int, expiry time.Time, phoneNumber string) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"subscription_plan":   plan,
		"remaining_sessions":  sessions,
		"subscription_expiry": expiry,
		"phone_number":        phoneNumber,
		"updated_at":          time.Now(),
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
