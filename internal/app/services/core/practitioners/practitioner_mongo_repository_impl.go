package practitioners

import (
	"context"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/exceptions"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PractitionerMongoRepository struct {
	Collection *mongo.Collection
}

func NewPractitionerMongoRepository(db *mongo.Client, dbName string) contracts.PractitionerRepository {
	return &PractitionerMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPractitioners),
	}
}

func (r *PractitionerMongoRepository) FindAll(ctx context.Context) ([]models.Practitioner, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var practitioners []models.Practitioner
	if err := cursor.All(ctx, &practitioners); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return practitioners, nil
}

func (r *PractitionerMongoRepository) FindByID(ctx context.Context, practitionerID string) (*models.Practitioner, error) {
	objectID, err := primitive.ObjectIDFromHex(practitionerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var practitioner models.Practitioner
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&practitioner)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &practitioner, nil
}

// FindBySpecialty matches the specialty exactly, ignoring case.
func (r *PractitionerMongoRepository) FindBySpecialty(ctx context.Context, specialty string) ([]models.Practitioner, error) {
	filter := bson.M{"specialties": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(specialty) + "$",
		"$options": "i",
	}}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var practitioners []models.Practitioner
	if err := cursor.All(ctx, &practitioners); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return practitioners, nil
}
